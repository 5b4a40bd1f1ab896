package cli

import (
	"fmt"
	"io"

	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	commands = append(commands, newDevicesCmd)
}

func newDevicesCmd(opts *options) *cobra.Command {
	var filters []string
	var platform string
	cmd := &cobra.Command{
		Use:   "devices <os-id|short-id>",
		Short: "List the devices an operating system supports",
		Long:  "List the devices an operating system supports, including inherited devices. With --platform, list the devices of the deployment of the operating system on the platform.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := parseFilter(filters)
			if err != nil {
				return
			}
			db, err := opts.open(cmd)
			if err != nil {
				return
			}
			os, err := findOS(db, args[0])
			if err != nil {
				return
			}
			var devices *list.List[*model.Device]
			if platform != "" {
				d, ok := db.FindDeployment(os.ID(), platform)
				if !ok {
					err = fmt.Errorf("no deployment of %s on %s", os.ID(), platform)
					return
				}
				devices = db.DeploymentDevices(d, f)
			} else {
				devices = db.AllDevices(os, f)
			}
			views := viewsOf(devices)
			err = render(cmd, opts, views, func(w io.Writer) { writeViews(w, views) })
			return
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Only list devices with the attribute value key=value")
	cmd.Flags().StringVar(&platform, "platform", "", "List the devices of the deployment on this platform")
	return cmd
}
