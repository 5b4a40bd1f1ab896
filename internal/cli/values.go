package cli

import (
	"fmt"
	"io"

	"github.com/dball/osinfo/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	commands = append(commands, newValuesCmd)
}

func newValuesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "values <os|platform|device|deployment|install-script> <property>",
		Short: "List the distinct values of a property",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			db, err := opts.open(cmd)
			if err != nil {
				return
			}
			var values []string
			switch kind, property := args[0], args[1]; kind {
			case "os":
				values = catalog.UniqueValuesForProperty(db.OSList(), property).Values()
			case "platform":
				values = catalog.UniqueValuesForProperty(db.PlatformList(), property).Values()
			case "device":
				values = catalog.UniqueValuesForProperty(db.DeviceList(), property).Values()
			case "deployment":
				values = catalog.UniqueValuesForProperty(db.DeploymentList(), property).Values()
			case "install-script":
				values = catalog.UniqueValuesForProperty(db.InstallScriptList(), property).Values()
			default:
				err = fmt.Errorf("unknown kind %q", kind)
				return
			}
			err = render(cmd, opts, values, func(w io.Writer) {
				for _, v := range values {
					fmt.Fprintln(w, v)
				}
			})
			return
		},
	}
}
