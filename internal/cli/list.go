package cli

import (
	"fmt"
	"io"

	"github.com/dball/osinfo/internal/catalog"
	"github.com/dball/osinfo/internal/filter"
	"github.com/spf13/cobra"
)

func init() {
	commands = append(commands, newListCmd)
}

// selectKind returns the views of the entities of the kind that match the filter.
func selectKind(db *catalog.Catalog, kind string, f *filter.Filter) (views []entityView, ok bool) {
	ok = true
	switch kind {
	case "os":
		views = viewsOf(filter.Select(db.OSList(), f))
	case "platform":
		views = viewsOf(filter.Select(db.PlatformList(), f))
	case "device":
		views = viewsOf(filter.Select(db.DeviceList(), f))
	case "deployment":
		views = viewsOf(filter.Select(db.DeploymentList(), f))
	case "datamap":
		views = viewsOf(filter.Select(db.DatamapList(), f))
	case "install-script":
		views = viewsOf(filter.Select(db.InstallScriptList(), f))
	default:
		ok = false
	}
	return
}

func newListCmd(opts *options) *cobra.Command {
	var filters []string
	cmd := &cobra.Command{
		Use:       "list <os|platform|device|deployment|datamap|install-script>",
		Short:     "List catalog entities",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"os", "platform", "device", "deployment", "datamap", "install-script"},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := parseFilter(filters)
			if err != nil {
				return
			}
			db, err := opts.open(cmd)
			if err != nil {
				return
			}
			result, ok := selectKind(db, args[0], f)
			if !ok {
				err = fmt.Errorf("unknown kind %q", args[0])
				return
			}
			err = render(cmd, opts, result, func(w io.Writer) { writeViews(w, result) })
			return
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Only list entities with the attribute value key=value")
	return cmd
}
