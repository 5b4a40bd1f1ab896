package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dball/osinfo/internal/model"
	"github.com/dball/osinfo/pkg/osinfo"
	"github.com/spf13/cobra"
)

func init() {
	commands = append(commands, newShowCmd)
}

// findOS looks up an operating system by id, then by short id.
func findOS(db *osinfo.Catalog, id string) (os *model.OS, err error) {
	os, ok := db.OS(id)
	if !ok {
		os, ok = db.FindOSByShortID(id)
	}
	if !ok {
		err = fmt.Errorf("unknown os %q", id)
	}
	return
}

func writeOS(w io.Writer, view osView) {
	fmt.Fprintln(w, view.ID)
	writeParams(w, "  ", view.Params)
	writeParams(w, "  ", view.Related)
	sections := []struct {
		name  string
		views []entityView
	}{
		{"media", view.Media},
		{"trees", view.Trees},
		{"variants", view.Variants},
		{"devices", view.Devices},
		{"firmwares", view.Firmwares},
	}
	for _, section := range sections {
		if len(section.views) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:\n", section.name)
		for _, v := range section.views {
			fmt.Fprintf(w, "    %s\n", v.ID)
			writeParams(w, "      ", v.Params)
		}
	}
	if len(view.InstallScripts) > 0 {
		fmt.Fprintf(w, "  install-scripts: %s\n", strings.Join(view.InstallScripts, ", "))
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <os-id|short-id>",
		Short: "Show an operating system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			db, err := opts.open(cmd)
			if err != nil {
				return
			}
			os, err := findOS(db, args[0])
			if err != nil {
				return
			}
			view := osViewOf(os)
			err = render(cmd, opts, view, func(w io.Writer) { writeOS(w, view) })
			return
		},
	}
}
