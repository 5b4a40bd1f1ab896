package cli

import (
	"fmt"
	"io"

	"github.com/dball/osinfo/internal/model"
	"github.com/dball/osinfo/internal/shredder"
	"github.com/spf13/cobra"
)

func init() {
	commands = append(commands, newResourcesCmd)
}

// resourcesView is a resources record with unset fields left zero.
type resourcesView struct {
	Category     string `json:"category"`
	Architecture string `json:"architecture" attr:"architecture"`
	CPUs         int64  `json:"n-cpus,omitempty" attr:"n-cpus"`
	CPU          int64  `json:"cpu,omitempty" attr:"cpu"`
	RAM          int64  `json:"ram,omitempty" attr:"ram"`
	Storage      int64  `json:"storage,omitempty" attr:"storage"`
}

func resourcesViewOf(category model.ResourcesCategory, r *model.Resources) (view resourcesView, err error) {
	view.Category = category.String()
	err = shredder.Assemble(r.Entity, &view)
	return
}

func newResourcesCmd(opts *options) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "resources <os-id|short-id>",
		Short: "Show the resource requirements of an operating system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			categories := []model.ResourcesCategory{model.Minimum, model.Recommended, model.Maximum, model.NetworkInstall}
			if category != "" {
				code, ok := model.ResourcesCategories[category]
				if !ok {
					err = fmt.Errorf("unknown category %q", category)
					return
				}
				categories = []model.ResourcesCategory{model.ResourcesCategory(code)}
			}
			db, err := opts.open(cmd)
			if err != nil {
				return
			}
			os, err := findOS(db, args[0])
			if err != nil {
				return
			}
			views := []resourcesView{}
			for _, c := range categories {
				for _, r := range db.Resources(os, c).Elements() {
					view, viewErr := resourcesViewOf(c, r)
					if viewErr != nil {
						err = viewErr
						return
					}
					views = append(views, view)
				}
			}
			err = render(cmd, opts, views, func(w io.Writer) {
				for _, v := range views {
					fmt.Fprintf(w, "%s\t%s\tn-cpus=%d cpu=%d ram=%d storage=%d\n",
						v.Category, v.Architecture, v.CPUs, v.CPU, v.RAM, v.Storage)
				}
			})
			return
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only show one category: minimum, recommended, maximum or network-install")
	return cmd
}
