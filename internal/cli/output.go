package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/filter"
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type entityView struct {
	ID     string              `json:"id"`
	Params map[string][]string `json:"params,omitempty"`
}

func viewOf(e *entity.Entity) entityView {
	return entityView{ID: e.ID(), Params: e.Params()}
}

type viewable interface {
	list.Identified
	Params() map[string][]string
}

func viewsOf[T viewable](l *list.List[T]) (views []entityView) {
	views = []entityView{}
	l.Each(func(element T) bool {
		views = append(views, entityView{ID: element.ID(), Params: element.Params()})
		return true
	})
	return
}

type osView struct {
	entityView
	Related        map[string][]string `json:"related,omitempty"`
	Media          []entityView        `json:"media,omitempty"`
	Trees          []entityView        `json:"trees,omitempty"`
	Variants       []entityView        `json:"variants,omitempty"`
	Devices        []entityView        `json:"devices,omitempty"`
	Firmwares      []entityView        `json:"firmwares,omitempty"`
	InstallScripts []string            `json:"install-scripts,omitempty"`
}

func relatedOf(p *model.Product) (related map[string][]string) {
	related = map[string][]string{}
	for _, kind := range model.TraversalOrder {
		if ids := p.Related(kind); len(ids) > 0 {
			related[kind.String()] = ids
		}
	}
	return
}

func osViewOf(os *model.OS) osView {
	return osView{
		entityView:     viewOf(os.Entity),
		Related:        relatedOf(&os.Product),
		Media:          viewsOf(os.Media()),
		Trees:          viewsOf(os.Trees()),
		Variants:       viewsOf(os.Variants()),
		Devices:        viewsOf(os.DeviceLinks()),
		Firmwares:      viewsOf(os.Firmwares()),
		InstallScripts: os.InstallScripts().IDs(),
	}
}

// render writes v as indented JSON, or calls text, according to the format flag.
func render(cmd *cobra.Command, opts *options, v any, text func(w io.Writer)) (err error) {
	w := cmd.OutOrStdout()
	switch opts.format {
	case "json":
		b, marshalErr := json.MarshalIndent(v, "", "  ")
		if marshalErr != nil {
			err = fmt.Errorf("error encoding output: %w", marshalErr)
			return
		}
		fmt.Fprintln(w, string(b))
	case "text":
		text(w)
	default:
		err = fmt.Errorf("unknown format %q", opts.format)
	}
	return
}

func writeParams(w io.Writer, indent string, params map[string][]string) {
	keys := maps.Keys(params)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s: %s\n", indent, k, strings.Join(params[k], ", "))
	}
}

func writeViews(w io.Writer, views []entityView) {
	for _, view := range views {
		name := ""
		if names := view.Params["name"]; len(names) > 0 {
			name = names[0]
		}
		fmt.Fprintf(w, "%s\t%s\n", view.ID, name)
	}
}

// parseFilter builds a filter from key=value pairs.
func parseFilter(pairs []string) (f *filter.Filter, err error) {
	f = filter.New()
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			err = fmt.Errorf("invalid filter %q, expected key=value", pair)
			return
		}
		f.AddConstraint(key, value)
	}
	return
}
