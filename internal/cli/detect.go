package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dball/osinfo/internal/model"
	"github.com/dball/osinfo/internal/sys"
	"github.com/spf13/cobra"
)

func init() {
	commands = append(commands, newDetectCmd)
}

var errNotIdentified = errors.New("not identified")

type detectView struct {
	OS     string     `json:"os"`
	Record entityView `json:"record"`
}

func writeDetected(w io.Writer, view detectView) {
	fmt.Fprintf(w, "%s\t%s\n", view.OS, view.Record.ID)
	writeParams(w, "  ", view.Record.Params)
}

// setFlags copies the flags that were given to the entity attributes they name.
func setFlags(cmd *cobra.Command, set func(key string, value string), keys map[string]string) {
	for name, key := range keys {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			set(key, flag.Value.String())
		}
	}
}

func newDetectCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Identify installation media and trees",
	}
	cmd.AddCommand(newDetectMediaCmd(opts), newDetectTreeCmd(opts))
	return cmd
}

func newDetectMediaCmd(opts *options) *cobra.Command {
	var arch string
	var size int64
	keys := map[string]string{
		"volume-id":      sys.MediaVolumeID,
		"system-id":      sys.MediaSystemID,
		"publisher-id":   sys.MediaPublisherID,
		"application-id": sys.MediaApplicationID,
	}
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Identify an installation medium from its ISO9660 volume descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			db, err := opts.open(cmd)
			if err != nil {
				return
			}
			obs := model.NewMedia("observed", arch)
			setFlags(cmd, obs.Set, keys)
			if size > 0 {
				obs.SetInt(sys.MediaVolumeSize, size)
			}
			if !db.IdentifyMedia(obs) {
				err = errNotIdentified
				return
			}
			os, _ := obs.OS()
			view := detectView{OS: os, Record: viewOf(obs.Entity)}
			err = render(cmd, opts, view, func(w io.Writer) { writeDetected(w, view) })
			return
		},
	}
	for name := range keys {
		cmd.Flags().String(name, "", "The observed "+name)
	}
	cmd.Flags().StringVar(&arch, "arch", "", "The observed architecture")
	cmd.Flags().Int64Var(&size, "volume-size", 0, "The observed volume size in bytes")
	return cmd
}

func newDetectTreeCmd(opts *options) *cobra.Command {
	var arch string
	keys := map[string]string{
		"family":        sys.TreeFamily,
		"variant":       sys.TreeVariant,
		"version":       sys.TreeVersion,
		"treeinfo-arch": sys.TreeArch,
	}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Identify an installation tree from its treeinfo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			db, err := opts.open(cmd)
			if err != nil {
				return
			}
			obs := model.NewTree("observed", arch)
			setFlags(cmd, obs.Set, keys)
			if !db.IdentifyTree(obs) {
				err = errNotIdentified
				return
			}
			os, _ := obs.OS()
			view := detectView{OS: os, Record: viewOf(obs.Entity)}
			err = render(cmd, opts, view, func(w io.Writer) { writeDetected(w, view) })
			return
		},
	}
	for name := range keys {
		cmd.Flags().String(name, "", "The observed treeinfo "+name)
	}
	cmd.Flags().StringVar(&arch, "arch", "", "The observed architecture")
	return cmd
}
