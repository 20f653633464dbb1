package cmd

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"

	jor "github.com/garyhouston/jpegorient"
	"github.com/garyhouston/jpegorient/source"
	"github.com/paulmatencio/s3c/gLog"
	"github.com/spf13/cobra"
)

// Make a copy of a JPEG image with its orientation tag reset to 1.
var normalizeCmd = &cobra.Command{
	Use:   "normalize REF OUTFILE",
	Short: "Copy an image with its orientation tag reset to 1",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader()
		if err != nil {
			return err
		}
		return normalize(cmd.Context(), cmd.OutOrStdout(), loader, args[0], args[1])
	},
}

func init() {
	RootCmd.AddCommand(normalizeCmd)
}

func normalize(ctx context.Context, w io.Writer, loader *source.Loader, ref, outfile string) error {
	blob, err := load(ctx, loader, ref)
	if err != nil {
		return err
	}
	orientation, found := jor.GetOrientation(blob.Data)
	if !found {
		gLog.Warning.Printf("%s: no orientation found, copying unchanged", ref)
	}
	if err := ioutil.WriteFile(outfile, blob.Data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: was %s, %s\n", outfile, orientation, jor.ToDescriptor(orientation))
	return nil
}
