package cmd

import (
	"context"
	"fmt"
	"io"

	jor "github.com/garyhouston/jpegorient"
	"github.com/garyhouston/jpegorient/source"
	"github.com/spf13/cobra"
)

// Print JPEG markers and segment lengths.
var segmentsCmd = &cobra.Command{
	Use:   "segments REF",
	Short: "Print the markers and segment lengths of a JPEG image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader()
		if err != nil {
			return err
		}
		return printSegments(cmd.Context(), cmd.OutOrStdout(), loader, args[0])
	},
}

func init() {
	RootCmd.AddCommand(segmentsCmd)
}

func printSegments(ctx context.Context, w io.Writer, loader *source.Loader, ref string) error {
	blob, err := load(ctx, loader, ref)
	if err != nil {
		return err
	}
	segments, err := jor.ReadSegments(blob.Data)
	if jor.IsJPEGHeader(blob.Data) {
		fmt.Fprintln(w, "SOI")
	}
	for _, seg := range segments {
		if seg.Data == nil {
			fmt.Fprintf(w, "%s at %d\n", seg.Marker.Name(), seg.Offset)
			continue
		}
		fmt.Fprintf(w, "%s at %d, %d bytes\n", seg.Marker.Name(), seg.Offset, len(seg.Data))
	}
	return err
}
