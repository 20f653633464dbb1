package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	jor "github.com/garyhouston/jpegorient"
	"github.com/garyhouston/jpegorient/source"
	"github.com/hashicorp/go-multierror"
	"github.com/paulmatencio/s3c/gLog"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print REF...",
	Short: "Print the orientation of images and the transform that corrects it",
	Long:  `REF "-" reads an image from standard input.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader()
		if err != nil {
			return err
		}
		return printRefs(cmd.Context(), cmd.OutOrStdout(), loader, args)
	},
}

func init() {
	RootCmd.AddCommand(printCmd)
}

// printRefs reports on every reference, returning the errors for those
// which couldn't be loaded.
func printRefs(ctx context.Context, w io.Writer, loader *source.Loader, refs []string) error {
	var result error
	for _, ref := range refs {
		blob, err := load(ctx, loader, ref)
		if err != nil {
			gLog.Error.Printf("%s: %v", ref, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", ref, err))
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", ref, describe(blob))
	}
	return result
}

func load(ctx context.Context, loader *source.Loader, ref string) (jor.Blob, error) {
	if ref == "-" {
		return source.ReadAll(os.Stdin, "")
	}
	gLog.Trace.Printf("loading %s", ref)
	return loader.Load(ctx, ref)
}

// Describe the orientation of an image. The blob's data is normalized.
func describe(blob jor.Blob) string {
	if !jor.IsJPEGHeader(blob.Data) {
		return fmt.Sprintf("not a JPEG (%s), %s", blob.Type, jor.Identity)
	}
	app1, found := jor.FindAPP1Offset(blob.Data)
	if !found {
		return fmt.Sprintf("no %s segment, %s", jor.Marker(jor.APP1).Name(), jor.Identity)
	}
	orientation, found := jor.ReadOrientation(blob.Data, app1)
	if !found {
		return fmt.Sprintf("%s at offset %d, no orientation, %s", jor.Marker(jor.APP1).Name(), app1, jor.Identity)
	}
	return fmt.Sprintf("%s at offset %d, orientation %s (%d), %s",
		jor.Marker(jor.APP1).Name(), app1, orientation, uint16(orientation), jor.ToDescriptor(orientation))
}
