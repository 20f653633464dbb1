package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"io/ioutil"

	jor "github.com/garyhouston/jpegorient"
	"github.com/garyhouston/jpegorient/source"
	"github.com/paulmatencio/s3c/gLog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	mimeType string

	encodeCmd = &cobra.Command{
		Use:   "encode REF",
		Short: "Print an image as a base64 data URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := newLoader()
			if err != nil {
				return err
			}
			return encode(cmd.Context(), cmd.OutOrStdout(), loader, args[0], mimeType)
		},
	}

	decodeCmd = &cobra.Command{
		Use:   "decode DATAURI OUTFILE",
		Short: "Write the payload of a data URI to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decode(cmd.OutOrStdout(), args[0], args[1])
		},
	}
)

func init() {
	encodeCmd.Flags().StringVarP(&mimeType, "mime", "m", "", "MIME type for the data URI (default: guessed from the source)")
	viper.SetDefault("datauri.chunk_size", jor.DefaultChunkSize)
	RootCmd.AddCommand(encodeCmd)
	RootCmd.AddCommand(decodeCmd)
}

func codec() jor.Codec {
	return jor.Codec{Encoding: base64.StdEncoding, ChunkSize: viper.GetInt("datauri.chunk_size")}
}

func encode(ctx context.Context, w io.Writer, loader *source.Loader, ref, mimeType string) error {
	blob, err := load(ctx, loader, ref)
	if err != nil {
		return err
	}
	if mimeType == "" {
		mimeType = blob.Type
	}
	gLog.Info.Printf("%s: %d bytes of %s", ref, len(blob.Data), mimeType)
	_, err = fmt.Fprintln(w, codec().Encode(blob.Data, mimeType))
	return err
}

func decode(w io.Writer, uri, outfile string) error {
	blob, err := codec().DecodeBlob(uri)
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(outfile, blob.Data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d bytes of %s\n", outfile, len(blob.Data), blob.Type)
	return nil
}
