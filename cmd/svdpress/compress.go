package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	svdpress "github.com/yyyoichi/svdpress"
	"golang.org/x/image/draw"
)

type compressFlags struct {
	rank        int
	worst       bool
	grey        bool
	output      string
	maxWidth    int
	jpegQuality int
}

func newCompressCmd() *cobra.Command {
	var flags compressFlags
	cmd := &cobra.Command{
		Use:   "compress <image>",
		Short: "Compress an image at the given rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args[0], flags)
		},
	}
	cmd.Flags().IntVarP(&flags.rank, "rank", "r", 0, "number of singular values to keep per channel (required)")
	cmd.Flags().BoolVar(&flags.worst, "worst", false, "keep the smallest singular values instead of the largest")
	cmd.Flags().BoolVar(&flags.grey, "grey", false, "convert to greyscale before compressing")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output path (default: <input>.compressed.<ext>)")
	cmd.Flags().IntVar(&flags.maxWidth, "max-width", 0, "downscale the input to at most this width before compressing")
	cmd.Flags().IntVar(&flags.jpegQuality, "jpeg-quality", 90, "quality for JPEG output, 1 to 100")
	_ = cmd.MarkFlagRequired("rank")
	return cmd
}

func runCompress(cmd *cobra.Command, path string, flags compressFlags) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	img, format, err := svdpress.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if flags.maxWidth > 0 && img.Bounds().Dx() > flags.maxWidth {
		img = downscale(img, flags.maxWidth)
	}

	var opts []svdpress.Option
	if flags.worst {
		opts = append(opts, svdpress.WithMode(svdpress.ModeWorst))
	}
	if flags.grey {
		opts = append(opts, svdpress.WithGreyscale())
	}
	compressed, err := svdpress.Compress(cmd.Context(), img, flags.rank, opts...)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", path, err)
	}

	outPath := flags.output
	if outPath == "" {
		outPath = defaultOutputPath(path)
	}
	outFormat := formatFromPath(outPath, format)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := svdpress.Encode(out, compressed, outFormat, svdpress.WithJPEGQuality(flags.jpegQuality)); err != nil {
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}

	bounds := compressed.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, rank %d)\n", outPath, bounds.Dx(), bounds.Dy(), flags.rank)
	return nil
}

// downscale fits img to the given width, preserving aspect ratio.
func downscale(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func defaultOutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".compressed" + ext
}

// formatFromPath infers the encode format from the output extension,
// falling back to the input's sniffed format. webp decodes but has no
// encoder, so it falls back to png.
func formatFromPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	if fallback == "webp" {
		return "png"
	}
	return fallback
}
