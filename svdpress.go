// Package svdpress implements lossy image compression by rank-limited
// approximation of per-channel pixel matrices via truncated singular
// value decomposition.
package svdpress

import (
	"context"
	"fmt"
	"image"

	"github.com/yyyoichi/svdpress/internal/compress"
	"github.com/yyyoichi/svdpress/internal/svd"
)

var (
	// ErrInvalidRank reports a requested rank outside [1, min(m,n)].
	// The caller must reissue with a corrected rank.
	ErrInvalidRank = svd.ErrInvalidRank
	// ErrDecompositionUnavailable reports that the decomposition
	// primitive could not process the channel matrix. Not retryable
	// for the same image dimensions.
	ErrDecompositionUnavailable = svd.ErrUnavailable
)

// Mode selects the truncation direction.
type Mode int

const (
	// ModeBest keeps the largest singular values: the optimal
	// approximation at the requested rank (Eckart-Young-Mirsky).
	ModeBest Mode = iota
	// ModeWorst keeps the smallest singular values: a deliberately
	// degraded reconstruction used as a worst-case comparison
	// artifact.
	ModeWorst
)

// Compress compresses an image at the given rank with the specified options.
// This is a convenience function that creates a Compressor instance and calls
// its Compress method.
func Compress(ctx context.Context, src image.Image, rank int, opts ...Option) (image.Image, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Compress(ctx, src, rank)
}

type Compressor struct {
	mode Mode
	grey bool
}

// New initializes a compressor. The truncation mode and the
// greyscale/color treatment can be optionally specified; the defaults
// are best-mode color compression.
func New(opts ...Option) (*Compressor, error) {
	c := new(Compressor)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Compress reduces the effective rank of each channel of src.
//
// Process:
//  1. Converts the image to one (greyscale) or three (color) float32
//     channel matrices.
//  2. Approximates each matrix at the requested rank, independently
//     and in parallel for color input.
//  3. Reassembles the channel matrices, clamping values to [0, 255].
//
// The output dimensions always match the input. rank must be in
// [1, min(width, height)].
func (c *Compressor) Compress(ctx context.Context, src image.Image, rank int) (image.Image, error) {
	var source compress.Source
	if c.grey {
		source = compress.NewGreySource(src)
	} else {
		source = compress.NewRGBSource(src)
	}
	return compress.Compress(ctx, source, rank, c.svdMode())
}

func (c *Compressor) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compressor) svdMode() svd.Mode {
	if c.mode == ModeWorst {
		return svd.Worst
	}
	return svd.Best
}

func (m Mode) String() string {
	switch m {
	case ModeBest:
		return "best"
	case ModeWorst:
		return "worst"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
