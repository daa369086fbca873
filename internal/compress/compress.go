package compress

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/yyyoichi/svdpress/internal/svd"
	"gonum.org/v1/gonum/mat"
)

// Policy applies rank truncation uniformly across the channel planes of
// a Source.
type Policy struct {
	ap *svd.Approximator
}

// NewPolicy returns a Policy using dec as the decomposition primitive.
// A nil dec selects the default.
func NewPolicy(dec svd.Decomposer) Policy {
	return Policy{ap: svd.NewApproximator(dec)}
}

// Compress is a convenience wrapper using the default decomposition.
func Compress(ctx context.Context, src Source, rank int, mode svd.Mode) (image.Image, error) {
	return NewPolicy(nil).Compress(ctx, src, rank, mode)
}

// Compress approximates every channel plane of src at the given rank
// and reassembles the result into an image. A greyscale source is a
// single synchronous call; a color source fans out one goroutine per
// channel and joins before assembly. Output channel order always
// matches input channel order. If any channel fails, the failure of the
// lowest-numbered channel is returned and no image is produced.
func (p Policy) Compress(ctx context.Context, src Source, rank int, mode svd.Mode) (image.Image, error) {
	if src.Channels() == 1 {
		plane, err := p.approximatePlane(src.planes[0], rank, mode, src.width, src.height)
		if err != nil {
			return nil, err
		}
		return src.build([][]float32{plane}), nil
	}

	out := make([][]float32, len(src.planes))
	errs := make([]error, len(src.planes))
	var wg sync.WaitGroup
	wg.Add(len(src.planes))
	for ch := range src.planes {
		go func(ch int) {
			defer wg.Done()
			out[ch], errs[ch] = p.approximatePlane(src.planes[ch], rank, mode, src.width, src.height)
		}(ch)
	}
	wg.Wait()
	for ch, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
	}
	return src.build(out), nil
}

// approximatePlane runs one channel through the approximator, treating
// the plane as a height x width matrix. The input plane is not
// modified.
func (p Policy) approximatePlane(plane []float32, rank int, mode svd.Mode, w, h int) ([]float32, error) {
	data := make([]float64, len(plane))
	for i, v := range plane {
		data[i] = float64(v)
	}
	res, err := p.ap.Approximate(mat.NewDense(h, w, data), rank, mode)
	if err != nil {
		return nil, err
	}
	raw := res.RawMatrix().Data
	outPlane := make([]float32, len(plane))
	for i, v := range raw {
		outPlane[i] = float32(v)
	}
	return outPlane, nil
}
