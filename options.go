package svdpress

import "fmt"

type Option func(*Compressor) error

// WithMode selects the truncation direction. ModeBest produces the
// minimal-error approximation at the requested rank; ModeWorst keeps
// the smallest singular values instead, for worst-case comparison.
func WithMode(mode Mode) Option {
	return func(c *Compressor) error {
		switch mode {
		case ModeBest, ModeWorst:
			c.mode = mode
			return nil
		}
		return fmt.Errorf("unknown mode %d", int(mode))
	}
}

// WithGreyscale converts the image to a single luma channel before
// compression, producing a greyscale result. One approximation runs
// instead of three.
func WithGreyscale() Option {
	return func(c *Compressor) error {
		c.grey = true
		return nil
	}
}
