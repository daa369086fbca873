package compress

import (
	"image"

	"github.com/yyyoichi/svdpress/internal/pixel"
)

// Source holds an image decomposed into float32 channel planes:
// one plane for greyscale, three (R, G, B) for color. Planes are
// row-major, height rows by width columns, values in [0, 255].
type Source struct {
	bounds        image.Rectangle
	width, height int
	area          int

	alpha  []uint8
	planes [][]float32
}

// NewRGBSource converts src into three independent channel planes.
// Alpha is retained untouched for reassembly.
func NewRGBSource(src image.Image) Source {
	var s Source
	s.bounds = src.Bounds()
	s.width, s.height = s.bounds.Dx(), s.bounds.Dy()
	s.area = s.width * s.height
	s.planes = [][]float32{
		make([]float32, s.area), // R
		make([]float32, s.area), // G
		make([]float32, s.area), // B
	}
	s.alpha = make([]uint8, s.area)
	pixel.RGBPlanes(src, s.planes[0], s.planes[1], s.planes[2], s.alpha)
	return s
}

// NewGreySource converts src into a single luma plane.
func NewGreySource(src image.Image) Source {
	var s Source
	s.bounds = src.Bounds()
	s.width, s.height = s.bounds.Dx(), s.bounds.Dy()
	s.area = s.width * s.height
	s.planes = [][]float32{make([]float32, s.area)}
	pixel.GreyPlane(src, s.planes[0])
	return s
}

// Channels reports the number of channel planes (1 or 3).
func (s Source) Channels() int { return len(s.planes) }

// Dims reports the pixel dimensions of the source.
func (s Source) Dims() (width, height int) { return s.width, s.height }

// build reassembles replacement planes into an image with the source's
// bounds. Plane order matches channel order.
func (s Source) build(planes [][]float32) image.Image {
	if len(planes) == 1 {
		return pixel.BuildGray(s.bounds, planes[0])
	}
	return pixel.BuildRGBA(s.bounds, planes[0], planes[1], planes[2], s.alpha)
}
