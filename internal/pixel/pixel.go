package pixel

import (
	"image"
	"image/color"
)

// BT.601 luma weights.
const (
	lr = 0.299
	lg = 0.587
	lb = 0.114
)

// RGBPlanes fills r, g, b with the 8-bit channel intensities of src as
// float32 in [0, 255], row-major, and records the alpha channel for
// reassembly. All slices must have length Dx*Dy.
func RGBPlanes(src image.Image, r, g, b []float32, alpha []uint8) {
	bounds := src.Bounds()
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, a32 := src.At(x, y).RGBA()
			r[idx] = float32(r32 >> 8)
			g[idx] = float32(g32 >> 8)
			b[idx] = float32(b32 >> 8)
			alpha[idx] = uint8(a32 >> 8)
			idx++
		}
	}
}

// GreyPlane fills y with the BT.601 luma of src as float32 in [0, 255],
// row-major. The slice must have length Dx*Dy.
func GreyPlane(src image.Image, dst []float32) {
	bounds := src.Bounds()
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, _ := src.At(x, y).RGBA()
			r := float32(r32 >> 8)
			g := float32(g32 >> 8)
			b := float32(b32 >> 8)
			dst[idx] = lr*r + lg*g + lb*b
			idx++
		}
	}
}

// BuildRGBA reassembles channel planes into an 8-bit RGBA image,
// clamping each value to [0, 255]. Alpha passes through unmodified.
func BuildRGBA(bounds image.Rectangle, r, g, b []float32, alpha []uint8) *image.RGBA {
	dst := image.NewRGBA(bounds)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetRGBA(x, y, color.RGBA{
				R: clamp8(r[idx]),
				G: clamp8(g[idx]),
				B: clamp8(b[idx]),
				A: alpha[idx],
			})
			idx++
		}
	}
	return dst
}

// BuildGray reassembles a single plane into an 8-bit greyscale image,
// clamping each value to [0, 255].
func BuildGray(bounds image.Rectangle, plane []float32) *image.Gray {
	dst := image.NewGray(bounds)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetGray(x, y, color.Gray{Y: clamp8(plane[idx])})
			idx++
		}
	}
	return dst
}

func clamp8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
