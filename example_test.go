package svdpress_test

import (
	"context"
	"fmt"
	"image"
	"image/color"

	svdpress "github.com/yyyoichi/svdpress"
)

func Example_compress() {
	// Create a simple gradient image (200x200 pixels)
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			// Create gradient effect: red increases with x, green increases with y, blue is a mix
			r := uint8(x * 255 / 200)
			g := uint8(y * 255 / 200)
			b := uint8((x + y) * 255 / 400)
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}

	// Keep only the 20 largest singular values of each channel
	ctx := context.Background()
	compressed, err := svdpress.Compress(ctx, img, 20)
	if err != nil {
		fmt.Printf("Error compressing image: %v\n", err)
		return
	}

	bounds := compressed.Bounds()
	fmt.Printf("%dx%d\n", bounds.Dx(), bounds.Dy())

	// Output:
	// 200x200
}
