// image_io.go - JPEG encoding sink for the rendered framebuffer.
//
// No third-party JPEG encoder appears anywhere in the examples this
// module was built from, so this one concern is implemented directly
// against the standard library's image/jpeg.

package main

import (
	"image"
	"image/jpeg"
	"os"
)

// WriteImage encodes a tightly packed row-major RGB buffer of the
// given dimensions as a JPEG file at path.
func WriteImage(path string, rgb []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			srcOff := (y*width + x) * 3
			dstOff := img.PixOffset(x, y)
			img.Pix[dstOff] = rgb[srcOff]
			img.Pix[dstOff+1] = rgb[srcOff+1]
			img.Pix[dstOff+2] = rgb[srcOff+2]
			img.Pix[dstOff+3] = 0xff
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
}
