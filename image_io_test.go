package main

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteImageProducesDecodableJPEG(t *testing.T) {
	w, h := 4, 3
	rgb := make([]byte, w*h*3)
	for i := range rgb {
		rgb[i] = byte(i * 7)
	}

	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := WriteImage(path, rgb, w, h); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != w || bounds.Dy() != h {
		t.Fatalf("decoded dims = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), w, h)
	}
}
