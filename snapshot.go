package deskscene

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
)

// SaveSnapshot writes the current frame to a WebP file.
func SaveSnapshot(screen *ebiten.Image, path string) error {
	bounds := screen.Bounds()
	img := image.NewNRGBA(bounds)
	screen.ReadPixels(img.Pix)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return nil
}
