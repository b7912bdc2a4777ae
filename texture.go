package deskscene

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"
)

// At most 16 texture slots, mirroring the shader's sampler table.
const maxTextureSlots = 16

// Textures larger than this are downsampled before averaging; per-face
// shading only ever reads the averaged color, so full resolution is waste.
const maxSampleDim = 256

// Texture is one loaded image bound to a slot under a tag.
type Texture struct {
	Tag   string
	Image *image.NRGBA

	avg RGBA
}

// AverageColor returns the mean color of the whole image. With repeat
// wrapping the UV scale tiles the image across the face, so the average is
// independent of it.
func (t *Texture) AverageColor() RGBA {
	return t.avg
}

// TextureStore is the tag-to-slot registry. Slots are assigned in load
// order, as the images are bound.
type TextureStore struct {
	textures []*Texture
}

func NewTextureStore() *TextureStore {
	return &TextureStore{}
}

// Load decodes an image file (JPEG, PNG or TGA by extension) and binds it
// to the next free slot under tag. A failed load leaves the store unchanged;
// the caller decides whether to continue without the texture.
func (s *TextureStore) Load(path, tag string) error {
	if len(s.textures) >= maxTextureSlots {
		return fmt.Errorf("texture %q: all %d slots in use", tag, maxTextureSlots)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("texture %q: open %s: %w", tag, path, err)
	}
	defer f.Close()

	src, err := decodeImage(f, path)
	if err != nil {
		return fmt.Errorf("texture %q: decode %s: %w", tag, path, err)
	}

	t := &Texture{Tag: tag, Image: toSampleNRGBA(src)}
	t.avg = averageColor(t.Image)
	s.textures = append(s.textures, t)

	b := src.Bounds()
	log.Printf("loaded texture %q from %s (%dx%d, slot %d)", tag, path, b.Dx(), b.Dy(), len(s.textures)-1)
	return nil
}

// Find returns the texture bound under tag. ok reports whether the tag is
// loaded.
func (s *TextureStore) Find(tag string) (*Texture, bool) {
	for _, t := range s.textures {
		if t.Tag == tag {
			return t, true
		}
	}
	return nil, false
}

// Slot returns the slot index a tag is bound to.
func (s *TextureStore) Slot(tag string) (int, bool) {
	for i, t := range s.textures {
		if t.Tag == tag {
			return i, true
		}
	}
	return 0, false
}

func (s *TextureStore) Count() int {
	return len(s.textures)
}

// decodeImage picks the decoder by file extension. Content sniffing is not
// an option here: the tga package registers itself with an empty magic
// string, which makes image.Decode route every file to it.
func decodeImage(r io.Reader, path string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".tga":
		return tga.Decode(r)
	}
	return nil, fmt.Errorf("unsupported image format %q", filepath.Ext(path))
}

// toSampleNRGBA converts to NRGBA, downsampling anything larger than the
// sampling resolution.
func toSampleNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSampleDim && h <= maxSampleDim {
		if n, ok := src.(*image.NRGBA); ok {
			return n
		}
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
		return dst
	}

	scale := float64(maxSampleDim) / float64(w)
	if h > w {
		scale = float64(maxSampleDim) / float64(h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func averageColor(img *image.NRGBA) RGBA {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return RGBA{R: 1, G: 1, B: 1, A: 1}
	}

	var r, g, bl, a uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride : (y-b.Min.Y)*img.Stride+b.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			r += uint64(row[x])
			g += uint64(row[x+1])
			bl += uint64(row[x+2])
			a += uint64(row[x+3])
		}
	}
	d := float64(n) * 255
	return RGBA{
		R: float64(r) / d,
		G: float64(g) / d,
		B: float64(bl) / d,
		A: float64(a) / d,
	}
}
