package cli

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// registered for image.Decode
	_ "golang.org/x/image/webp"
)

// LoadImage reads and decodes the file at path. The returned format is the
// name registered by the decoder ("png", "jpeg", "gif", "bmp", "tiff", "webp").
func LoadImage(path string) (image.Image, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading %s: %v", ErrDecode, path, err)
	}
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	debugf("decoded %s as %s (%dx%d)", path, format, img.Bounds().Dx(), img.Bounds().Dy())
	return img, format, nil
}

// SaveOptions tunes the encoders used by SaveImage.
type SaveOptions struct {
	JPEGQuality int
}

// SaveImage encodes img using the format implied by the extension of path and
// writes it atomically: the data goes to a temporary file in the same
// directory, which is renamed over path only after a successful encode.
// Unknown extensions are written as PNG.
func SaveImage(path string, img image.Image, opts SaveOptions) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".depthify-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := encodeByExt(tmp, filepath.Ext(path), img, opts); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

func encodeByExt(w io.Writer, ext string, img image.Image, opts SaveOptions) error {
	switch strings.ToLower(ext) {
	case ".png":
		debugf("encoding png")
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		q := opts.JPEGQuality
		if q < 1 || q > 100 {
			q = 92
		}
		debugf("encoding jpeg (quality %d)", q)
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case ".gif":
		debugf("encoding gif")
		return encodeGIF(w, img)
	case ".bmp":
		debugf("encoding bmp")
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		debugf("encoding tiff")
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case ".webp":
		debugf("encoding lossless webp")
		return nativewebp.Encode(w, img, nil)
	default:
		logger.Printf("unknown extension %q, writing PNG data", ext)
		return png.Encode(w, img)
	}
}

// encodeGIF writes img with a palette made of its exact colors when it has at
// most 256 of them, so posterized levels are neither remapped nor dithered.
func encodeGIF(w io.Writer, img image.Image) error {
	pal, ok := exactPalette(img, 256)
	if !ok {
		return gif.Encode(w, img, nil)
	}
	b := img.Bounds()
	p := image.NewPaletted(b, pal)
	draw.Draw(p, b, img, b.Min, draw.Src)
	return gif.Encode(w, p, nil)
}

// exactPalette collects the distinct colors of img in scan order. It gives up
// once more than limit colors are found. Fully transparent pixels share a
// single transparent entry.
func exactPalette(img image.Image, limit int) (color.Palette, bool) {
	seen := make(map[color.NRGBA]struct{})
	var pal color.Palette
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				c = color.NRGBA{}
			}
			if _, ok := seen[c]; ok {
				continue
			}
			if len(pal) == limit {
				return nil, false
			}
			seen[c] = struct{}{}
			pal = append(pal, c)
		}
	}
	if len(pal) == 0 {
		pal = append(pal, color.NRGBA{})
	}
	return pal, true
}
