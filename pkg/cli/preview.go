package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"strings"
)

// Terminal preview over the kitty graphics protocol or the iTerm2-style
// inline image sequence (OSC 1337), which WezTerm, VSCode and others accept.

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "Tabby":
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

// previewSize is the placement of an image in terminal cells.
type previewSize struct {
	Cols, Rows              int
	PixelWidth, PixelHeight int
}

// computePreviewSize fits the image into at most 80x40 cells of 8x16 pixels
// without upscaling.
func computePreviewSize(w, h int) previewSize {
	const (
		charW, charH     = 8, 16
		minCols, minRows = 6, 3
		maxCols, maxRows = 80, 40
	)
	scale := 1.0
	if w > 0 && h > 0 {
		scale = math.Min(1.0, math.Min(float64(maxCols*charW)/float64(w), float64(maxRows*charH)/float64(h)))
	}
	cols := int(math.Round(float64(w) * scale / charW))
	rows := int(math.Round(float64(h) * scale / charH))
	cols = min(max(cols, minCols), maxCols)
	rows = min(max(rows, minRows), maxRows)
	return previewSize{Cols: cols, Rows: rows, PixelWidth: cols * charW, PixelHeight: rows * charH}
}

// PreviewImage writes img to out as an inline terminal image. backend may be
// "inline" or "kitty"; empty means detect from the environment.
func PreviewImage(out io.Writer, img image.Image, backend string) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	if backend == "" {
		switch {
		case isKitty():
			backend = "kitty"
		case isInlineImageCapable():
			backend = "inline"
		default:
			return fmt.Errorf("terminal does not support inline images")
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	size := computePreviewSize(img.Bounds().Dx(), img.Bounds().Dy())
	debugf("preview via %s: %d bytes, %dx%d cells", backend, buf.Len(), size.Cols, size.Rows)
	switch backend {
	case "kitty":
		return sendKittyImage(out, buf.Bytes(), size)
	case "inline":
		return sendInlineImage(out, buf.Bytes(), size)
	}
	return fmt.Errorf("unknown preview backend %q", backend)
}

// sendKittyImage transmits PNG data in 4096-byte base64 chunks.
func sendKittyImage(out io.Writer, data []byte, size previewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096
	for pos := 0; pos < len(enc); pos += chunkSize {
		end := min(pos+chunkSize, len(enc))
		more := 0
		if end < len(enc) {
			more = 1
		}
		var seq string
		if pos == 0 {
			// a=T transmit and display, f=100 PNG, q=2 no replies
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,q=2,c=%d,r=%d,m=%d;%s\x1b\\", size.Cols, size.Rows, more, enc[pos:end])
		} else {
			seq = fmt.Sprintf("\x1b_Gm=%d;%s\x1b\\", more, enc[pos:end])
		}
		if _, err := io.WriteString(out, seq); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "\n")
	return err
}

func sendInlineImage(out io.Writer, data []byte, size previewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	meta := fmt.Sprintf("size=%d;width=%dpx;height=%dpx;", len(data), size.PixelWidth, size.PixelHeight)
	_, err := io.WriteString(out, "\x1b]1337;File=name=preview.png;inline=1;"+meta+":"+enc+"\a\n")
	return err
}
