// Package imaging converts uploaded photos into the uniform JPEG format the
// rest of the pipeline expects. HEIC/HEIF input (the iPhone default) is
// transcoded first; everything else goes straight through the stdlib decoders.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/jdeng/goheif"
	_ "golang.org/x/image/webp"
)

// jpegQuality matches the quality used for both the HEIC transcode and the
// final re-encode, so all normalized images are comparable.
const jpegQuality = 92

// heicBrands are the ftyp major brands treated as HEIC/HEIF containers.
var heicBrands = []string{"heic", "heif", "heix", "mif1", "msf1"}

// SniffHEIC reports whether data starts with an ISO-BMFF ftyp box carrying a
// HEIC/HEIF brand ("ftypheic" etc. at offset 4).
func SniffHEIC(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	if string(data[4:8]) != "ftyp" {
		return false
	}
	brand := string(data[8:12])
	for _, b := range heicBrands {
		if brand == b {
			return true
		}
	}
	return false
}

// NormalizeJPEG decodes data (HEIC via the dedicated decoder, JPEG/PNG/GIF/WebP
// via the registered stdlib and x/image decoders) and re-encodes it as a JPEG
// at a fixed quality. Already-JPEG input is re-encoded too, so every image the
// model sees has been through the same codec path.
func NormalizeJPEG(data []byte) ([]byte, error) {
	var (
		img image.Image
		err error
	)
	if SniffHEIC(data) {
		img, err = goheif.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode heic: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
