package imagefit

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg" // register decoders for the supported formats
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// allowedExts lists the raster formats a source identifier may carry.
// Vector formats are rejected before any file or network access happens.
var allowedExts = []string{".png", ".jpg", ".jpeg"}

func allowedExt(src string) bool {
	for _, ext := range allowedExts {
		if strings.HasSuffix(src, ext) {
			return true
		}
	}
	return false
}

// Load resolves a source identifier into a decoded image with its EXIF
// orientation already applied. The identifier is either a local file path or
// an http-prefixed URL; both must end in .png, .jpg or .jpeg. Remote sources
// are fetched with a single blocking GET and no retry; a fetch, read or
// decode failure propagates to the caller unchanged.
func Load(src string) (image.Image, error) {
	if !allowedExt(src) {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrFormat, src, strings.Join(allowedExts, ", "))
	}

	var data []byte
	if strings.HasPrefix(src, "http") {
		resp, err := http.Get(src)
		if err != nil {
			return nil, fmt.Errorf("imagefit: fetching %s: %w", src, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("imagefit: fetching %s: unexpected status %s", src, resp.Status)
		}
		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("imagefit: fetching %s: %w", src, err)
		}
	} else {
		path, err := filepath.Abs(src)
		if err != nil {
			return nil, fmt.Errorf("imagefit: resolving %s: %w", src, err)
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("imagefit: reading %s: %w", src, err)
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imagefit: decoding %s: %w", src, err)
	}
	return applyOrientation(img, data)
}

// applyOrientation rotates or mirrors img according to the EXIF orientation
// tag found in the raw bytes. Absent or unreadable metadata means no
// rotation; an orientation outside 1-8 is a defect in the source data.
func applyOrientation(img image.Image, raw []byte) (image.Image, error) {
	meta, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		return img, nil
	}
	tag, err := meta.Get(exif.Orientation)
	if err != nil {
		return img, nil
	}
	o, err := tag.Int(0)
	if err != nil {
		return img, nil
	}
	return Orient(img, o)
}

// Orient applies one of the eight standard EXIF orientation transforms.
// Rotations are counter-clockwise, matching the EXIF interpretation used by
// common raster tooling.
func Orient(img image.Image, orientation int) (image.Image, error) {
	switch orientation {
	case 1:
		return img, nil
	case 2:
		return imaging.FlipH(img), nil
	case 3:
		return imaging.Rotate180(img), nil
	case 4:
		return imaging.FlipV(img), nil
	case 5:
		return imaging.Rotate90(imaging.FlipV(img)), nil
	case 6:
		return imaging.Rotate270(img), nil
	case 7:
		return imaging.Rotate270(imaging.FlipV(img)), nil
	case 8:
		return imaging.Rotate90(img), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrOrientation, orientation)
}
