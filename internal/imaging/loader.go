package imaging

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/scandoc/textalign/internal/errors"
)

// supportedExtensions is the set of raster formats the pipeline accepts.
// Comparison is case-insensitive; anything else is skipped, not errored.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// SupportedExtension reports whether the file's extension is in the
// supported raster set. The check is case-insensitive.
func SupportedExtension(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Load opens and decodes an image file.
//
// The format is determined by content sniffing through the registered
// decoders (PNG, JPEG, BMP, TIFF), not by the file extension, so a
// mislabeled file still decodes (or fails) on its actual contents.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the
//     format and color model (e.g. *image.NRGBA, *image.Gray, *image.YCbCr).
//   - error: An IO error if the file cannot be opened, or an INVALID_IMAGE
//     error if the contents cannot be decoded or have zero dimensions.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO(path, "open image", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.NewInvalidImage(path, "decode image", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, errors.NewInvalidImage(path, "zero-dimension image", nil)
	}

	return img, nil
}

// Save encodes an image to disk, choosing the codec from the destination
// extension. Existing files are overwritten.
//
// JPEG output uses quality 95; TIFF output uses the encoder defaults.
// An unsupported destination extension yields an UNSUPPORTED_FORMAT error.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIO(path, "create output", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		f.Close()
		return errors.NewUnsupportedFormat(path, ext)
	}
	if err != nil {
		f.Close()
		return errors.NewIO(path, "encode output", err)
	}
	if err := f.Close(); err != nil {
		return errors.NewIO(path, "close output", err)
	}
	return nil
}
