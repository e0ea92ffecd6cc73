package snarkflix

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/image/draw"
)

// VariantWidths are the responsive widths the images command produces,
// matching the srcset the review pages emit.
var VariantWidths = []int{400, 800, 1200}

const jpegQuality = 80

// reVariantSuffix matches filenames that are themselves generated variants,
// so repeated runs do not produce variants of variants.
var reVariantSuffix = regexp.MustCompile(`-\d+w\.[a-zA-Z]+$`)

// GenerateVariants walks dir and writes width-keyed resized copies of every
// JPEG and PNG image next to the original: poster.jpg gains poster-400w.jpg,
// poster-800w.jpg, and poster-1200w.jpg. Variants wider than the source are
// skipped rather than upscaled. Returns the number of files written.
func GenerateVariants(dir string, widths []int) (int, error) {
	if len(widths) == 0 {
		widths = VariantWidths
	}
	written := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || reVariantSuffix.MatchString(d.Name()) {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			return nil
		}
		n, err := generateFileVariants(path, widths)
		if err != nil {
			return fmt.Errorf("variants for %s: %w", path, err)
		}
		written += n
		return nil
	})
	return written, err
}

func generateFileVariants(path string, widths []int) (int, error) {
	srcInfo, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	written := 0
	for _, w := range widths {
		if w >= srcW {
			continue
		}
		// Skip variants already newer than the source.
		out := fmt.Sprintf("%s-%dw%s", base, w, ext)
		if info, err := os.Stat(out); err == nil && !info.ModTime().Before(srcInfo.ModTime()) {
			continue
		}
		h := srcH * w / srcW
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

		if err := writeImage(out, dst, ext); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func writeImage(path string, img image.Image, ext string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(f, img)
	default:
		return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	}
}
