package views

import (
	"html"
	"strconv"
	"strings"

	"github.com/snarkflix/snarkflix/catalog"
)

// Responsive variant widths, matching the files the images command emits.
var variantWidths = []int{400, 800, 1200}

const variantSizes = "(max-width: 400px) 400px, (max-width: 800px) 800px, 1200px"

// shimmer is the blur-up placeholder style applied to lazy images while
// they load.
const shimmer = "background: linear-gradient(90deg, #f0f0f0 25%, #e0e0e0 50%, #f0f0f0 75%); background-size: 200% 100%; animation: shimmer 1.5s infinite;"

// ImageLoading is the loading hint for review imagery.
type ImageLoading string

const (
	LoadEager ImageLoading = "eager" // above the fold, fetchpriority high
	LoadLazy  ImageLoading = "lazy"
)

// ResponsiveImage emits the markup for a review image. Reviews flagged with
// ResponsiveImages get a <picture> with a width-keyed srcset and the
// original file as fallback; everything else gets a plain <img>. The
// data-fallback attribute is the hook the embedded client asset uses to swap
// in the site logo, at most once, when the image fails to load.
func ResponsiveImage(site Site, r catalog.Review, alt string, loading ImageLoading) string {
	src := normalizeImagePath(r.ImageURL)
	img := imgTag(site, src, alt, loading)
	if !r.ResponsiveImages {
		return img
	}

	base, ext := splitImageExt(src)
	var srcset []string
	for _, w := range variantWidths {
		ws := strconv.Itoa(w)
		srcset = append(srcset, base+"-"+ws+"w."+ext+" "+ws+"w")
	}
	var b strings.Builder
	b.WriteString(`<picture>`)
	b.WriteString(`<source srcset="` + html.EscapeString(strings.Join(srcset, ", ")) + `" sizes="` + variantSizes + `" type="` + variantMIME(ext) + `">`)
	b.WriteString(img)
	b.WriteString(`</picture>`)
	return b.String()
}

// InlineImage emits a fixed-size in-article image with the shimmer
// placeholder, used between content paragraphs.
func InlineImage(site Site, src, alt string) string {
	return `<div class="snarkflix-review-image-inline">` +
		`<img src="` + html.EscapeString(normalizeImagePath(src)) + `" alt="` + html.EscapeString(alt) + `"` +
		` class="snarkflix-review-img-inline" loading="lazy" width="400" height="300"` +
		` data-fallback="` + html.EscapeString(normalizeImagePath(defaultLogo)) + `"` +
		` style="` + shimmer + `"></div>`
}

const defaultLogo = "images/site-assets/logo.webp"

func imgTag(site Site, src, alt string, loading ImageLoading) string {
	var b strings.Builder
	b.WriteString(`<img src="` + html.EscapeString(src) + `" alt="` + html.EscapeString(alt) + `" loading="` + string(loading) + `"`)
	fallback := site.LogoPath
	if fallback == "" {
		fallback = defaultLogo
	}
	b.WriteString(` data-fallback="` + html.EscapeString(normalizeImagePath(fallback)) + `"`)
	if loading == LoadEager {
		b.WriteString(` fetchpriority="high"`)
	} else {
		b.WriteString(` style="` + shimmer + `"`)
	}
	b.WriteString(`>`)
	return b.String()
}

// normalizeImagePath roots relative image paths so detail pages resolve
// them the same way the homepage does.
func normalizeImagePath(p string) string {
	if p == "" || strings.HasPrefix(p, "http") || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

func variantMIME(ext string) string {
	switch strings.ToLower(ext) {
	case "webp":
		return "image/webp"
	case "png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}

// splitImageExt splits "/images/x/poster.webp" into base and extension.
func splitImageExt(p string) (base, ext string) {
	if i := strings.LastIndex(p, "."); i > strings.LastIndex(p, "/") {
		return p[:i], p[i+1:]
	}
	return p, ""
}
