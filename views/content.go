package views

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/snarkflix/snarkflix/catalog"
)

var reInlineImage = regexp.MustCompile(`\[IMAGE:([^\]]+)\]`)

// ContentHTML renders a review's paragraph-delimited body. Inline
// [IMAGE:path] markers expand in place; any additional images not used
// inline are spread through the text at fixed fractions of its length
// (1/3 for one image, 1/3+2/3 for two, 1/4+1/2+3/4 for three or more).
func ContentHTML(site Site, r catalog.Review) string {
	alt := "Scene from " + r.TitleWithoutYear() + " (" + strconv.Itoa(r.ReleaseYear) + ")"

	inline := make(map[string]bool)
	content := reInlineImage.ReplaceAllStringFunc(r.Content, func(m string) string {
		path := reInlineImage.FindStringSubmatch(m)[1]
		inline[path] = true
		return "\x00img:" + path + "\x00"
	})

	var remaining []string
	if r.AdditionalImage != "" && !inline[r.AdditionalImage] {
		remaining = append(remaining, r.AdditionalImage)
	}
	for _, img := range r.AdditionalImages {
		if !inline[img] {
			remaining = append(remaining, img)
		}
	}

	paragraphs := strings.Split(content, "\n\n")
	positions := imagePositions(len(paragraphs), len(remaining))

	var b strings.Builder
	imageIndex := 0
	for i, p := range paragraphs {
		writeParagraph(&b, site, p, alt)
		if imageIndex < len(remaining) && positions[i] {
			b.WriteString(InlineImage(site, remaining[imageIndex], alt))
			imageIndex++
		}
	}
	return b.String()
}

// writeParagraph emits one paragraph, expanding the placeholder markers the
// inline-image pass left behind.
func writeParagraph(b *strings.Builder, site Site, p, alt string) {
	parts := strings.Split(p, "\x00")
	b.WriteString("<p>")
	for _, part := range parts {
		if path, ok := strings.CutPrefix(part, "img:"); ok {
			b.WriteString("</p>")
			b.WriteString(InlineImage(site, path, alt))
			b.WriteString("<p>")
			continue
		}
		b.WriteString(html.EscapeString(part))
	}
	b.WriteString("</p>")
}

// imagePositions marks the paragraph indexes after which an interleaved
// image belongs.
func imagePositions(paragraphs, images int) map[int]bool {
	pos := make(map[int]bool)
	switch {
	case images <= 0 || paragraphs == 0:
	case images == 1:
		pos[paragraphs/3] = true
	case images == 2:
		pos[paragraphs/3] = true
		pos[paragraphs*2/3] = true
	default:
		pos[paragraphs/4] = true
		pos[paragraphs/2] = true
		pos[paragraphs*3/4] = true
	}
	return pos
}
