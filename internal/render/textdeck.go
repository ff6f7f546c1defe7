package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/geniastudio/genia/internal/layout"
	"github.com/geniastudio/genia/internal/models"
)

type textSlide struct {
	dark bool
	ops  []string
}

func (s *textSlide) SetDarkBackground() {
	s.dark = true
}

func (s *textSlide) AddText(text string, x, y, w, h float64, style layout.TextStyle) {
	s.ops = append(s.ops, text)
}

func (s *textSlide) AddImage(img models.Image, x, y, w, h float64) {
	s.ops = append(s.ops, fmt.Sprintf("[image %s %d bytes]", img.MIME, len(img.Data)))
}

// TextDeck implements layout.DeckBuilder as a plain-text file.
type TextDeck struct {
	path   string
	slides []*textSlide
}

func NewTextDeck(path string) *TextDeck {
	return &TextDeck{path: path}
}

func (d *TextDeck) AddSlide() layout.Slide {
	s := &textSlide{}
	d.slides = append(d.slides, s)
	return s
}

func (d *TextDeck) Export(ctx context.Context) error {
	var sb strings.Builder
	for i, s := range d.slides {
		fmt.Fprintf(&sb, "--- slide %d ---\n", i+1)
		if s.dark {
			sb.WriteString("[dark]\n")
		}
		for _, op := range s.ops {
			sb.WriteString(op)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return writeFileAtomic(d.path, []byte(sb.String()))
}
