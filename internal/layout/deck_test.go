package layout

import (
	"context"
	"strings"
	"testing"

	"github.com/geniastudio/genia/internal/models"
	"github.com/stretchr/testify/require"
)

type slideText struct {
	text       string
	x, y, w, h float64
	style      TextStyle
}

type fakeSlide struct {
	dark   bool
	texts  []slideText
	images []placed
}

func (s *fakeSlide) SetDarkBackground() { s.dark = true }

func (s *fakeSlide) AddText(text string, x, y, w, h float64, style TextStyle) {
	s.texts = append(s.texts, slideText{text: text, x: x, y: y, w: w, h: h, style: style})
}

func (s *fakeSlide) AddImage(_ models.Image, x, y, w, h float64) {
	s.images = append(s.images, placed{x: x, y: y})
}

type fakeDeckBuilder struct {
	slides   []*fakeSlide
	exported bool
}

func (f *fakeDeckBuilder) AddSlide() Slide {
	s := &fakeSlide{}
	f.slides = append(f.slides, s)
	return s
}

func (f *fakeDeckBuilder) Export(context.Context) error {
	f.exported = true
	return nil
}

func TestTitleSlide(t *testing.T) {
	b := &fakeDeckBuilder{}
	NewDeckLayout(b).TitleSlide("la finance")

	require.Len(t, b.slides, 1)
	s := b.slides[0]
	require.True(t, s.dark)
	require.Equal(t, "LA FINANCE", s.texts[0].text)
	require.True(t, s.texts[0].style.Centered)
}

func TestSection_WithImage_TwoColumns(t *testing.T) {
	b := &fakeDeckBuilder{}
	l := NewDeckLayout(b)

	prose := strings.Repeat("x", 500)
	img := models.Image{MIME: "image/png", Data: []byte{1}}
	l.Section(models.Section{Title: "Ch 1"}, prose, img)

	s := b.slides[0]
	require.Len(t, s.images, 1)
	require.Equal(t, float64(slideImageX), s.images[0].x)

	require.Len(t, s.texts, 2)
	body := s.texts[1]
	require.Equal(t, float64(twoColTextX), body.x)
	require.Equal(t, twoColBudget+3, len([]rune(body.text)), "450 chars plus ellipsis")
	require.True(t, strings.HasSuffix(body.text, "..."))
}

func TestSection_NoImage_FullWidth(t *testing.T) {
	b := &fakeDeckBuilder{}
	l := NewDeckLayout(b)

	prose := strings.Repeat("y", 1000)
	l.Section(models.Section{Title: "Ch 2"}, prose, models.Image{})

	s := b.slides[0]
	require.Empty(t, s.images)

	body := s.texts[1]
	require.Equal(t, float64(fullTextX), body.x)
	require.Equal(t, float64(fullTextW), body.w)
	require.Equal(t, fullBudget+3, len([]rune(body.text)))
}

func TestTruncate_ShortProseKeepsEllipsis(t *testing.T) {
	// The cut is a plain substring; the ellipsis is appended regardless,
	// matching the renderer contract.
	require.Equal(t, "court...", truncate("court", twoColBudget))
}

func TestTruncate_IsRuneSafe(t *testing.T) {
	in := strings.Repeat("é", 10)
	out := truncate(in, 5)
	require.Equal(t, "ééééé...", out)
}
