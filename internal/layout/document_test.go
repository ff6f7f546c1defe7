package layout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/geniastudio/genia/internal/models"
	"github.com/stretchr/testify/require"
)

// placed is one recorded AddText call.
type placed struct {
	page int
	text string
	x, y float64
}

// fakeDocBuilder records drawing calls. SplitText splits on newlines so
// tests control the wrapped line sequence exactly.
type fakeDocBuilder struct {
	pages    int
	filled   int
	images   []placed
	texts    []placed
	exported bool
}

func (f *fakeDocBuilder) AddPage()  { f.pages++ }
func (f *fakeDocBuilder) FillPage() { f.filled++ }

func (f *fakeDocBuilder) AddText(text string, x, y float64, _ TextStyle) {
	f.texts = append(f.texts, placed{page: f.pages, text: text, x: x, y: y})
}

func (f *fakeDocBuilder) AddImage(_ models.Image, x, y, _, _ float64) {
	f.images = append(f.images, placed{page: f.pages, x: x, y: y})
}

func (f *fakeDocBuilder) SplitText(text string, _ float64) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func (f *fakeDocBuilder) Export(context.Context) error {
	f.exported = true
	return nil
}

// bodyLines returns the AddText calls made at body size, in order.
func (f *fakeDocBuilder) bodyLines() []placed {
	var out []placed
	for _, p := range f.texts {
		if p.y != titleY && p.y != coverTitleY {
			out = append(out, p)
		}
	}
	return out
}

func proseLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i)
	}
	return strings.Join(lines, "\n")
}

func TestSection_ShortProseStaysOnOnePage(t *testing.T) {
	b := &fakeDocBuilder{}
	l := NewDocumentLayout(b)

	l.Section(models.Section{Title: "Intro"}, proseLines(5), models.Image{})

	require.Equal(t, 1, b.pages)
	require.Empty(t, b.images)

	body := b.bodyLines()
	require.Len(t, body, 5)
	// No image: prose starts right below the title.
	require.Equal(t, float64(textBelowTitleY), body[0].y)
}

func TestSection_ImageShiftsProseStart(t *testing.T) {
	b := &fakeDocBuilder{}
	l := NewDocumentLayout(b)

	img := models.Image{MIME: "image/png", Data: []byte{1}}
	l.Section(models.Section{Title: "Intro", ImagePrompt: "p"}, proseLines(3), img)

	require.Len(t, b.images, 1)
	require.Equal(t, float64(imageY), b.images[0].y)
	require.Equal(t, float64(textBelowImageY), b.bodyLines()[0].y)
}

func TestSection_LongProseBreaksPages_NoLossNoDuplication(t *testing.T) {
	b := &fakeDocBuilder{}
	l := NewDocumentLayout(b)

	const n = 30
	img := models.Image{MIME: "image/png", Data: []byte{1}}
	l.Section(models.Section{Title: "Long"}, proseLines(n), img)

	require.GreaterOrEqual(t, b.pages, 2, "overflowing section must emit at least 2 pages")

	body := b.bodyLines()
	require.Len(t, body, n)

	// Every line exactly once, in input order.
	for i, p := range body {
		require.Equal(t, fmt.Sprintf("line %02d", i), p.text)
	}

	// Lines never land past the bottom threshold, and continuation pages
	// restart at the top margin.
	var prev placed
	for i, p := range body {
		require.LessOrEqual(t, p.y, float64(bottomThreshold))
		if i > 0 && p.page != prev.page {
			require.Equal(t, float64(topMargin), p.y)
		}
		prev = p
	}

	// Pages are visited in order, no page left empty.
	require.Equal(t, 1, body[0].page)
	require.Equal(t, b.pages, body[len(body)-1].page)
}

func TestSection_BreakHappensPastThreshold(t *testing.T) {
	// With an image the first page fits lines at y = 145, 150.5, ... 270.5:
	// 24 lines. Line 25 must open page 2 at the top margin.
	b := &fakeDocBuilder{}
	l := NewDocumentLayout(b)

	img := models.Image{MIME: "image/png", Data: []byte{1}}
	l.Section(models.Section{Title: "Exact"}, proseLines(25), img)

	body := b.bodyLines()
	require.Len(t, body, 25)
	require.Equal(t, 1, body[23].page)
	require.Equal(t, 2, body[24].page)
	require.Equal(t, float64(topMargin), body[24].y)
}

func TestCover(t *testing.T) {
	b := &fakeDocBuilder{}
	l := NewDocumentLayout(b)

	t.Run("with image", func(t *testing.T) {
		l.Cover("la finance", models.Image{MIME: "image/png", Data: []byte{1}})
		require.Equal(t, 1, b.filled)
		require.Len(t, b.images, 1)
		require.Equal(t, "LA FINANCE", b.texts[0].text)
	})

	t.Run("image absent", func(t *testing.T) {
		b2 := &fakeDocBuilder{}
		NewDocumentLayout(b2).Cover("go", models.Image{})
		require.Equal(t, 1, b2.filled)
		require.Empty(t, b2.images)
	})
}
