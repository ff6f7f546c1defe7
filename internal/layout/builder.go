// Package layout decides where content lands on pages and slides. The two
// policies are pure walks over the section stream that issue drawing calls
// against an external renderer's incremental build API; neither keeps state
// across sections beyond the renderer's own page/slide cursor.
package layout

import (
	"context"

	"github.com/geniastudio/genia/internal/models"
)

// TextStyle carries the renderer hints a text drawing call needs.
type TextStyle struct {
	Size     float64
	Bold     bool
	Centered bool
	MaxWidth float64
}

// DocumentBuilder is the incremental build API of a paginated-document
// renderer using absolute coordinates on fixed-size pages.
type DocumentBuilder interface {
	// AddPage starts a new page and moves the cursor to it.
	AddPage()

	// FillPage paints the current page with the dark cover background.
	FillPage()

	// AddText draws a single run of text at (x, y).
	AddText(text string, x, y float64, style TextStyle)

	// AddImage places an image with its top-left corner at (x, y).
	AddImage(img models.Image, x, y, w, h float64)

	// SplitText wraps text into lines that fit the given width, in order.
	SplitText(text string, width float64) []string

	// Export finalizes the document and writes the output file.
	Export(ctx context.Context) error
}

// Slide is one slide under construction.
type Slide interface {
	SetDarkBackground()
	AddText(text string, x, y, w, h float64, style TextStyle)
	AddImage(img models.Image, x, y, w, h float64)
}

// DeckBuilder is the incremental build API of a slide-deck renderer.
type DeckBuilder interface {
	AddSlide() Slide
	Export(ctx context.Context) error
}
