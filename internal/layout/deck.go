package layout

import (
	"strings"

	"github.com/geniastudio/genia/internal/models"
)

// Slide geometry, in renderer units (pptx inches).
const (
	slideTitleX    = 0.5
	slideTitleY    = 0.5
	slideTitleW    = 9
	slideTitleH    = 0.8
	slideTitleSize = 24

	slideImageX = 0.5
	slideImageY = 1.5
	slideImageW = 4.5
	slideImageH = 3

	twoColTextX    = 5.2
	twoColTextY    = 1.5
	twoColTextW    = 4.3
	twoColTextH    = 3.2
	twoColTextSize = 12
	// twoColBudget is the hard character cut for prose next to an image.
	twoColBudget = 450

	fullTextX    = 0.5
	fullTextY    = 1.5
	fullTextW    = 9
	fullTextH    = 3.2
	fullTextSize = 14
	// fullBudget is the hard character cut for full-width prose.
	fullBudget = 800

	deckTitleX    = 1
	deckTitleY    = 2
	deckTitleW    = 8
	deckTitleH    = 2
	deckTitleSize = 36
)

// DeckLayout implements the slide-deck policy: a dark title slide, then one
// slide per section. With an image the slide splits two-column (image left,
// truncated prose right); without one the prose runs full width with a
// larger character budget.
type DeckLayout struct {
	b DeckBuilder
}

func NewDeckLayout(b DeckBuilder) *DeckLayout {
	return &DeckLayout{b: b}
}

// TitleSlide adds the opening slide with the upper-cased subject.
func (l *DeckLayout) TitleSlide(subject string) {
	s := l.b.AddSlide()
	s.SetDarkBackground()
	s.AddText(strings.ToUpper(subject), deckTitleX, deckTitleY, deckTitleW, deckTitleH, TextStyle{
		Size:     deckTitleSize,
		Bold:     true,
		Centered: true,
	})
}

// Section adds one slide for the section, choosing the two-column or
// full-width arrangement by image presence.
func (l *DeckLayout) Section(sec models.Section, prose string, img models.Image) {
	s := l.b.AddSlide()
	s.AddText(sec.Title, slideTitleX, slideTitleY, slideTitleW, slideTitleH, TextStyle{Size: slideTitleSize, Bold: true})

	if img.Present() {
		s.AddImage(img, slideImageX, slideImageY, slideImageW, slideImageH)
		s.AddText(truncate(prose, twoColBudget), twoColTextX, twoColTextY, twoColTextW, twoColTextH, TextStyle{Size: twoColTextSize})
		return
	}
	s.AddText(truncate(prose, fullBudget), fullTextX, fullTextY, fullTextW, fullTextH, TextStyle{Size: fullTextSize})
}

// truncate hard-cuts the prose at budget characters and appends an ellipsis.
// The cut is not word-boundary aware; that is an accepted simplification.
func truncate(text string, budget int) string {
	r := []rune(text)
	if len(r) > budget {
		r = r[:budget]
	}
	return string(r) + "..."
}
