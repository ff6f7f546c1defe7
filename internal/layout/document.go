package layout

import (
	"strings"

	"github.com/geniastudio/genia/internal/models"
)

// Page geometry for the paginated document, in renderer units (A4 mm).
const (
	pageW = 210
	pageH = 297

	marginLeft = 20
	topMargin  = 20

	titleY    = 30
	titleSize = 22

	imageY = 45
	imageW = 170
	imageH = 90

	textWidth          = 170
	textBelowImageY    = 145
	textBelowTitleY    = 45
	bottomThreshold    = 275
	lineStep           = 5.5
	bodySize           = 10.5

	coverTitleSize  = 26
	coverTitleX     = 105
	coverTitleY     = 50
	coverTitleWidth = 180
	coverImageX     = 15
	coverImageY     = 80
	coverImageW     = 180
	coverImageH     = 100
)

// DocumentLayout implements the paginated-document policy: one fresh page
// per section, title, optional image at a fixed offset, then greedy
// single-pass line packing with a page break whenever the cursor would pass
// the bottom threshold. No look-ahead, no widow/orphan control.
type DocumentLayout struct {
	b DocumentBuilder
}

func NewDocumentLayout(b DocumentBuilder) *DocumentLayout {
	return &DocumentLayout{b: b}
}

// Cover draws the dark cover page: filled background, optional cover image,
// upper-cased subject.
func (l *DocumentLayout) Cover(subject string, img models.Image) {
	l.b.FillPage()
	if img.Present() {
		l.b.AddImage(img, coverImageX, coverImageY, coverImageW, coverImageH)
	}
	l.b.AddText(strings.ToUpper(subject), coverTitleX, coverTitleY, TextStyle{
		Size:     coverTitleSize,
		Centered: true,
		MaxWidth: coverTitleWidth,
	})
}

// Section lays out one section on a new page: title, image if present, then
// the wrapped prose lines. The vertical cursor starts just below the image
// (or just below the title when there is none) and resets to the top margin
// on every page break.
func (l *DocumentLayout) Section(sec models.Section, prose string, img models.Image) {
	l.b.AddPage()
	l.b.AddText(sec.Title, marginLeft, titleY, TextStyle{Size: titleSize, Bold: true})

	y := textBelowTitleY
	if img.Present() {
		l.b.AddImage(img, marginLeft, imageY, imageW, imageH)
		y = textBelowImageY
	}

	lines := l.b.SplitText(prose, textWidth)
	cursor := float64(y)
	for _, line := range lines {
		if cursor > bottomThreshold {
			l.b.AddPage()
			cursor = topMargin
		}
		l.b.AddText(line, marginLeft, cursor, TextStyle{Size: bodySize})
		cursor += lineStep
	}
}
