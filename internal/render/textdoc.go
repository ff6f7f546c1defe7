// Package render holds the local output builders behind the layout
// interfaces. They render documents and decks as structured plain text;
// binary PDF/PPTX writers can be dropped in behind the same interfaces.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/geniastudio/genia/internal/layout"
	"github.com/geniastudio/genia/internal/models"
)

// mmPerChar converts the document's mm-based text width into a monospace
// character budget.
const mmPerChar = 1.8

type docPage struct {
	filled bool
	ops    []string
}

// TextDocument implements layout.DocumentBuilder as a plain-text file.
// Like the PDF build object it mimics, it starts with one open page.
type TextDocument struct {
	path  string
	pages []*docPage
}

func NewTextDocument(path string) *TextDocument {
	d := &TextDocument{path: path}
	d.pages = append(d.pages, &docPage{})
	return d
}

func (d *TextDocument) current() *docPage {
	return d.pages[len(d.pages)-1]
}

func (d *TextDocument) AddPage() {
	d.pages = append(d.pages, &docPage{})
}

func (d *TextDocument) FillPage() {
	d.current().filled = true
}

func (d *TextDocument) AddText(text string, x, y float64, style layout.TextStyle) {
	if style.Centered {
		width := int(style.MaxWidth / mmPerChar)
		if pad := (width - len([]rune(text))) / 2; pad > 0 {
			text = strings.Repeat(" ", pad) + text
		}
	}
	d.current().ops = append(d.current().ops, text)
}

func (d *TextDocument) AddImage(img models.Image, x, y, w, h float64) {
	d.current().ops = append(d.current().ops, fmt.Sprintf("[image %s %d bytes]", img.MIME, len(img.Data)))
}

// SplitText word-wraps text to the character budget implied by width.
// Words longer than a whole line are hard-cut.
func (d *TextDocument) SplitText(text string, width float64) []string {
	budget := int(width / mmPerChar)
	if budget < 1 {
		budget = 1
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := ""
		for _, w := range words {
			for len([]rune(w)) > budget {
				r := []rune(w)
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, string(r[:budget]))
				w = string(r[budget:])
			}
			switch {
			case line == "":
				line = w
			case len([]rune(line))+1+len([]rune(w)) <= budget:
				line += " " + w
			default:
				lines = append(lines, line)
				line = w
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Export writes the document to its path. The file is assembled in a
// temporary sibling first and renamed into place, so a failed export never
// leaves a truncated document behind.
func (d *TextDocument) Export(ctx context.Context) error {
	var sb strings.Builder
	for i, p := range d.pages {
		fmt.Fprintf(&sb, "=== page %d ===\n", i+1)
		if p.filled {
			sb.WriteString("[cover]\n")
		}
		for _, op := range p.ops {
			sb.WriteString(op)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return writeFileAtomic(d.path, []byte(sb.String()))
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating output dir: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%v.tmp", uuid.New()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("error writing temporary file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error finalizing file: %w", err)
	}
	return nil
}
