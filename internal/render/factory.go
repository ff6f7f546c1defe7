package render

import (
	"path/filepath"
	"strings"

	"github.com/geniastudio/genia/internal/layout"
)

// Factory creates build objects writing into a fixed output directory,
// named after the subject: "{subject}.txt" for documents, "PPT_{subject}.txt"
// for decks.
type Factory struct {
	OutputDir string
}

func NewFactory(outputDir string) *Factory {
	return &Factory{OutputDir: outputDir}
}

func (f *Factory) NewDocument(subject string) (layout.DocumentBuilder, error) {
	return NewTextDocument(filepath.Join(f.OutputDir, sanitize(subject)+".txt")), nil
}

func (f *Factory) NewDeck(subject string) (layout.DeckBuilder, error) {
	return NewTextDeck(filepath.Join(f.OutputDir, "PPT_"+sanitize(subject)+".txt")), nil
}

// sanitize keeps subjects usable as file names.
func sanitize(subject string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", string(filepath.Separator), "-")
	return strings.TrimSpace(r.Replace(subject))
}
