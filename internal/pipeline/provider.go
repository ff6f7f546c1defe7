package pipeline

import (
	"context"

	"github.com/geniastudio/genia/internal/models"
)

// OutlineParams parameterizes the outline request.
type OutlineParams struct {
	Subject      string
	Kind         models.Kind
	Language     string
	SectionCount int
	// Style is only meaningful for deck outlines.
	Style string
}

// SectionParams parameterizes one prose request.
type SectionParams struct {
	Title    string
	Brief    string
	Language string
	Depth    models.Depth
}

// ContentProvider is the external generative collaborator. All three calls
// may block for a long time and must honor context cancellation.
//
// RenderImage failures are non-fatal by contract: the orchestrator treats an
// error or an empty asset as "no image" and the section lays out without
// one. Outline and WriteSection failures abort the run.
type ContentProvider interface {
	Outline(ctx context.Context, p OutlineParams) ([]models.Section, error)
	WriteSection(ctx context.Context, p SectionParams) (string, error)
	RenderImage(ctx context.Context, prompt string) (models.Image, error)
}
