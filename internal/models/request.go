package models

import (
	"strings"

	"github.com/geniastudio/genia/internal/common"
)

// Kind selects the output format of a generation run.
type Kind string

const (
	KindEbook Kind = "ebook"
	KindPPT   Kind = "ppt"
)

// Depth selects how elaborate the generated prose should be.
type Depth string

const (
	DepthStandard Depth = "standard"
	DepthDetailed Depth = "detailed"
	DepthExpert   Depth = "expert"
)

const (
	// DefaultSectionCount is the section count every free-tier request is
	// clamped to.
	DefaultSectionCount = 5

	// MinSectionCount and MaxSectionCount bound the pro-tier section count.
	MinSectionCount = 3
	MaxSectionCount = 12

	// DefaultStyle is the slide style used for free-tier deck requests.
	DefaultStyle = "professionnel"
)

// GenerationRequest is one validated, entitlement-clamped pipeline request.
// Clamping happens here, once; nothing deeper in the pipeline re-checks the
// plan, so a free-tier request can never reach the provider with elevated
// parameters.
type GenerationRequest struct {
	Subject      string
	Kind         Kind
	Language     string
	SectionCount int
	Depth        Depth
	Style        string
}

// NewGenerationRequest builds a request for the given session, applying
// entitlement clamping: free-tier sessions always get the default section
// count, standard depth, and the default style. Pro sessions get the
// requested values with the section count bounded to [MinSectionCount,
// MaxSectionCount].
func NewGenerationRequest(s *Session, subject string, kind Kind, language string, count int, depth Depth, style string) (*GenerationRequest, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, common.ErrEmptySubject
	}

	switch kind {
	case KindEbook, KindPPT:
	default:
		kind = KindEbook
	}

	r := &GenerationRequest{
		Subject:      subject,
		Kind:         kind,
		Language:     language,
		SectionCount: DefaultSectionCount,
		Depth:        DepthStandard,
		Style:        DefaultStyle,
	}

	if !s.IsPro() {
		return r, nil
	}

	if count < MinSectionCount {
		count = MinSectionCount
	}
	if count > MaxSectionCount {
		count = MaxSectionCount
	}
	r.SectionCount = count

	switch depth {
	case DepthStandard, DepthDetailed, DepthExpert:
		r.Depth = depth
	}

	if style = strings.TrimSpace(style); style != "" {
		r.Style = style
	}

	return r, nil
}
