// Package pipeline drives the multi-stage generation sequence: outline,
// then per-section prose and image strictly in order, then assembly and
// export. Quota is consumed exactly once, after the exported file exists.
package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/geniastudio/genia/internal/common"
	"github.com/geniastudio/genia/internal/layout"
	"github.com/geniastudio/genia/internal/license"
	"github.com/geniastudio/genia/internal/logging"
	"github.com/geniastudio/genia/internal/models"
)

// State is the orchestrator's position in the generation sequence.
type State string

const (
	StateIdle       State = "idle"
	StateOutlining  State = "outlining"
	StateWriting    State = "writing"
	StateAssembling State = "assembling"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Progress is one externally observable step of a run.
type Progress struct {
	State State
	// Section is the 1-based index of the section being written; only set
	// in StateWriting.
	Section int
	Total   int
}

// BuilderFactory creates a renderer build object for one run.
type BuilderFactory interface {
	NewDocument(subject string) (layout.DocumentBuilder, error)
	NewDeck(subject string) (layout.DeckBuilder, error)
}

// Persister mirrors a mutated session to the device store, best-effort.
type Persister interface {
	Persist(ctx context.Context, s *models.Session)
}

// Result summarizes a finished run.
type Result struct {
	RunID    string
	Kind     models.Kind
	Sections int
}

// Orchestrator runs one generation request at a time. A second Generate
// call while one is in flight is rejected with common.ErrPipelineBusy, even
// though the CLI already serializes calls.
type Orchestrator struct {
	provider ContentProvider
	builders BuilderFactory
	ledger   *license.Ledger
	store    Persister
	log      logging.Logger

	onProgress func(Progress)

	mu      sync.Mutex
	state   State
	entropy *rand.Rand
}

// NewOrchestrator wires the pipeline. onProgress may be nil.
func NewOrchestrator(provider ContentProvider, builders BuilderFactory, ledger *license.Ledger, store Persister, log logging.Logger, onProgress func(Progress)) *Orchestrator {
	return &Orchestrator{
		provider:   provider,
		builders:   builders,
		ledger:     ledger,
		store:      store,
		log:        log,
		onProgress: onProgress,
		state:      StateIdle,
		entropy:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// State returns the current pipeline state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State, section, total int) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	if o.onProgress != nil {
		o.onProgress(Progress{State: s, Section: section, Total: total})
	}
}

// Generate runs the full pipeline for req against the session.
//
// Sequence: quota gate → outline → per-section prose+image strictly in
// outline order → export → debit → persist. Outline and prose failures end
// the run with no debit; image failures only cost the section its image;
// export failure also forfeits the debit (the user never got a file).
func (o *Orchestrator) Generate(ctx context.Context, s *models.Session, req *models.GenerationRequest) (*Result, error) {
	o.mu.Lock()
	if o.state != StateIdle && o.state != StateDone && o.state != StateFailed {
		o.mu.Unlock()
		return nil, common.ErrPipelineBusy
	}
	o.state = StateOutlining
	o.mu.Unlock()

	res, err := o.run(ctx, s, req)
	if err != nil {
		o.setState(StateFailed, 0, 0)
		return nil, err
	}
	o.setState(StateDone, 0, 0)
	return res, nil
}

func (o *Orchestrator) run(ctx context.Context, s *models.Session, req *models.GenerationRequest) (*Result, error) {
	if !o.ledger.CheckQuota(s) {
		return nil, common.ErrQuotaExhausted
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, common.ErrEmptySubject
	}

	runID := ulid.MustNew(ulid.Timestamp(time.Now()), o.entropy).String()
	log := o.log.With("run_id", runID, "kind", req.Kind, "subject", req.Subject)

	o.setState(StateOutlining, 0, 0)
	log.Info(ctx, "requesting outline", "sections", req.SectionCount)

	outline, err := o.provider.Outline(ctx, OutlineParams{
		Subject:      req.Subject,
		Kind:         req.Kind,
		Language:     req.Language,
		SectionCount: req.SectionCount,
		Style:        req.Style,
	})
	if err != nil {
		log.Error(ctx, "outline stage failed", "error", err)
		return nil, fmt.Errorf("%w: outline: %v", common.ErrStageFailure, err)
	}
	if len(outline) == 0 {
		return nil, fmt.Errorf("%w: outline: empty", common.ErrStageFailure)
	}

	switch req.Kind {
	case models.KindPPT:
		err = o.runDeck(ctx, log, req, outline)
	default:
		err = o.runDocument(ctx, log, req, outline)
	}
	if err != nil {
		return nil, err
	}

	// Export succeeded; consume the credit and mirror the session.
	o.ledger.Debit(s, req.Kind)
	o.store.Persist(ctx, s)
	log.Info(ctx, "run complete", "quota_left", s.Quota)

	return &Result{RunID: runID, Kind: req.Kind, Sections: len(outline)}, nil
}

func (o *Orchestrator) runDocument(ctx context.Context, log logging.Logger, req *models.GenerationRequest, outline []models.Section) error {
	b, err := o.builders.NewDocument(req.Subject)
	if err != nil {
		return fmt.Errorf("%w: builder: %v", common.ErrStageFailure, err)
	}
	l := layout.NewDocumentLayout(b)

	l.Cover(req.Subject, o.fetchImage(ctx, log, "Book Cover: "+req.Subject))

	total := len(outline)
	for i, sec := range outline {
		o.setState(StateWriting, i+1, total)
		log.Info(ctx, "writing section", "section", i+1, "total", total, "title", sec.Title)

		prose, err := o.provider.WriteSection(ctx, SectionParams{
			Title:    sec.Title,
			Brief:    sec.Brief,
			Language: req.Language,
			Depth:    req.Depth,
		})
		if err != nil {
			log.Error(ctx, "prose stage failed", "section", i+1, "error", err)
			return fmt.Errorf("%w: section %d: %v", common.ErrStageFailure, i+1, err)
		}

		l.Section(sec, prose, o.fetchImage(ctx, log, sec.ImagePrompt))
	}

	o.setState(StateAssembling, 0, total)
	if err := b.Export(ctx); err != nil {
		log.Error(ctx, "export failed", "error", err)
		return fmt.Errorf("%w: %v", common.ErrExportFailure, err)
	}
	return nil
}

func (o *Orchestrator) runDeck(ctx context.Context, log logging.Logger, req *models.GenerationRequest, outline []models.Section) error {
	b, err := o.builders.NewDeck(req.Subject)
	if err != nil {
		return fmt.Errorf("%w: builder: %v", common.ErrStageFailure, err)
	}
	l := layout.NewDeckLayout(b)

	l.TitleSlide(req.Subject)

	total := len(outline)
	for i, sec := range outline {
		o.setState(StateWriting, i+1, total)
		log.Info(ctx, "writing slide", "section", i+1, "total", total, "title", sec.Title)

		// Slides always get standard-depth prose, whatever the plan.
		prose, err := o.provider.WriteSection(ctx, SectionParams{
			Title:    sec.Title,
			Brief:    sec.Brief,
			Language: req.Language,
			Depth:    models.DepthStandard,
		})
		if err != nil {
			log.Error(ctx, "prose stage failed", "section", i+1, "error", err)
			return fmt.Errorf("%w: section %d: %v", common.ErrStageFailure, i+1, err)
		}

		l.Section(sec, prose, o.fetchImage(ctx, log, sec.ImagePrompt))
	}

	o.setState(StateAssembling, 0, total)
	if err := b.Export(ctx); err != nil {
		log.Error(ctx, "export failed", "error", err)
		return fmt.Errorf("%w: %v", common.ErrExportFailure, err)
	}
	return nil
}

// fetchImage asks the provider for an image and swallows failures: a run
// never dies because an illustration is missing.
func (o *Orchestrator) fetchImage(ctx context.Context, log logging.Logger, prompt string) models.Image {
	if strings.TrimSpace(prompt) == "" {
		return models.Image{}
	}
	img, err := o.provider.RenderImage(ctx, prompt)
	if err != nil {
		log.Warn(ctx, "image unavailable", "prompt", prompt, "error", err)
		return models.Image{}
	}
	return img
}
