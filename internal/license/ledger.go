package license

import (
	"strconv"
	"strings"
	"time"

	"github.com/geniastudio/genia/internal/common"
	"github.com/geniastudio/genia/internal/models"
)

// ProCredits is the number of generation credits added on a successful
// activation.
const ProCredits = 3

// Ledger owns all quota and activation mutations of a session. The pipeline
// asks it whether a run may start and reports successful runs back; the CLI
// hands it raw activation input.
type Ledger struct {
	// now is a seam for tests; production uses time.Now.
	now func() time.Time
}

// NewLedger returns a Ledger using the wall clock.
func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// CheckQuota reports whether the session still has generation credits.
// It has no side effects.
func (l *Ledger) CheckQuota(s *models.Session) bool {
	return s.Quota > 0
}

// Debit consumes one credit for a completed run of the given kind and bumps
// the matching usage counter. The caller must invoke it exactly once, after
// the exported file exists; failed runs are never debited.
func (l *Ledger) Debit(s *models.Session, kind models.Kind) {
	s.Quota--
	switch kind {
	case models.KindPPT:
		s.PPTCount++
	default:
		s.EbookCount++
	}
}

// Activate verifies the entered code against the formula evaluated with the
// current clock and the session's current purchase index. On a match the
// session moves to the pro tier, gains ProCredits credits, and the purchase
// index advances so the same code can never validate again. On a mismatch
// the session is left untouched and common.ErrCodeMismatch is returned.
func (l *Ledger) Activate(s *models.Session, enteredCode string) error {
	entered, err := strconv.Atoi(strings.TrimSpace(enteredCode))
	if err != nil {
		return common.ErrCodeMismatch
	}

	expected := Code(ParamsAt(l.now(), s))
	if entered != expected {
		return common.ErrCodeMismatch
	}

	s.Plan = models.PlanPro
	s.Quota += ProCredits
	s.PurchaseIndex++
	return nil
}

// TransactionID returns the out-of-band request label for the session at the
// current clock.
func (l *Ledger) TransactionID(s *models.Session) string {
	return TransactionID(l.now(), s)
}
