// Package models defines the account session and generation request types
// used by the Genia Studio CLI.
package models

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/geniastudio/genia/internal/common"
)

// Plan is the account tier.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Session is the per-account record mutated by the ledger and the pipeline
// and mirrored to the local store after every change.
type Session struct {
	// UID is the permanent account identifier, assigned at signup.
	UID string `json:"uid"`

	// Email is the address the user logged in with. It is not verified
	// beyond a basic shape check at signup.
	Email string `json:"email"`

	Plan Plan `json:"plan"`

	// Quota is the number of generation credits left. It never goes
	// negative; a run is rejected up front when it reaches zero.
	Quota int `json:"quota"`

	// PurchaseIndex scopes activation codes to one-time use. It starts at 1
	// and only ever increases.
	PurchaseIndex int `json:"purchaseIndex"`

	// EbookCount and PPTCount track successful generations per kind.
	EbookCount int `json:"ebookCount"`
	PPTCount   int `json:"pptCount"`

	CreatedAt time.Time `json:"created"`
}

// NewSession creates a fresh free-tier session for the given email address.
// The only validation applied to the address is that it contains '@'.
func NewSession(email string) (*Session, error) {
	if !strings.Contains(email, "@") {
		return nil, common.ErrInvalidEmail
	}
	return &Session{
		UID:           strconv.Itoa(100000 + rand.IntN(900000)),
		Email:         email,
		Plan:          PlanFree,
		Quota:         1,
		PurchaseIndex: 1,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Normalize fills in fields that may be missing from records persisted by
// older versions: a zero purchase index becomes 1, and a pro session with no
// quota field recorded gets the pro starting balance.
func (s *Session) Normalize() {
	if s.PurchaseIndex < 1 {
		s.PurchaseIndex = 1
	}
	if s.Quota < 0 {
		s.Quota = 0
	}
	if s.Quota == 0 && s.EbookCount == 0 && s.PPTCount == 0 {
		// Never generated and no recorded balance: treat as a legacy record
		// and restore the starting credits for the tier.
		if s.Plan == PlanPro {
			s.Quota = 3
		} else {
			s.Quota = 1
		}
	}
}

// IsPro reports whether the session is on the pro tier.
func (s *Session) IsPro() bool {
	return s.Plan == PlanPro
}

// UIDTail returns the last three digits of the account id as an integer.
// If the tail is not numeric, it returns 0.
func (s *Session) UIDTail() int {
	uid := s.UID
	if len(uid) > 3 {
		uid = uid[len(uid)-3:]
	}
	n, err := strconv.Atoi(uid)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
