// Package license implements the activation-code scheme and the quota
// ledger.
//
// The activation code is plain integer arithmetic over public inputs (clock,
// account id tail, purchase index). Anyone who knows those inputs can
// reproduce it; the scheme is a low-friction trust model for out-of-band
// manual activation, not a cryptographic one. Do not mistake it for a
// security boundary.
package license

import (
	"fmt"
	"time"

	"github.com/geniastudio/genia/internal/models"
)

// CodeParams are the inputs of the code formula.
type CodeParams struct {
	// Day is the day of month, 1–31.
	Day int
	// Hour is the hour of day in local time, 0–23.
	Hour int
	// UIDTail is the last three digits of the account id, 0 when the tail
	// is not numeric.
	UIDTail int
	// PurchaseIndex is the session's current purchase index, ≥ 1.
	PurchaseIndex int
}

// ParamsAt derives the formula inputs for a session at the given instant.
func ParamsAt(t time.Time, s *models.Session) CodeParams {
	return CodeParams{
		Day:           t.Day(),
		Hour:          t.Hour(),
		UIDTail:       s.UIDTail(),
		PurchaseIndex: s.PurchaseIndex,
	}
}

// Code computes the expected activation code:
//
//	((Hour * 7) + UIDTail + Day + (PurchaseIndex * 5)) mod 10000
//
// The result is in [0, 9999]. The function is pure: same inputs, same code.
// Because the hour participates, a code requested at hour 13 is stale at
// hour 14; that time scoping is intended.
func Code(p CodeParams) int {
	return ((p.Hour * 7) + p.UIDTail + p.Day + (p.PurchaseIndex * 5)) % 10000
}

// FormatCode renders a code as the 4-digit string shown to the user.
// Comparison stays numeric; the leading zeros only matter for display.
func FormatCode(code int) string {
	return fmt.Sprintf("%04d", code)
}

// TransactionID builds the label the user quotes when requesting a code
// out-of-band: "{uid}-{day}-{hour}-{purchaseIndex}". It is informational
// only and never verified.
func TransactionID(t time.Time, s *models.Session) string {
	return fmt.Sprintf("%s-%d-%d-%d", s.UID, t.Day(), t.Hour(), s.PurchaseIndex)
}
