package license

import (
	"testing"
	"time"

	"github.com/geniastudio/genia/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCode_KnownScenario(t *testing.T) {
	// day=15, hour=10, uid tail=123, purchase index=1:
	// (10*7) + 123 + 15 + (1*5) = 213
	got := Code(CodeParams{Day: 15, Hour: 10, UIDTail: 123, PurchaseIndex: 1})
	require.Equal(t, 213, got)
}

func TestCode_RangeAndDeterminism(t *testing.T) {
	for hour := 0; hour <= 23; hour++ {
		for day := 1; day <= 31; day++ {
			for _, tail := range []int{0, 7, 123, 999} {
				for _, idx := range []int{1, 2, 17, 1999} {
					p := CodeParams{Day: day, Hour: hour, UIDTail: tail, PurchaseIndex: idx}
					c := Code(p)
					require.GreaterOrEqual(t, c, 0)
					require.LessOrEqual(t, c, 9999)
					require.Equal(t, c, Code(p), "same inputs must give the same code")
				}
			}
		}
	}
}

func TestCode_ChangesWithHour(t *testing.T) {
	p := CodeParams{Day: 15, Hour: 13, UIDTail: 123, PurchaseIndex: 1}
	q := p
	q.Hour = 14
	require.NotEqual(t, Code(p), Code(q))
}

func TestFormatCode_LeadingZeros(t *testing.T) {
	require.Equal(t, "0213", FormatCode(213))
	require.Equal(t, "0007", FormatCode(7))
	require.Equal(t, "9999", FormatCode(9999))
}

func TestParamsAt(t *testing.T) {
	s := &models.Session{UID: "458123", PurchaseIndex: 4}
	at := time.Date(2026, 8, 15, 10, 30, 0, 0, time.Local)

	p := ParamsAt(at, s)
	require.Equal(t, CodeParams{Day: 15, Hour: 10, UIDTail: 123, PurchaseIndex: 4}, p)
}

func TestTransactionID(t *testing.T) {
	s := &models.Session{UID: "458123", PurchaseIndex: 2}
	at := time.Date(2026, 8, 15, 10, 30, 0, 0, time.Local)

	require.Equal(t, "458123-15-10-2", TransactionID(at, s))
}
