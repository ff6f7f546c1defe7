package models

import (
	"testing"

	"github.com/geniastudio/genia/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s, err := NewSession("user@example.com")
	require.NoError(t, err)

	require.Len(t, s.UID, 6)
	require.Equal(t, PlanFree, s.Plan)
	require.Equal(t, 1, s.Quota)
	require.Equal(t, 1, s.PurchaseIndex)
	require.Zero(t, s.EbookCount)
	require.Zero(t, s.PPTCount)
	require.False(t, s.CreatedAt.IsZero())
}

func TestNewSession_RejectsAddressWithoutAt(t *testing.T) {
	_, err := NewSession("not-an-email")
	require.ErrorIs(t, err, common.ErrInvalidEmail)
}

func TestUIDTail(t *testing.T) {
	tests := []struct {
		name string
		uid  string
		want int
	}{
		{"six digit uid", "458123", 123},
		{"short numeric uid", "42", 42},
		{"leading zeros in tail", "458007", 7},
		{"non numeric uid", "abcdef", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Session{UID: tc.uid}
			require.Equal(t, tc.want, s.UIDTail())
		})
	}
}

func TestNormalize_LegacyRecords(t *testing.T) {
	t.Run("missing purchase index becomes 1", func(t *testing.T) {
		s := &Session{Plan: PlanFree, Quota: 1}
		s.Normalize()
		require.Equal(t, 1, s.PurchaseIndex)
	})

	t.Run("legacy free record gets one credit", func(t *testing.T) {
		s := &Session{Plan: PlanFree}
		s.Normalize()
		require.Equal(t, 1, s.Quota)
	})

	t.Run("legacy pro record gets three credits", func(t *testing.T) {
		s := &Session{Plan: PlanPro}
		s.Normalize()
		require.Equal(t, 3, s.Quota)
	})

	t.Run("spent quota is not refilled", func(t *testing.T) {
		s := &Session{Plan: PlanFree, Quota: 0, EbookCount: 1, PurchaseIndex: 1}
		s.Normalize()
		require.Equal(t, 0, s.Quota)
	})
}
