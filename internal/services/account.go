// Package services contains the application services of the Genia Studio
// CLI. This file defines the account service: login (signup or rehydration),
// logout, and best-effort persistence of session mutations.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/geniastudio/genia/internal/common"
	"github.com/geniastudio/genia/internal/logging"
	"github.com/geniastudio/genia/internal/models"
	"github.com/geniastudio/genia/internal/repositories/session"
)

// AccountService defines account operations for the CLI.
//
// Contract:
//   - Login: rehydrate the device session, or create a fresh free-tier one.
//   - Current: return the logged-in session, common.ErrNotLoggedIn otherwise.
//   - Persist: mirror a mutated session to the store; failures are
//     warning-level, never fatal to the in-memory operation.
//   - Logout: drop the logged-in state; the persisted record remains.
type AccountService interface {
	Login(ctx context.Context, email string) (*models.Session, error)
	Current(ctx context.Context) (*models.Session, error)
	Persist(ctx context.Context, s *models.Session)
	Logout(ctx context.Context) error
}

type accountService struct {
	repo session.Repository
	log  logging.Logger
}

// NewAccountService constructs an AccountService over the given repository.
func NewAccountService(repo session.Repository, log logging.Logger) AccountService {
	return &accountService{repo: repo, log: log}
}

// Login returns the existing device session if one is stored (the entered
// email is ignored in that case, matching the single-account-per-device
// model), normalizing legacy records on the way. On a fresh device it
// creates a free-tier session for the email and persists it.
func (a *accountService) Login(ctx context.Context, email string) (*models.Session, error) {
	s, _, err := a.repo.Get(ctx)
	switch {
	case err == nil:
		s.Normalize()
		if err := a.repo.Save(ctx, s); err != nil {
			return nil, fmt.Errorf("session rehydration error: %w", err)
		}
		a.log.Info(ctx, "session rehydrated", "uid", s.UID, "plan", s.Plan)
		return s, nil
	case errors.Is(err, common.ErrNotFound):
		// fall through to signup
	default:
		return nil, fmt.Errorf("session load error: %w", err)
	}

	s, err = models.NewSession(email)
	if err != nil {
		return nil, err
	}
	if err := a.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("session save error: %w", err)
	}
	a.log.Info(ctx, "account created", "uid", s.UID)
	return s, nil
}

// Current returns the active session or common.ErrNotLoggedIn.
func (a *accountService) Current(ctx context.Context) (*models.Session, error) {
	s, active, err := a.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotLoggedIn
		}
		return nil, err
	}
	if !active {
		return nil, common.ErrNotLoggedIn
	}
	s.Normalize()
	return s, nil
}

// Persist mirrors the session to the store. Writes are fire-and-forget: a
// failure is logged at warning level and the in-memory session stays
// authoritative for the rest of the process.
func (a *accountService) Persist(ctx context.Context, s *models.Session) {
	if err := a.repo.Save(ctx, s); err != nil {
		a.log.Warn(ctx, "session persistence failed", "error", err)
	}
}

// Logout clears the logged-in flag. The record itself stays so the next
// login finds the same account.
func (a *accountService) Logout(ctx context.Context) error {
	if err := a.repo.MarkActive(ctx, false); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotLoggedIn
		}
		return err
	}
	return nil
}
