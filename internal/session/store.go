package session

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/domain"
)

// Storage keys, shared with the platform's earlier clients.
const (
	keyAdministrator = "admin-user"
	keyCredential    = "admin-token"
	keyReturnPath    = "admin-return-after-login"
)

// State tracks the restore lifecycle. Guards must not decide on a store
// that has not settled.
type State int

const (
	StateUnchecked State = iota
	StateChecking
	StateSettled
)

// Store is the single source of truth for "who is logged in" within one
// dashboard session. The administrator identity and the bearer credential
// are set and cleared together; the credential is opaque and never parsed.
type Store struct {
	storage       Storage
	log           *zap.Logger
	state         State
	administrator *domain.Administrator
	credential    string
}

// NewStore builds a store over the given durable storage. Call Restore
// before reading any session state.
func NewStore(storage Storage, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{storage: storage, log: log}
}

// Restore loads the persisted administrator and credential. A malformed or
// half-present record fails closed: both keys are wiped and the store
// settles logged out. Decode problems never surface to the caller; only a
// storage medium failure returns an error.
func (s *Store) Restore(ctx context.Context) error {
	s.state = StateChecking

	credential, err := s.storage.Get(ctx, keyCredential)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	blob, blobErr := s.storage.Get(ctx, keyAdministrator)
	if blobErr != nil && !errors.Is(blobErr, ErrNotFound) {
		return blobErr
	}

	if errors.Is(err, ErrNotFound) || errors.Is(blobErr, ErrNotFound) {
		// One key without the other violates the pairing invariant; wipe both.
		if err == nil || blobErr == nil {
			s.log.Warn("partial session record discarded")
			if clearErr := s.clearPersisted(ctx); clearErr != nil {
				return clearErr
			}
		}
		s.settleLoggedOut()
		return nil
	}

	var admin domain.Administrator
	if decodeErr := json.Unmarshal([]byte(blob), &admin); decodeErr != nil || admin.ID == "" {
		s.log.Warn("corrupt session record discarded", zap.Error(decodeErr))
		if clearErr := s.clearPersisted(ctx); clearErr != nil {
			return clearErr
		}
		s.settleLoggedOut()
		return nil
	}

	s.administrator = &admin
	s.credential = credential
	s.state = StateSettled
	return nil
}

// Login replaces the session wholesale, in memory and in durable storage.
// The caller invokes it only after the platform API confirmed credentials.
func (s *Store) Login(ctx context.Context, admin *domain.Administrator, credential string) error {
	blob, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, keyAdministrator, string(blob)); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, keyCredential, credential); err != nil {
		return err
	}

	copied := *admin
	s.administrator = &copied
	s.credential = credential
	s.state = StateSettled
	return nil
}

// Logout clears identity and credential together. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.clearPersisted(ctx); err != nil {
		return err
	}
	s.settleLoggedOut()
	return nil
}

// UpdateAdministrator replaces the identity record without touching the
// credential; used when the administrator's own profile changes upstream.
func (s *Store) UpdateAdministrator(ctx context.Context, admin *domain.Administrator) error {
	blob, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, keyAdministrator, string(blob)); err != nil {
		return err
	}
	copied := *admin
	s.administrator = &copied
	return nil
}

// SetReturnPath remembers the path of a denied navigation. Last write wins.
func (s *Store) SetReturnPath(ctx context.Context, path string) error {
	return s.storage.Set(ctx, keyReturnPath, path)
}

// ConsumeReturnPath reads the pending-return path once and clears it, so a
// stale path never redirects a later, unrelated login. Returns "" when no
// path is pending.
func (s *Store) ConsumeReturnPath(ctx context.Context) (string, error) {
	path, err := s.storage.Get(ctx, keyReturnPath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	if err := s.storage.Delete(ctx, keyReturnPath); err != nil {
		return "", err
	}
	return path, nil
}

// State reports the restore lifecycle phase.
func (s *Store) State() State {
	return s.state
}

// Settled reports whether Restore has resolved.
func (s *Store) Settled() bool {
	return s.state == StateSettled
}

// Authenticated reports whether a settled store holds a logged-in
// administrator.
func (s *Store) Authenticated() bool {
	return s.state == StateSettled && s.administrator != nil && s.credential != ""
}

// Administrator returns the current identity record, nil when logged out.
func (s *Store) Administrator() *domain.Administrator {
	return s.administrator
}

// Credential returns the opaque bearer token, "" when logged out.
func (s *Store) Credential() string {
	return s.credential
}

func (s *Store) clearPersisted(ctx context.Context) error {
	if err := s.storage.Delete(ctx, keyAdministrator); err != nil {
		return err
	}
	return s.storage.Delete(ctx, keyCredential)
}

func (s *Store) settleLoggedOut() {
	s.administrator = nil
	s.credential = ""
	s.state = StateSettled
}
