// Package session tracks the current actor: a single optional User pointer
// mirrored into its own store key, independent of the Users collection.
package session

import (
	"context"
	"time"

	"github.com/vijay-pawar-99/CampusHire/internal/codec"
	"github.com/vijay-pawar-99/CampusHire/internal/directory"
	"github.com/vijay-pawar-99/CampusHire/internal/logging"
	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

// KeySession is the store key mirroring the current user.
const KeySession = "campushire_user"

// RegisterData is the input to Register. Password is carried for interface
// compatibility with the login flow; it is stored nowhere and verified
// against nothing.
type RegisterData struct {
	Email       string
	Password    string
	Name        string
	Role        models.Role
	CompanyName string
}

// Manager owns the session pointer. Construction restores a persisted
// session by parsing the store key directly, without re-validating the user
// against the Users collection: a stale session surviving user removal is
// possible and tolerated.
type Manager struct {
	dir     *directory.Store
	log     logging.Logger
	newID   shared.IDGenerator
	now     func() time.Time
	current *models.User
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator overrides the id policy for newly registered users.
// The default is shared.TimestampID.
func WithIDGenerator(gen shared.IDGenerator) Option {
	return func(m *Manager) { m.newID = gen }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager constructs a Manager bound to the given directory store and
// restores any persisted session. A malformed session record fails
// construction; an absent one simply starts logged out.
func NewManager(ctx context.Context, dir *directory.Store, log logging.Logger, opts ...Option) (*Manager, error) {
	m := &Manager{
		dir:   dir,
		log:   log,
		newID: shared.TimestampID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	data, err := dir.KV().Get(ctx, KeySession)
	if err != nil {
		return nil, err
	}
	if data != nil {
		u, err := codec.DecodeOne[models.User](data)
		if err != nil {
			return nil, err
		}
		m.current = &u
		m.log.Info(ctx, "session restored", "user", u.ID, "email", u.Email)
	}

	return m, nil
}

// Current returns a copy of the session user, or (zero, false) when logged
// out.
func (m *Manager) Current() (models.User, bool) {
	if m.current == nil {
		return models.User{}, false
	}
	return m.current.Clone(), true
}

func (m *Manager) setSession(ctx context.Context, u models.User) error {
	data, err := codec.EncodeOne(u)
	if err != nil {
		return err
	}
	if err := m.dir.KV().Set(ctx, KeySession, data); err != nil {
		return err
	}
	m.current = &u
	return nil
}

// Login looks the email up in the Users collection and adopts the stored
// user as the session. Presence of the email is the whole check: the
// password is accepted but never verified. Returns shared.ErrUnknownEmail
// when no user carries the email.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	users, err := m.dir.Users(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if err := m.setSession(ctx, u); err != nil {
			return models.User{}, err
		}
		m.log.Info(ctx, "logged in", "user", u.ID, "email", u.Email)
		return u, nil
	}

	return models.User{}, shared.ErrUnknownEmail
}

// Register creates a user with a role-appropriate empty profile, appends it
// to the Users collection and establishes it as the session. The email must
// not already be present (exact, case-sensitive comparison); on rejection the
// collection is left unchanged.
func (m *Manager) Register(ctx context.Context, data RegisterData) (models.User, error) {
	if !data.Role.Valid() {
		return models.User{}, shared.ErrValidation
	}

	users, err := m.dir.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == data.Email {
			return models.User{}, shared.ErrEmailTaken
		}
	}

	var user models.User
	if data.Role == models.RoleEmployer {
		user = models.NewEmployer(m.newID(), data.Email, data.Name, data.CompanyName, m.now().UTC())
	} else {
		user = models.NewJobSeeker(m.newID(), data.Email, data.Name, m.now().UTC())
	}

	if err := m.dir.InsertUser(ctx, user); err != nil {
		return models.User{}, err
	}
	if err := m.setSession(ctx, user); err != nil {
		return models.User{}, err
	}

	m.log.Info(ctx, "registered", "user", user.ID, "email", user.Email, "role", user.Role)
	return user, nil
}

// Logout clears the session pointer and its store key only; the collections
// are untouched.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.dir.KV().Delete(ctx, KeySession); err != nil {
		return err
	}
	m.current = nil
	return nil
}

// UpdateProfile merges patch into the current user's profile, writes the
// updated user into the Users collection and refreshes the session mirror.
// Fails with shared.ErrNoSession when logged out, and with shared.ErrNotFound
// when the Users collection no longer holds the session's id (desynchronized
// state).
func (m *Manager) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.User, error) {
	if m.current == nil {
		return models.User{}, shared.ErrNoSession
	}

	// Validate the patch against the variant before touching the store.
	probe := m.current.Clone()
	if err := probe.ApplyPatch(patch); err != nil {
		return models.User{}, err
	}

	updated, err := m.dir.UpdateUser(ctx, m.current.ID, func(u *models.User) {
		_ = u.ApplyPatch(patch)
	})
	if err != nil {
		return models.User{}, err
	}

	if err := m.setSession(ctx, updated); err != nil {
		return models.User{}, err
	}
	m.log.Info(ctx, "profile updated", "user", updated.ID)
	return updated, nil
}
