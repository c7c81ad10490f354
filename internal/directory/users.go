package directory

import (
	"context"

	"github.com/vijay-pawar-99/CampusHire/internal/models"
)

func userID(u models.User) string { return u.ID }

// Users returns the full Users collection in insertion order.
func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	return getAll[models.User](ctx, s.kv, KeyUsers)
}

// UserByID returns the user with the given id, or shared.ErrNotFound.
func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {
	return getByID(ctx, s.kv, KeyUsers, userID, id)
}

// InsertUser appends a user to the collection.
func (s *Store) InsertUser(ctx context.Context, u models.User) error {
	return insert(ctx, s.kv, KeyUsers, u)
}

// UpdateUser replaces the user with the given id by the result of mutate.
// Returns shared.ErrNotFound, leaving the collection unchanged, when the id
// is absent.
func (s *Store) UpdateUser(ctx context.Context, id string, mutate func(*models.User)) (models.User, error) {
	return update(ctx, s.kv, KeyUsers, userID, id, mutate)
}
