package directory

import (
	"context"

	"github.com/vijay-pawar-99/CampusHire/internal/models"
)

func applicationID(a models.Application) string { return a.ID }

// Applications returns the full Applications collection in insertion order.
func (s *Store) Applications(ctx context.Context) ([]models.Application, error) {
	return getAll[models.Application](ctx, s.kv, KeyApplications)
}

// ApplicationByID returns the application with the given id, or
// shared.ErrNotFound.
func (s *Store) ApplicationByID(ctx context.Context, id string) (models.Application, error) {
	return getByID(ctx, s.kv, KeyApplications, applicationID, id)
}

// InsertApplication appends an application to the collection.
func (s *Store) InsertApplication(ctx context.Context, a models.Application) error {
	return insert(ctx, s.kv, KeyApplications, a)
}

// UpdateApplication replaces the application with the given id by the result
// of mutate.
func (s *Store) UpdateApplication(ctx context.Context, id string, mutate func(*models.Application)) (models.Application, error) {
	return update(ctx, s.kv, KeyApplications, applicationID, id, mutate)
}
