package directory

import (
	"context"

	"github.com/vijay-pawar-99/CampusHire/internal/models"
)

func jobID(j models.Job) string { return j.ID }

// Jobs returns the full Jobs collection in insertion order.
func (s *Store) Jobs(ctx context.Context) ([]models.Job, error) {
	return getAll[models.Job](ctx, s.kv, KeyJobs)
}

// JobByID returns the job with the given id, or shared.ErrNotFound.
func (s *Store) JobByID(ctx context.Context, id string) (models.Job, error) {
	return getByID(ctx, s.kv, KeyJobs, jobID, id)
}

// InsertJob appends a job to the collection.
func (s *Store) InsertJob(ctx context.Context, j models.Job) error {
	return insert(ctx, s.kv, KeyJobs, j)
}

// UpdateJob replaces the job with the given id by the result of mutate.
func (s *Store) UpdateJob(ctx context.Context, id string, mutate func(*models.Job)) (models.Job, error) {
	return update(ctx, s.kv, KeyJobs, jobID, id, mutate)
}
