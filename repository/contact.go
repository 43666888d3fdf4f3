package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wolfterm/wolfterm-backend/database"
	"github.com/wolfterm/wolfterm-backend/models"
)

type ContactRepo struct {
	col database.Collection
}

func NewContactRepo(col database.Collection) *ContactRepo {
	return &ContactRepo{col: col}
}

// Create appends a submission. Contact forms have no degraded-write
// path, so a store failure is reported instead of faking success.
func (r *ContactRepo) Create(ctx context.Context, payload models.ContactPayload) (models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		ID:        models.NewID(),
		Name:      payload.Name,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Message:   payload.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.col.InsertOne(ctx, submission); err != nil {
		return models.ContactSubmission{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return submission, nil
}
