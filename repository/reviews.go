package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wolfterm/wolfterm-backend/database"
	"github.com/wolfterm/wolfterm-backend/models"
	"github.com/wolfterm/wolfterm-backend/resolver"
)

const (
	defaultReviewLimit = 20
	maxReviewLimit     = 100
)

var reviewUpdateFields = []string{"name", "city", "rating", "text"}

// ErrInvalidRating reports a rating outside 1-5 on a partial update.
// Create's payload binding enforces the same bounds.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewsRepo struct {
	col database.Collection
}

func NewReviewsRepo(col database.Collection) *ReviewsRepo {
	return &ReviewsRepo{col: col}
}

// List returns reviews newest first. No seed artifact exists for
// reviews; the fallback is an empty list.
func (r *ReviewsRepo) List(ctx context.Context, limit int64) []models.Review {
	limit = clampLimit(limit, defaultReviewLimit, maxReviewLimit)
	opts := database.FindOptions{Sort: bson.D{{Key: "date", Value: -1}}, Limit: limit}
	tier := func(ctx context.Context) ([]models.Review, error) {
		reviews := []models.Review{}
		if err := r.col.Find(ctx, bson.M{}, opts, &reviews); err != nil {
			return nil, err
		}
		return reviews, nil
	}
	return resolver.Resolve(ctx, []models.Review{}, tier)
}

func (r *ReviewsRepo) Create(ctx context.Context, payload models.ReviewPayload) (models.Review, error) {
	review := models.Review{
		ID:     models.NewID(),
		Name:   payload.Name,
		City:   payload.City,
		Rating: payload.Rating,
		Text:   payload.Text,
		Date:   time.Now().UTC(),
	}
	if err := r.col.InsertOne(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return review, nil
}

func (r *ReviewsRepo) Update(ctx context.Context, id string, body map[string]any) (models.Review, error) {
	if raw, ok := body["rating"]; ok && !ratingInRange(raw) {
		return models.Review{}, ErrInvalidRating
	}

	var existing models.Review
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &existing); err != nil {
		return models.Review{}, lookupErr(err)
	}

	set := applyFields(body, reviewUpdateFields...)
	if len(set) > 0 {
		if _, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
			return models.Review{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	var updated models.Review
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &updated); err != nil {
		return models.Review{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return updated, nil
}

// ratingInRange accepts whole numbers 1-5. JSON-decoded bodies carry
// numbers as float64; tests may supply ints directly.
func ratingInRange(v any) bool {
	switch n := v.(type) {
	case float64:
		return n == float64(int64(n)) && n >= 1 && n <= 5
	case int:
		return n >= 1 && n <= 5
	case int64:
		return n >= 1 && n <= 5
	default:
		return false
	}
}

func (r *ReviewsRepo) Delete(ctx context.Context, id string) error {
	deleted, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReviewsRepo) Count(ctx context.Context) (int64, error) {
	return r.col.Count(ctx, bson.M{})
}

func (r *ReviewsRepo) Recent(ctx context.Context, n int64) ([]models.Review, error) {
	reviews := []models.Review{}
	opts := database.FindOptions{Sort: bson.D{{Key: "date", Value: -1}}, Limit: n}
	if err := r.col.Find(ctx, bson.M{}, opts, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
