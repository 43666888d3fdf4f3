package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wolfterm/wolfterm-backend/database"
	"github.com/wolfterm/wolfterm-backend/models"
	"github.com/wolfterm/wolfterm-backend/resolver"
)

var heroSlideUpdateFields = []string{"title", "subtitle", "image", "link", "order"}

// order values are not unique; ties fall back to the store's natural
// ordering.
var heroSlideSort = bson.D{{Key: "order", Value: 1}}

type HeroSlidesRepo struct {
	col        database.Collection
	uploadsDir string
}

func NewHeroSlidesRepo(col database.Collection, uploadsDir string) *HeroSlidesRepo {
	return &HeroSlidesRepo{col: col, uploadsDir: uploadsDir}
}

// List is the public read: store, then the hero_slides seed artifact,
// then empty.
func (r *HeroSlidesRepo) List(ctx context.Context) []models.HeroSlide {
	return resolver.Resolve(ctx, []models.HeroSlide{},
		r.findTier(20),
		resolver.Seed[[]models.HeroSlide](r.uploadsDir, seedHeroSlides),
	)
}

// ListAdmin never serves seed or sample content; a store failure yields
// an empty list.
func (r *HeroSlidesRepo) ListAdmin(ctx context.Context) []models.HeroSlide {
	return resolver.Resolve(ctx, []models.HeroSlide{}, r.findTier(100))
}

func (r *HeroSlidesRepo) Create(ctx context.Context, payload models.HeroSlidePayload) (models.HeroSlide, error) {
	slide := models.HeroSlide{
		ID:        models.NewID(),
		Title:     payload.Title,
		Subtitle:  payload.Subtitle,
		Image:     payload.Image,
		Link:      payload.Link,
		Order:     payload.Order,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.col.InsertOne(ctx, slide); err != nil {
		return models.HeroSlide{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return slide, nil
}

func (r *HeroSlidesRepo) Update(ctx context.Context, id string, body map[string]any) (models.HeroSlide, error) {
	var existing models.HeroSlide
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &existing); err != nil {
		return models.HeroSlide{}, lookupErr(err)
	}

	set := applyFields(body, heroSlideUpdateFields...)
	if len(set) > 0 {
		if _, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
			return models.HeroSlide{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	var updated models.HeroSlide
	if err := r.col.FindOne(ctx, bson.M{"id": id}, &updated); err != nil {
		return models.HeroSlide{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return updated, nil
}

func (r *HeroSlidesRepo) Delete(ctx context.Context, id string) error {
	deleted, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HeroSlidesRepo) Count(ctx context.Context) (int64, error) {
	return r.col.Count(ctx, bson.M{})
}

func (r *HeroSlidesRepo) findTier(limit int64) resolver.Tier[[]models.HeroSlide] {
	return func(ctx context.Context) ([]models.HeroSlide, error) {
		slides := []models.HeroSlide{}
		opts := database.FindOptions{Sort: heroSlideSort, Limit: limit}
		if err := r.col.Find(ctx, bson.M{}, opts, &slides); err != nil {
			return nil, err
		}
		return slides, nil
	}
}
