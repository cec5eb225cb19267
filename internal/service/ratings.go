package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"food-console/internal/domain"
)

// RatingService covers the rating surface of the note service. Averages are
// cached with a TTL because the ratings page polls them per restaurant card;
// the cache is optional and degrades to pass-through when absent.
type RatingService struct {
	client BackendClient
	cache  RatingCache
	audit  *Auditor
}

func NewRatingService(client BackendClient, cache RatingCache, audit *Auditor) *RatingService {
	return &RatingService{client: client, cache: cache, audit: audit}
}

func (s *RatingService) ByRestaurant(ctx context.Context, restaurantID string) ([]domain.Rating, error) {
	id, err := requireID("restaurantId", restaurantID)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Get(ctx, fmt.Sprintf("%s/restaurants/%d", ratingBase, id), nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	ratings := []domain.Rating{}
	if err := decodeCollection(resp.Data, "ratings", &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *RatingService) Average(ctx context.Context, restaurantID string) (float64, error) {
	id, err := requireID("restaurantId", restaurantID)
	if err != nil {
		return 0, err
	}

	var key string
	if s.cache != nil {
		key = s.cache.AverageKey(strconv.FormatInt(id, 10))
		if average, ok, err := s.cache.GetAverage(ctx, key); err == nil && ok {
			return average, nil
		}
	}

	resp, err := s.client.Get(ctx, fmt.Sprintf("%s/restaurants/%d/average", ratingBase, id), nil)
	if err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, err
	}

	var average domain.RatingAverage
	if err := json.Unmarshal(resp.Data, &average); err != nil {
		return 0, fmt.Errorf("failed to decode rating average: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetAverage(ctx, key, average.Average); err != nil {
			log.Printf("Warning: failed to cache rating average: %v", err)
		}
	}
	return average.Average, nil
}

func (s *RatingService) Create(ctx context.Context, form domain.RatingWrite) (*domain.Rating, error) {
	resp, err := s.client.Post(ctx, ratingBase, form)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var created domain.Rating
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		return nil, fmt.Errorf("failed to decode rating: %w", err)
	}

	s.invalidateAverage(ctx, strconv.FormatInt(form.RestaurantID, 10))
	s.audit.Record(ctx, "rating.create", "rating", strconv.FormatInt(created.ID, 10), strconv.Itoa(form.Score))
	return &created, nil
}

// Delete removes a rating. restaurantID is optional; when known it lets the
// cached average be dropped immediately instead of waiting out the TTL.
func (s *RatingService) Delete(ctx context.Context, id, restaurantID string) error {
	ratingID, err := requireID("id", id)
	if err != nil {
		return err
	}
	resp, err := s.client.Delete(ctx, fmt.Sprintf("%s/%d", ratingBase, ratingID))
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	if restaurantID != "" {
		s.invalidateAverage(ctx, restaurantID)
	}
	s.audit.Record(ctx, "rating.delete", "rating", strconv.FormatInt(ratingID, 10), "")
	return nil
}

func (s *RatingService) invalidateAverage(ctx context.Context, restaurantID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, s.cache.AverageKey(restaurantID)); err != nil {
		log.Printf("Warning: failed to invalidate rating average: %v", err)
	}
}
