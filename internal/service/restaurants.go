package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"food-console/internal/domain"
)

// RestaurantService covers the restaurant CRUD surface. Listings come from
// the hypermedia service and are envelope-unwrapped; mutations are plain
// writes addressed by resolved id.
type RestaurantService struct {
	client BackendClient
	audit  *Auditor
}

func NewRestaurantService(client BackendClient, audit *Auditor) *RestaurantService {
	return &RestaurantService{client: client, audit: audit}
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	resp, err := s.client.Get(ctx, restaurantBase, nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	restaurants := []domain.Restaurant{}
	if err := decodeCollection(resp.Data, "restaurants", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurantID, err := requireID("id", id)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Get(ctx, fmt.Sprintf("%s/%d", restaurantBase, restaurantID), nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return decodeRestaurant(resp.Data)
}

func (s *RestaurantService) Create(ctx context.Context, form domain.RestaurantWrite) (*domain.Restaurant, error) {
	resp, err := s.client.Post(ctx, restaurantBase, form)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	created, err := decodeRestaurant(resp.Data)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "restaurant.create", "restaurant", "", form.Name)
	return created, nil
}

func (s *RestaurantService) Update(ctx context.Context, id string, form domain.RestaurantWrite) (*domain.Restaurant, error) {
	restaurantID, err := requireID("id", id)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Put(ctx, fmt.Sprintf("%s/%d", restaurantBase, restaurantID), form, nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	updated, err := decodeRestaurant(resp.Data)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "restaurant.update", "restaurant", strconv.FormatInt(restaurantID, 10), form.Name)
	return updated, nil
}

// Delete removes a restaurant. The backend owns referential integrity; no
// client-side cascade happens here.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	restaurantID, err := requireID("id", id)
	if err != nil {
		return err
	}
	resp, err := s.client.Delete(ctx, fmt.Sprintf("%s/%d", restaurantBase, restaurantID))
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	s.audit.Record(ctx, "restaurant.delete", "restaurant", strconv.FormatInt(restaurantID, 10), "")
	return nil
}

func decodeRestaurant(data json.RawMessage) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := json.Unmarshal(data, &restaurant); err != nil {
		return nil, fmt.Errorf("failed to decode restaurant: %w", err)
	}
	return &restaurant, nil
}
