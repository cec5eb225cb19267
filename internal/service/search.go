package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"food-console/internal/domain"
)

// DeliveryIntent enumerates the delivery lookups the console offers.
type DeliveryIntent string

const (
	DeliveriesAll      DeliveryIntent = "all"
	DeliveriesByID     DeliveryIntent = "id"
	DeliveriesByOrder  DeliveryIntent = "order"
	DeliveriesByDriver DeliveryIntent = "driver"
	DeliveriesByStatus DeliveryIntent = "status"
)

// OrderIntent enumerates the order lookups the console offers.
type OrderIntent string

const (
	OrdersByCustomer   OrderIntent = "customer"
	OrdersByRestaurant OrderIntent = "restaurant"
)

// SearchParams carries raw operator input. Values stay strings until the
// dispatcher has validated them; nothing is sent on bad input.
type SearchParams struct {
	ID           string
	OrderID      string
	DriverID     string
	ActiveOnly   bool
	Status       string
	CustomerID   string
	RestaurantID string
}

// SearchService translates logical query intents into backend requests and
// normalizes the heterogeneous result shapes into plain slices.
type SearchService struct {
	client BackendClient
}

func NewSearchService(client BackendClient) *SearchService {
	return &SearchService{client: client}
}

// SearchDeliveries resolves a delivery intent to a single backend query.
// Singular intents yield a slice of length 0 or 1; a 404 is a "no result",
// never an error.
func (s *SearchService) SearchDeliveries(ctx context.Context, intent DeliveryIntent, params SearchParams) ([]domain.Delivery, error) {
	switch intent {
	case DeliveriesAll:
		return s.deliveryList(ctx, deliveryBase)
	case DeliveriesByID:
		id, err := requireID("id", params.ID)
		if err != nil {
			return nil, err
		}
		return s.singleDelivery(ctx, fmt.Sprintf("%s/%d", deliveryBase, id))
	case DeliveriesByOrder:
		orderID, err := requireID("orderId", params.OrderID)
		if err != nil {
			return nil, err
		}
		return s.singleDelivery(ctx, fmt.Sprintf("%s/order/%d", deliveryBase, orderID))
	case DeliveriesByDriver:
		driverID, err := requireID("driverId", params.DriverID)
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("%s/driver/%d", deliveryBase, driverID)
		if params.ActiveOnly {
			path += "/active"
		}
		return s.deliveryList(ctx, path)
	case DeliveriesByStatus:
		// An empty status filter falls back to the full listing.
		status := strings.TrimSpace(params.Status)
		if status == "" {
			return s.deliveryList(ctx, deliveryBase)
		}
		return s.deliveryList(ctx, deliveryBase+"/status/"+url.PathEscape(status))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, intent)
	}
}

// SearchOrders resolves an order intent. Both intents are collections.
func (s *SearchService) SearchOrders(ctx context.Context, intent OrderIntent, params SearchParams) ([]domain.Order, error) {
	switch intent {
	case OrdersByCustomer:
		customerID, err := requireID("customerId", params.CustomerID)
		if err != nil {
			return nil, err
		}
		query := url.Values{"customerId": {strconv.FormatInt(customerID, 10)}}
		return s.orderList(ctx, orderBase, query)
	case OrdersByRestaurant:
		restaurantID, err := requireID("restaurantId", params.RestaurantID)
		if err != nil {
			return nil, err
		}
		return s.orderList(ctx, fmt.Sprintf("%s/by-restaurant/%d", orderBase, restaurantID), nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, intent)
	}
}

func (s *SearchService) singleDelivery(ctx context.Context, path string) ([]domain.Delivery, error) {
	resp, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	if resp.NotFound() {
		return []domain.Delivery{}, nil
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var delivery domain.Delivery
	if err := json.Unmarshal(resp.Data, &delivery); err != nil {
		return nil, fmt.Errorf("failed to decode delivery: %w", err)
	}
	return []domain.Delivery{delivery}, nil
}

func (s *SearchService) deliveryList(ctx context.Context, path string) ([]domain.Delivery, error) {
	resp, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	deliveries := []domain.Delivery{}
	if err := decodeCollection(resp.Data, "deliveries", &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (s *SearchService) orderList(ctx context.Context, path string, query url.Values) ([]domain.Order, error) {
	resp, err := s.client.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	orders := []domain.Order{}
	if err := decodeCollection(resp.Data, "orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
