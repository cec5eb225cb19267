package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"food-console/internal/domain"
)

// OrderForm is raw operator input for order creation. The restaurant fields
// become the order's denormalized restaurant snapshot.
type OrderForm struct {
	CustomerID        string `json:"customerId"`
	RestaurantID      string `json:"restaurantId"`
	RestaurantName    string `json:"restaurantName"`
	RestaurantAddress string `json:"restaurantAddress"`
	TotalAmount       string `json:"totalAmount"`
	Status            string `json:"status"`
	DeliveryAddress   string `json:"deliveryAddress"`
}

type OrderService struct {
	client BackendClient
	audit  *Auditor
}

func NewOrderService(client BackendClient, audit *Auditor) *OrderService {
	return &OrderService{client: client, audit: audit}
}

func (s *OrderService) Create(ctx context.Context, form OrderForm) (*domain.Order, error) {
	customerID, err := requireID("customerId", form.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := requireID("restaurantId", form.RestaurantID)
	if err != nil {
		return nil, err
	}

	var totalAmount *float64
	if v := strings.TrimSpace(form.TotalAmount); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: totalAmount must be a number", ErrMissingParameter)
		}
		totalAmount = &amount
	}

	status := domain.OrderStatus(form.Status)
	if status == "" {
		status = domain.OrderPending
	}
	if !validOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	body := domain.Order{
		CustomerID: customerID,
		Restaurant: domain.RestaurantRef{
			ID:      restaurantID,
			Name:    form.RestaurantName,
			Address: form.RestaurantAddress,
		},
		TotalAmount:     totalAmount,
		Status:          status,
		DeliveryAddress: form.DeliveryAddress,
	}
	resp, err := s.client.Post(ctx, orderBase, body)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var created domain.Order
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}

	s.audit.Record(ctx, "order.create", "order", strconv.FormatInt(created.ID, 10), string(created.Status))
	return &created, nil
}
