package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"food-console/internal/domain"
)

// DeliveryForm is raw operator input for delivery creation.
type DeliveryForm struct {
	OrderID           string `json:"orderId"`
	DriverID          string `json:"driverId"`
	RestaurantAddress string `json:"restaurantAddress"`
	CustomerAddress   string `json:"customerAddress"`
	Notes             string `json:"notes"`
}

type DeliveryService struct {
	client BackendClient
	audit  *Auditor
}

func NewDeliveryService(client BackendClient, audit *Auditor) *DeliveryService {
	return &DeliveryService{client: client, audit: audit}
}

func (s *DeliveryService) Create(ctx context.Context, form DeliveryForm) (*domain.Delivery, error) {
	orderID, err := requireID("orderId", form.OrderID)
	if err != nil {
		return nil, err
	}

	var driverID *int64
	if strings.TrimSpace(form.DriverID) != "" {
		id, err := requireID("driverId", form.DriverID)
		if err != nil {
			return nil, err
		}
		driverID = &id
	}

	body := domain.DeliveryWrite{
		OrderID:           orderID,
		DriverID:          driverID,
		RestaurantAddress: form.RestaurantAddress,
		CustomerAddress:   form.CustomerAddress,
		Notes:             form.Notes,
	}
	resp, err := s.client.Post(ctx, deliveryBase, body)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var created domain.Delivery
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		return nil, fmt.Errorf("failed to decode delivery: %w", err)
	}

	s.audit.Record(ctx, "delivery.create", "delivery", strconv.FormatInt(created.ID, 10), string(created.Status))
	return &created, nil
}
