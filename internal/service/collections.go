package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Backend path prefixes behind the platform gateway.
const (
	restaurantBase = "/restaurant-service/restaurants"
	menuBase       = "/restaurant-service/menus"
	menuItemBase   = "/restaurant-service/menuItems"
	orderBase      = "/order-service/api/orders"
	deliveryBase   = "/delivery-service/api/deliveries"
	ratingBase     = "/note-service/ratings"
)

// decodeCollection normalizes the two collection shapes the backends produce:
// a bare JSON array, or an array wrapped under _embedded keyed by the plural
// resource name. An empty body or a missing envelope key decodes to nothing.
func decodeCollection(data json.RawMessage, plural string, out interface{}) error {
	if len(data) == 0 {
		return nil
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var envelope struct {
		Embedded map[string]json.RawMessage `json:"_embedded"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return fmt.Errorf("failed to decode %s collection: %w", plural, err)
	}
	raw, ok := envelope.Embedded[plural]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// requireID validates an operator-supplied identifier before any request is
// issued: it must be a non-blank integer.
func requireID(name, value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrMissingParameter, name)
	}
	return id, nil
}
