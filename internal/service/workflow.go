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

// DeliveryAction names a delivery lifecycle transition. The wire value doubles
// as the delivery service's action path segment.
type DeliveryAction string

const (
	ActionAssign  DeliveryAction = "assign"
	ActionPickup  DeliveryAction = "pickup"
	ActionTransit DeliveryAction = "transit"
	ActionDeliver DeliveryAction = "delivered"
	ActionCancel  DeliveryAction = "cancel"
)

// ActionOption is one affordance offered to the operator.
type ActionOption struct {
	Action DeliveryAction `json:"action"`
	Label  string         `json:"label"`
}

// forwardTransitions is the authoritative delivery lifecycle definition:
// PENDING → ASSIGNED → PICKED_UP → IN_TRANSIT → DELIVERED. Terminal states
// have no entry.
var forwardTransitions = map[domain.DeliveryStatus]ActionOption{
	domain.DeliveryPending:   {Action: ActionAssign, Label: "Assign Driver"},
	domain.DeliveryAssigned:  {Action: ActionPickup, Label: "Mark Picked Up"},
	domain.DeliveryPickedUp:  {Action: ActionTransit, Label: "In Transit"},
	domain.DeliveryInTransit: {Action: ActionDeliver, Label: "Delivered"},
}

// cancellable lists the states a delivery can be cancelled from.
var cancellable = map[domain.DeliveryStatus]bool{
	domain.DeliveryPending:   true,
	domain.DeliveryAssigned:  true,
	domain.DeliveryPickedUp:  true,
	domain.DeliveryInTransit: true,
}

// AvailableActions returns the forward actions offered from a status, in
// lifecycle order. Cancel is reported separately through CanCancel.
func AvailableActions(status domain.DeliveryStatus) []ActionOption {
	if option, ok := forwardTransitions[status]; ok {
		return []ActionOption{option}
	}
	return []ActionOption{}
}

// CanCancel reports whether a delivery in the given status may be cancelled.
func CanCancel(status domain.DeliveryStatus) bool {
	return cancellable[status]
}

// OrderStatuses enumerates every order status. The order workflow is
// unguarded: the operator may set any of these and the backend arbitrates.
func OrderStatuses() []domain.OrderStatus {
	return []domain.OrderStatus{
		domain.OrderPending,
		domain.OrderConfirmed,
		domain.OrderPreparing,
		domain.OrderReady,
		domain.OrderDelivered,
		domain.OrderCancelled,
	}
}

// DefaultCancelReason is sent when the operator leaves the reason blank.
const DefaultCancelReason = "Cancelled by user"

// ActionParams carries the inputs a delivery action may need. CurrentStatus
// is the status the operator is looking at; the transition is validated
// against it before anything is dispatched.
type ActionParams struct {
	CurrentStatus domain.DeliveryStatus `json:"currentStatus"`
	DriverID      string                `json:"driverId"`
	DriverName    string                `json:"driverName"`
	Reason        string                `json:"reason"`
}

// WorkflowService drives the delivery and order lifecycles. It issues exactly
// one state-changing call per action; callers refresh their listings from the
// search service afterwards instead of patching local state.
type WorkflowService struct {
	client BackendClient
	audit  *Auditor
}

func NewWorkflowService(client BackendClient, audit *Auditor) *WorkflowService {
	return &WorkflowService{client: client, audit: audit}
}

// ApplyDeliveryAction validates and dispatches one delivery transition,
// returning the backend's authoritative updated entity.
func (s *WorkflowService) ApplyDeliveryAction(ctx context.Context, id string, action DeliveryAction, params ActionParams) (*domain.Delivery, error) {
	deliveryID, err := requireID("id", id)
	if err != nil {
		return nil, err
	}
	if params.CurrentStatus == "" {
		return nil, fmt.Errorf("%w: currentStatus", ErrMissingParameter)
	}
	if err := validateTransition(params.CurrentStatus, action); err != nil {
		return nil, err
	}

	var query url.Values
	switch action {
	case ActionAssign:
		driverID, err := requireID("driverId", params.DriverID)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(params.DriverName) == "" {
			return nil, fmt.Errorf("%w: driverName", ErrMissingParameter)
		}
		query = url.Values{
			"driverId":   {strconv.FormatInt(driverID, 10)},
			"driverName": {params.DriverName},
		}
	case ActionCancel:
		reason := strings.TrimSpace(params.Reason)
		if reason == "" {
			reason = DefaultCancelReason
		}
		query = url.Values{"reason": {reason}}
	}

	path := fmt.Sprintf("%s/%d/%s", deliveryBase, deliveryID, action)
	resp, err := s.client.Put(ctx, path, nil, query)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var updated domain.Delivery
	if err := json.Unmarshal(resp.Data, &updated); err != nil {
		return nil, fmt.Errorf("failed to decode delivery: %w", err)
	}

	s.audit.Record(ctx, "delivery."+string(action), "delivery", strconv.FormatInt(deliveryID, 10), string(updated.Status))
	return &updated, nil
}

// UpdateOrderStatus sets an order's status. Any enumerated status is
// accepted; the backend rejects transitions it considers illegal.
func (s *WorkflowService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	orderID, err := requireID("id", id)
	if err != nil {
		return nil, err
	}
	if !validOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	path := fmt.Sprintf("%s/%d/status", orderBase, orderID)
	resp, err := s.client.Patch(ctx, path, map[string]domain.OrderStatus{"status": status})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var updated domain.Order
	if err := json.Unmarshal(resp.Data, &updated); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}

	s.audit.Record(ctx, "order.status", "order", strconv.FormatInt(orderID, 10), string(status))
	return &updated, nil
}

func validateTransition(status domain.DeliveryStatus, action DeliveryAction) error {
	switch action {
	case ActionCancel:
		if CanCancel(status) {
			return nil
		}
		return fmt.Errorf("%w: cancel from %s", ErrIllegalTransition, status)
	case ActionAssign, ActionPickup, ActionTransit, ActionDeliver:
		if option, ok := forwardTransitions[status]; ok && option.Action == action {
			return nil
		}
		return fmt.Errorf("%w: %s from %s", ErrIllegalTransition, action, status)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

func validOrderStatus(status domain.OrderStatus) bool {
	for _, known := range OrderStatuses() {
		if status == known {
			return true
		}
	}
	return false
}
