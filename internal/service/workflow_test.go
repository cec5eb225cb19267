package service_test

import (
	"context"
	"net/url"
	"testing"

	"food-console/internal/backend"
	"food-console/internal/domain"
	"food-console/internal/mocks"
	"food-console/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		status   domain.DeliveryStatus
		expected []service.ActionOption
	}{
		{domain.DeliveryPending, []service.ActionOption{{Action: service.ActionAssign, Label: "Assign Driver"}}},
		{domain.DeliveryAssigned, []service.ActionOption{{Action: service.ActionPickup, Label: "Mark Picked Up"}}},
		{domain.DeliveryPickedUp, []service.ActionOption{{Action: service.ActionTransit, Label: "In Transit"}}},
		{domain.DeliveryInTransit, []service.ActionOption{{Action: service.ActionDeliver, Label: "Delivered"}}},
		{domain.DeliveryDelivered, []service.ActionOption{}},
		{domain.DeliveryCancelled, []service.ActionOption{}},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.status), func(t *testing.T) {
			assert.Equal(t, testCase.expected, service.AvailableActions(testCase.status))
		})
	}
}

func TestCanCancel(t *testing.T) {
	assert.True(t, service.CanCancel(domain.DeliveryPending))
	assert.True(t, service.CanCancel(domain.DeliveryAssigned))
	assert.True(t, service.CanCancel(domain.DeliveryPickedUp))
	assert.True(t, service.CanCancel(domain.DeliveryInTransit))
	assert.False(t, service.CanCancel(domain.DeliveryDelivered))
	assert.False(t, service.CanCancel(domain.DeliveryCancelled))
}

func TestOrderStatuses(t *testing.T) {
	statuses := service.OrderStatuses()
	assert.Equal(t, []domain.OrderStatus{
		domain.OrderPending,
		domain.OrderConfirmed,
		domain.OrderPreparing,
		domain.OrderReady,
		domain.OrderDelivered,
		domain.OrderCancelled,
	}, statuses)
}

func TestWorkflowService_ApplyDeliveryAction(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		action       service.DeliveryAction
		params       service.ActionParams
		prepareMocks func(client *mocks.BackendClient)
		expected     *domain.Delivery
		expectedErr  error
	}{
		{
			name:   "assign sends driver query parameters",
			id:     "15",
			action: service.ActionAssign,
			params: service.ActionParams{CurrentStatus: domain.DeliveryPending, DriverID: "7", DriverName: "Ana"},
			prepareMocks: func(client *mocks.BackendClient) {
				client.On("Put", mock.Anything, "/delivery-service/api/deliveries/15/assign", nil,
					url.Values{"driverId": {"7"}, "driverName": {"Ana"}}).
					Return(response(200, `{"id":15,"orderId":3,"driverId":7,"driverName":"Ana","status":"ASSIGNED"}`), nil).Once()
			},
			expected: &domain.Delivery{ID: 15, OrderID: 3, DriverID: int64p(7), DriverName: "Ana", Status: domain.DeliveryAssigned},
		},
		{
			name:   "pickup carries no query",
			id:     "15",
			action: service.ActionPickup,
			params: service.ActionParams{CurrentStatus: domain.DeliveryAssigned},
			prepareMocks: func(client *mocks.BackendClient) {
				client.On("Put", mock.Anything, "/delivery-service/api/deliveries/15/pickup", nil, url.Values(nil)).
					Return(response(200, `{"id":15,"orderId":3,"status":"PICKED_UP"}`), nil).Once()
			},
			expected: &domain.Delivery{ID: 15, OrderID: 3, Status: domain.DeliveryPickedUp},
		},
		{
			name:   "cancel defaults the reason",
			id:     "15",
			action: service.ActionCancel,
			params: service.ActionParams{CurrentStatus: domain.DeliveryInTransit},
			prepareMocks: func(client *mocks.BackendClient) {
				client.On("Put", mock.Anything, "/delivery-service/api/deliveries/15/cancel", nil,
					url.Values{"reason": {service.DefaultCancelReason}}).
					Return(response(200, `{"id":15,"orderId":3,"status":"CANCELLED"}`), nil).Once()
			},
			expected: &domain.Delivery{ID: 15, OrderID: 3, Status: domain.DeliveryCancelled},
		},
		{
			name:   "cancel keeps an explicit reason",
			id:     "15",
			action: service.ActionCancel,
			params: service.ActionParams{CurrentStatus: domain.DeliveryPending, Reason: "customer no-show"},
			prepareMocks: func(client *mocks.BackendClient) {
				client.On("Put", mock.Anything, "/delivery-service/api/deliveries/15/cancel", nil,
					url.Values{"reason": {"customer no-show"}}).
					Return(response(200, `{"id":15,"orderId":3,"status":"CANCELLED"}`), nil).Once()
			},
			expected: &domain.Delivery{ID: 15, OrderID: 3, Status: domain.DeliveryCancelled},
		},
		{
			name:        "assign without driver id",
			id:          "15",
			action:      service.ActionAssign,
			params:      service.ActionParams{CurrentStatus: domain.DeliveryPending, DriverName: "Ana"},
			expectedErr: service.ErrMissingParameter,
		},
		{
			name:        "assign without driver name",
			id:          "15",
			action:      service.ActionAssign,
			params:      service.ActionParams{CurrentStatus: domain.DeliveryPending, DriverID: "7", DriverName: "  "},
			expectedErr: service.ErrMissingParameter,
		},
		{
			name:        "pickup from pending is illegal",
			id:          "15",
			action:      service.ActionPickup,
			params:      service.ActionParams{CurrentStatus: domain.DeliveryPending},
			expectedErr: service.ErrIllegalTransition,
		},
		{
			name:        "delivered is terminal",
			id:          "15",
			action:      service.ActionDeliver,
			params:      service.ActionParams{CurrentStatus: domain.DeliveryDelivered},
			expectedErr: service.ErrIllegalTransition,
		},
		{
			name:        "cancel from cancelled is illegal",
			id:          "15",
			action:      service.ActionCancel,
			params:      service.ActionParams{CurrentStatus: domain.DeliveryCancelled},
			expectedErr: service.ErrIllegalTransition,
		},
		{
			name:        "unknown action",
			id:          "15",
			action:      service.DeliveryAction("explode"),
			params:      service.ActionParams{CurrentStatus: domain.DeliveryPending},
			expectedErr: service.ErrUnknownAction,
		},
		{
			name:        "missing current status",
			id:          "15",
			action:      service.ActionPickup,
			expectedErr: service.ErrMissingParameter,
		},
		{
			name:        "missing id",
			id:          "",
			action:      service.ActionPickup,
			params:      service.ActionParams{CurrentStatus: domain.DeliveryAssigned},
			expectedErr: service.ErrMissingParameter,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := mocks.NewBackendClient(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(client)
			}

			updated, err := service.NewWorkflowService(client, nil).
				ApplyDeliveryAction(context.Background(), testCase.id, testCase.action, testCase.params)
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, updated)
		})
	}
}

func TestWorkflowService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		status       domain.OrderStatus
		prepareMocks func(client *mocks.BackendClient)
		expected     *domain.Order
		expectedErr  error
	}{
		{
			name:   "patches the status endpoint",
			id:     "9",
			status: domain.OrderConfirmed,
			prepareMocks: func(client *mocks.BackendClient) {
				client.On("Patch", mock.Anything, "/order-service/api/orders/9/status",
					map[string]domain.OrderStatus{"status": domain.OrderConfirmed}).
					Return(response(200, `{"id":9,"customerId":2,"status":"CONFIRMED"}`), nil).Once()
			},
			expected: &domain.Order{ID: 9, CustomerID: 2, Status: domain.OrderConfirmed},
		},
		{
			name:   "cancel needs no precondition",
			id:     "9",
			status: domain.OrderCancelled,
			prepareMocks: func(client *mocks.BackendClient) {
				client.On("Patch", mock.Anything, "/order-service/api/orders/9/status",
					map[string]domain.OrderStatus{"status": domain.OrderCancelled}).
					Return(response(200, `{"id":9,"customerId":2,"status":"CANCELLED"}`), nil).Once()
			},
			expected: &domain.Order{ID: 9, CustomerID: 2, Status: domain.OrderCancelled},
		},
		{
			name:        "unknown status",
			id:          "9",
			status:      domain.OrderStatus("BOGUS"),
			expectedErr: service.ErrUnknownStatus,
		},
		{
			name:        "missing id",
			id:          " ",
			status:      domain.OrderConfirmed,
			expectedErr: service.ErrMissingParameter,
		},
		{
			name:   "order not found",
			id:     "9",
			status: domain.OrderConfirmed,
			prepareMocks: func(client *mocks.BackendClient) {
				client.On("Patch", mock.Anything, "/order-service/api/orders/9/status",
					map[string]domain.OrderStatus{"status": domain.OrderConfirmed}).
					Return(response(404, ""), nil).Once()
			},
			expectedErr: backend.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := mocks.NewBackendClient(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(client)
			}

			updated, err := service.NewWorkflowService(client, nil).
				UpdateOrderStatus(context.Background(), testCase.id, testCase.status)
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, updated)
		})
	}
}
