package mocks

import (
	"context"

	"food-console/internal/domain"
	"food-console/internal/service"

	"github.com/stretchr/testify/mock"
)

func newMock[M interface {
	Test(mock.TestingT)
	AssertExpectations(mock.TestingT) bool
}](t interface {
	mock.TestingT
	Cleanup(func())
}, m M) M {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SearchServiceInterface mocks service.SearchServiceInterface.
type SearchServiceInterface struct {
	mock.Mock
}

func NewSearchServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *SearchServiceInterface {
	return newMock(t, &SearchServiceInterface{})
}

func (m *SearchServiceInterface) SearchDeliveries(ctx context.Context, intent service.DeliveryIntent, params service.SearchParams) ([]domain.Delivery, error) {
	ret := m.Called(ctx, intent, params)
	deliveries, _ := ret.Get(0).([]domain.Delivery)
	return deliveries, ret.Error(1)
}

func (m *SearchServiceInterface) SearchOrders(ctx context.Context, intent service.OrderIntent, params service.SearchParams) ([]domain.Order, error) {
	ret := m.Called(ctx, intent, params)
	orders, _ := ret.Get(0).([]domain.Order)
	return orders, ret.Error(1)
}

// HierarchyServiceInterface mocks service.HierarchyServiceInterface.
type HierarchyServiceInterface struct {
	mock.Mock
}

func NewHierarchyServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *HierarchyServiceInterface {
	return newMock(t, &HierarchyServiceInterface{})
}

func (m *HierarchyServiceInterface) view(ret mock.Arguments) (*domain.HierarchyView, error) {
	view, _ := ret.Get(0).(*domain.HierarchyView)
	return view, ret.Error(1)
}

func (m *HierarchyServiceInterface) OpenByID(ctx context.Context, restaurantID string) (*domain.HierarchyView, error) {
	return m.view(m.Called(ctx, restaurantID))
}

func (m *HierarchyServiceInterface) Open(ctx context.Context, restaurant domain.Restaurant) (*domain.HierarchyView, error) {
	return m.view(m.Called(ctx, restaurant))
}

func (m *HierarchyServiceInterface) Current() *domain.HierarchyView {
	ret := m.Called()
	view, _ := ret.Get(0).(*domain.HierarchyView)
	return view
}

func (m *HierarchyServiceInterface) ToggleExpand(menuID string) (*domain.HierarchyView, error) {
	return m.view(m.Called(menuID))
}

func (m *HierarchyServiceInterface) CreateMenu(ctx context.Context, form service.MenuForm) (*domain.HierarchyView, error) {
	return m.view(m.Called(ctx, form))
}

func (m *HierarchyServiceInterface) UpdateMenu(ctx context.Context, menuID string, form service.MenuForm) (*domain.HierarchyView, error) {
	return m.view(m.Called(ctx, menuID, form))
}

func (m *HierarchyServiceInterface) DeleteMenu(ctx context.Context, menuID string) (*domain.HierarchyView, error) {
	return m.view(m.Called(ctx, menuID))
}

func (m *HierarchyServiceInterface) CreateMenuItem(ctx context.Context, menuID string, form service.MenuItemForm) (*domain.HierarchyView, error) {
	return m.view(m.Called(ctx, menuID, form))
}

func (m *HierarchyServiceInterface) UpdateMenuItem(ctx context.Context, menuID, itemID string, form service.MenuItemForm) (*domain.HierarchyView, error) {
	return m.view(m.Called(ctx, menuID, itemID, form))
}

func (m *HierarchyServiceInterface) DeleteMenuItem(ctx context.Context, itemID string) (*domain.HierarchyView, error) {
	return m.view(m.Called(ctx, itemID))
}

// WorkflowServiceInterface mocks service.WorkflowServiceInterface.
type WorkflowServiceInterface struct {
	mock.Mock
}

func NewWorkflowServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *WorkflowServiceInterface {
	return newMock(t, &WorkflowServiceInterface{})
}

func (m *WorkflowServiceInterface) ApplyDeliveryAction(ctx context.Context, id string, action service.DeliveryAction, params service.ActionParams) (*domain.Delivery, error) {
	ret := m.Called(ctx, id, action, params)
	delivery, _ := ret.Get(0).(*domain.Delivery)
	return delivery, ret.Error(1)
}

func (m *WorkflowServiceInterface) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	ret := m.Called(ctx, id, status)
	order, _ := ret.Get(0).(*domain.Order)
	return order, ret.Error(1)
}

// RestaurantServiceInterface mocks service.RestaurantServiceInterface.
type RestaurantServiceInterface struct {
	mock.Mock
}

func NewRestaurantServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantServiceInterface {
	return newMock(t, &RestaurantServiceInterface{})
}

func (m *RestaurantServiceInterface) List(ctx context.Context) ([]domain.Restaurant, error) {
	ret := m.Called(ctx)
	restaurants, _ := ret.Get(0).([]domain.Restaurant)
	return restaurants, ret.Error(1)
}

func (m *RestaurantServiceInterface) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	ret := m.Called(ctx, id)
	restaurant, _ := ret.Get(0).(*domain.Restaurant)
	return restaurant, ret.Error(1)
}

func (m *RestaurantServiceInterface) Create(ctx context.Context, form domain.RestaurantWrite) (*domain.Restaurant, error) {
	ret := m.Called(ctx, form)
	restaurant, _ := ret.Get(0).(*domain.Restaurant)
	return restaurant, ret.Error(1)
}

func (m *RestaurantServiceInterface) Update(ctx context.Context, id string, form domain.RestaurantWrite) (*domain.Restaurant, error) {
	ret := m.Called(ctx, id, form)
	restaurant, _ := ret.Get(0).(*domain.Restaurant)
	return restaurant, ret.Error(1)
}

func (m *RestaurantServiceInterface) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// OrderServiceInterface mocks service.OrderServiceInterface.
type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	return newMock(t, &OrderServiceInterface{})
}

func (m *OrderServiceInterface) Create(ctx context.Context, form service.OrderForm) (*domain.Order, error) {
	ret := m.Called(ctx, form)
	order, _ := ret.Get(0).(*domain.Order)
	return order, ret.Error(1)
}

// DeliveryServiceInterface mocks service.DeliveryServiceInterface.
type DeliveryServiceInterface struct {
	mock.Mock
}

func NewDeliveryServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *DeliveryServiceInterface {
	return newMock(t, &DeliveryServiceInterface{})
}

func (m *DeliveryServiceInterface) Create(ctx context.Context, form service.DeliveryForm) (*domain.Delivery, error) {
	ret := m.Called(ctx, form)
	delivery, _ := ret.Get(0).(*domain.Delivery)
	return delivery, ret.Error(1)
}

// RatingServiceInterface mocks service.RatingServiceInterface.
type RatingServiceInterface struct {
	mock.Mock
}

func NewRatingServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RatingServiceInterface {
	return newMock(t, &RatingServiceInterface{})
}

func (m *RatingServiceInterface) ByRestaurant(ctx context.Context, restaurantID string) ([]domain.Rating, error) {
	ret := m.Called(ctx, restaurantID)
	ratings, _ := ret.Get(0).([]domain.Rating)
	return ratings, ret.Error(1)
}

func (m *RatingServiceInterface) Average(ctx context.Context, restaurantID string) (float64, error) {
	ret := m.Called(ctx, restaurantID)
	return ret.Get(0).(float64), ret.Error(1)
}

func (m *RatingServiceInterface) Create(ctx context.Context, form domain.RatingWrite) (*domain.Rating, error) {
	ret := m.Called(ctx, form)
	rating, _ := ret.Get(0).(*domain.Rating)
	return rating, ret.Error(1)
}

func (m *RatingServiceInterface) Delete(ctx context.Context, id, restaurantID string) error {
	return m.Called(ctx, id, restaurantID).Error(0)
}
