package service

import (
	"context"
	"net/url"

	"food-console/internal/backend"
	"food-console/internal/domain"
)

// BackendClient is the transport capability the services consume. The real
// implementation lives in internal/backend; tests substitute a mock.
type BackendClient interface {
	AbsoluteURL(path string) string
	RelativePath(href string) string
	Get(ctx context.Context, path string, query url.Values) (*backend.Response, error)
	Post(ctx context.Context, path string, body interface{}) (*backend.Response, error)
	Put(ctx context.Context, path string, body interface{}, query url.Values) (*backend.Response, error)
	Patch(ctx context.Context, path string, body interface{}) (*backend.Response, error)
	Delete(ctx context.Context, path string) (*backend.Response, error)
}

type AuditStore interface {
	InsertEvent(event *domain.AuditEvent) error
}

type AuditPublisher interface {
	PublishEvent(ctx context.Context, event domain.AuditEvent) error
}

type RatingCache interface {
	AverageKey(restaurantID string) string
	GetAverage(ctx context.Context, key string) (float64, bool, error)
	SetAverage(ctx context.Context, key string, average float64) error
	Invalidate(ctx context.Context, key string) error
}

type SearchServiceInterface interface {
	SearchDeliveries(ctx context.Context, intent DeliveryIntent, params SearchParams) ([]domain.Delivery, error)
	SearchOrders(ctx context.Context, intent OrderIntent, params SearchParams) ([]domain.Order, error)
}

type HierarchyServiceInterface interface {
	OpenByID(ctx context.Context, restaurantID string) (*domain.HierarchyView, error)
	Open(ctx context.Context, restaurant domain.Restaurant) (*domain.HierarchyView, error)
	Current() *domain.HierarchyView
	ToggleExpand(menuID string) (*domain.HierarchyView, error)
	CreateMenu(ctx context.Context, form MenuForm) (*domain.HierarchyView, error)
	UpdateMenu(ctx context.Context, menuID string, form MenuForm) (*domain.HierarchyView, error)
	DeleteMenu(ctx context.Context, menuID string) (*domain.HierarchyView, error)
	CreateMenuItem(ctx context.Context, menuID string, form MenuItemForm) (*domain.HierarchyView, error)
	UpdateMenuItem(ctx context.Context, menuID, itemID string, form MenuItemForm) (*domain.HierarchyView, error)
	DeleteMenuItem(ctx context.Context, itemID string) (*domain.HierarchyView, error)
}

type WorkflowServiceInterface interface {
	ApplyDeliveryAction(ctx context.Context, id string, action DeliveryAction, params ActionParams) (*domain.Delivery, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type RestaurantServiceInterface interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Create(ctx context.Context, form domain.RestaurantWrite) (*domain.Restaurant, error)
	Update(ctx context.Context, id string, form domain.RestaurantWrite) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, form OrderForm) (*domain.Order, error)
}

type DeliveryServiceInterface interface {
	Create(ctx context.Context, form DeliveryForm) (*domain.Delivery, error)
}

type RatingServiceInterface interface {
	ByRestaurant(ctx context.Context, restaurantID string) ([]domain.Rating, error)
	Average(ctx context.Context, restaurantID string) (float64, error)
	Create(ctx context.Context, form domain.RatingWrite) (*domain.Rating, error)
	Delete(ctx context.Context, id, restaurantID string) error
}

var (
	_ SearchServiceInterface     = (*SearchService)(nil)
	_ HierarchyServiceInterface  = (*HierarchyService)(nil)
	_ WorkflowServiceInterface   = (*WorkflowService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ DeliveryServiceInterface   = (*DeliveryService)(nil)
	_ RatingServiceInterface     = (*RatingService)(nil)
)
