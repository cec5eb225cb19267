package domain

// Link is a single hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// Links carries the hypermedia relations the restaurant service attaches to
// its resources. Only relations the console actually follows are mapped.
type Links struct {
	Self      *Link `json:"self,omitempty"`
	Menus     *Link `json:"menus,omitempty"`
	MenuItems *Link `json:"menuItems,omitempty"`
	Menu      *Link `json:"menu,omitempty"`
}

// Restaurant is exposed with an explicit id; the self link is still kept as a
// fallback because embedded representations may omit the id.
type Restaurant struct {
	ID          *int64 `json:"id,omitempty"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
	Links       *Links `json:"_links,omitempty"`
}

func (r Restaurant) ExplicitID() *int64 { return r.ID }
func (r Restaurant) SelfLink() string   { return selfHref(r.Links) }

// Menu and MenuItem come from the hypermedia service without an explicit id;
// they are addressed through their self link.
type Menu struct {
	ID          *int64 `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Links       *Links `json:"_links,omitempty"`
}

func (m Menu) ExplicitID() *int64 { return m.ID }
func (m Menu) SelfLink() string   { return selfHref(m.Links) }

type MenuItem struct {
	ID          *int64  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Links       *Links  `json:"_links,omitempty"`
}

func (i MenuItem) ExplicitID() *int64 { return i.ID }
func (i MenuItem) SelfLink() string   { return selfHref(i.Links) }

func selfHref(l *Links) string {
	if l == nil || l.Self == nil {
		return ""
	}
	return l.Self.Href
}

// MenuWrite is the outbound shape for menu create/update. Restaurant is the
// absolute URL of the owning restaurant; the backend re-associates on every write.
type MenuWrite struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Restaurant  string `json:"restaurant"`
}

// MenuItemWrite mirrors MenuWrite with the owning menu's absolute URL.
type MenuItemWrite struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Menu        string  `json:"menu"`
}

// RestaurantWrite is the outbound shape for restaurant create/update.
type RestaurantWrite struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// RestaurantRef is the denormalized restaurant snapshot embedded in an order.
type RestaurantRef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Order struct {
	ID              int64         `json:"id"`
	CustomerID      int64         `json:"customerId"`
	Restaurant      RestaurantRef `json:"restaurant"`
	TotalAmount     *float64      `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	CreatedAt       string        `json:"createdAt,omitempty"`
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryPickedUp  DeliveryStatus = "PICKED_UP"
	DeliveryInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
)

// Delivery timestamps stay as strings: the delivery service emits zone-less
// LocalDateTime values the console only ever displays.
type Delivery struct {
	ID                   int64          `json:"id"`
	OrderID              int64          `json:"orderId"`
	DriverID             *int64         `json:"driverId,omitempty"`
	DriverName           string         `json:"driverName,omitempty"`
	RestaurantAddress    string         `json:"restaurantAddress,omitempty"`
	CustomerAddress      string         `json:"customerAddress,omitempty"`
	DistanceKm           *float64       `json:"distanceKm,omitempty"`
	EstimatedTimeMinutes *int           `json:"estimatedTimeMinutes,omitempty"`
	Status               DeliveryStatus `json:"status"`
	AssignedAt           string         `json:"assignedAt,omitempty"`
	PickedUpAt           string         `json:"pickedUpAt,omitempty"`
	DeliveredAt          string         `json:"deliveredAt,omitempty"`
	TrackingURL          string         `json:"trackingUrl,omitempty"`
	Notes                string         `json:"notes,omitempty"`
}

// DeliveryWrite is the create payload understood by the delivery service.
type DeliveryWrite struct {
	OrderID           int64  `json:"orderId"`
	DriverID          *int64 `json:"driverId,omitempty"`
	RestaurantAddress string `json:"restaurantAddress"`
	CustomerAddress   string `json:"customerAddress"`
	Notes             string `json:"notes,omitempty"`
}

type Rating struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	UserID       int64  `json:"userId"`
	Score        int    `json:"score"`
	Comment      string `json:"comment,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

type RatingWrite struct {
	RestaurantID int64  `json:"restaurantId"`
	UserID       int64  `json:"userId"`
	Score        int    `json:"score"`
	Comment      string `json:"comment,omitempty"`
}

// RatingAverage is the rating service's average envelope.
type RatingAverage struct {
	Average float64 `json:"average"`
}
