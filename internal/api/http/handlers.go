package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"food-console/internal/backend"
	"food-console/internal/identity"
	"food-console/internal/service"
)

// Handler is the console's HTTP surface for the operator frontend.
type Handler struct {
	Search      service.SearchServiceInterface
	Hierarchy   service.HierarchyServiceInterface
	Workflow    service.WorkflowServiceInterface
	Restaurants service.RestaurantServiceInterface
	Orders      service.OrderServiceInterface
	Deliveries  service.DeliveryServiceInterface
	Ratings     service.RatingServiceInterface
	QR          service.QRGenerator
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "healthy",
		"service": "food-console",
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError maps the console error taxonomy onto status codes. Backend
// failures surface as 502 so the frontend can offer a retry.
func writeError(w http.ResponseWriter, err error) {
	var transportErr *backend.TransportError
	switch {
	case errors.Is(err, service.ErrMissingParameter),
		errors.Is(err, service.ErrUnknownIntent),
		errors.Is(err, service.ErrUnknownAction),
		errors.Is(err, service.ErrUnknownStatus),
		errors.Is(err, identity.ErrUnresolvableIdentity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrIllegalTransition),
		errors.Is(err, service.ErrNoHierarchy):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrUnknownMenu),
		errors.Is(err, backend.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &transportErr):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
