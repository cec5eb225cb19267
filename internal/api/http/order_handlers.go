package httpapi

import (
	"encoding/json"
	"net/http"

	"food-console/internal/domain"
	"food-console/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) searchOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	intent := service.OrderIntent(q.Get("type"))
	if intent == "" {
		intent = service.OrdersByCustomer
	}
	params := service.SearchParams{
		CustomerID:   q.Get("customerId"),
		RestaurantID: q.Get("restaurantId"),
	}
	orders, err := h.Search.SearchOrders(r.Context(), intent, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var form service.OrderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Orders.Create(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, created)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.Workflow.UpdateOrderStatus(r.Context(), mux.Vars(r)["id"], payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, updated)
}

func (h *Handler) orderStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, service.OrderStatuses())
}
