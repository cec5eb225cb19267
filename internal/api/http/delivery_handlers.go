package httpapi

import (
	"encoding/json"
	"net/http"

	"food-console/internal/domain"
	"food-console/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) searchDeliveries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	intent := service.DeliveryIntent(q.Get("type"))
	if intent == "" {
		intent = service.DeliveriesAll
	}
	params := service.SearchParams{
		ID:         q.Get("id"),
		OrderID:    q.Get("orderId"),
		DriverID:   q.Get("driverId"),
		ActiveOnly: q.Get("activeOnly") == "true",
		Status:     q.Get("status"),
	}
	deliveries, err := h.Search.SearchDeliveries(r.Context(), intent, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, deliveries)
}

func (h *Handler) createDelivery(w http.ResponseWriter, r *http.Request) {
	var form service.DeliveryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Deliveries.Create(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, created)
}

// deliveryActions reports the affordances for the status the operator is
// looking at: the forward action plus cancel eligibility.
func (h *Handler) deliveryActions(w http.ResponseWriter, r *http.Request) {
	status := domain.DeliveryStatus(r.URL.Query().Get("status"))
	writeJSON(w, map[string]interface{}{
		"actions":   service.AvailableActions(status),
		"canCancel": service.CanCancel(status),
	})
}

func (h *Handler) applyDeliveryAction(w http.ResponseWriter, r *http.Request) {
	var params service.ActionParams
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	vars := mux.Vars(r)
	updated, err := h.Workflow.ApplyDeliveryAction(r.Context(), vars["id"], service.DeliveryAction(vars["action"]), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, updated)
}

// deliveryQRCode renders a delivery's tracking URL as a PNG QR code.
func (h *Handler) deliveryQRCode(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.Search.SearchDeliveries(r.Context(), service.DeliveriesByID, service.SearchParams{ID: mux.Vars(r)["id"]})
	if err != nil {
		writeError(w, err)
		return
	}
	if len(deliveries) == 0 {
		http.Error(w, "delivery not found", http.StatusNotFound)
		return
	}
	if deliveries[0].TrackingURL == "" {
		http.Error(w, "delivery has no tracking url", http.StatusNotFound)
		return
	}

	png, err := h.QR.Generate(deliveries[0].TrackingURL)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
