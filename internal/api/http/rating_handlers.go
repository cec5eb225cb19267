package httpapi

import (
	"encoding/json"
	"net/http"

	"food-console/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) restaurantRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.Ratings.ByRestaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, ratings)
}

func (h *Handler) restaurantRatingAverage(w http.ResponseWriter, r *http.Request) {
	average, err := h.Ratings.Average(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, domain.RatingAverage{Average: average})
}

func (h *Handler) createRating(w http.ResponseWriter, r *http.Request) {
	var form domain.RatingWrite
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Ratings.Create(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, created)
}

func (h *Handler) deleteRating(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.URL.Query().Get("restaurantId")
	if err := h.Ratings.Delete(r.Context(), mux.Vars(r)["id"], restaurantID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
