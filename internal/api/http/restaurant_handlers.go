package httpapi

import (
	"encoding/json"
	"net/http"

	"food-console/internal/domain"
	"food-console/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var form domain.RestaurantWrite
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Restaurants.Create(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, created)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var form domain.RestaurantWrite
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.Restaurants.Update(r.Context(), mux.Vars(r)["id"], form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, updated)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.Restaurants.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) openHierarchy(w http.ResponseWriter, r *http.Request) {
	view, err := h.Hierarchy.OpenByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) currentHierarchy(w http.ResponseWriter, r *http.Request) {
	view := h.Hierarchy.Current()
	if view == nil {
		writeError(w, service.ErrNoHierarchy)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) toggleMenu(w http.ResponseWriter, r *http.Request) {
	view, err := h.Hierarchy.ToggleExpand(mux.Vars(r)["menuId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var form service.MenuForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.Hierarchy.CreateMenu(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, view)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	var form service.MenuForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.Hierarchy.UpdateMenu(r.Context(), mux.Vars(r)["menuId"], form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	view, err := h.Hierarchy.DeleteMenu(r.Context(), mux.Vars(r)["menuId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var form service.MenuItemForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.Hierarchy.CreateMenuItem(r.Context(), mux.Vars(r)["menuId"], form)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, view)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var form service.MenuItemForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	view, err := h.Hierarchy.UpdateMenuItem(r.Context(), vars["menuId"], vars["itemId"], form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.Hierarchy.DeleteMenuItem(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}
