package httpapi

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the console surface. All resource routes live under
// /api/console; /health is for probes.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	api := r.PathPrefix("/api/console").Subrouter()

	api.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	api.HandleFunc("/restaurants", h.createRestaurant).Methods("POST")
	api.HandleFunc("/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	api.HandleFunc("/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	api.HandleFunc("/restaurants/{id}/hierarchy", h.openHierarchy).Methods("GET")
	api.HandleFunc("/restaurants/{id}/ratings", h.restaurantRatings).Methods("GET")
	api.HandleFunc("/restaurants/{id}/ratings/average", h.restaurantRatingAverage).Methods("GET")

	api.HandleFunc("/hierarchy", h.currentHierarchy).Methods("GET")
	api.HandleFunc("/hierarchy/menus", h.createMenu).Methods("POST")
	api.HandleFunc("/hierarchy/menus/{menuId}", h.updateMenu).Methods("PUT")
	api.HandleFunc("/hierarchy/menus/{menuId}", h.deleteMenu).Methods("DELETE")
	api.HandleFunc("/hierarchy/menus/{menuId}/toggle", h.toggleMenu).Methods("POST")
	api.HandleFunc("/hierarchy/menus/{menuId}/items", h.createMenuItem).Methods("POST")
	api.HandleFunc("/hierarchy/menus/{menuId}/items/{itemId}", h.updateMenuItem).Methods("PUT")
	api.HandleFunc("/hierarchy/items/{itemId}", h.deleteMenuItem).Methods("DELETE")

	api.HandleFunc("/deliveries/search", h.searchDeliveries).Methods("GET")
	api.HandleFunc("/deliveries", h.createDelivery).Methods("POST")
	api.HandleFunc("/deliveries/{id}/actions", h.deliveryActions).Methods("GET")
	api.HandleFunc("/deliveries/{id}/actions/{action}", h.applyDeliveryAction).Methods("POST")
	api.HandleFunc("/deliveries/{id}/qrcode", h.deliveryQRCode).Methods("GET")

	api.HandleFunc("/orders/search", h.searchOrders).Methods("GET")
	api.HandleFunc("/orders", h.createOrder).Methods("POST")
	api.HandleFunc("/orders/statuses", h.orderStatuses).Methods("GET")
	api.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")

	api.HandleFunc("/ratings", h.createRating).Methods("POST")
	api.HandleFunc("/ratings/{id}", h.deleteRating).Methods("DELETE")
}
