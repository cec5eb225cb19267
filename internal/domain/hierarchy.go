package domain

// MenuNode is one menu inside the materialized restaurant tree, together with
// its lazily fetched items and the console's expand/collapse state.
type MenuNode struct {
	ID       string     `json:"id"`
	Menu     Menu       `json:"menu"`
	Items    []MenuItem `json:"items"`
	Expanded bool       `json:"expanded"`
}

// HierarchyView is the Restaurant → Menu → MenuItem tree for the restaurant
// currently open in the console. Only one view exists at a time; opening a
// different restaurant replaces it wholesale.
type HierarchyView struct {
	RestaurantID string     `json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant"`
	Menus        []MenuNode `json:"menus"`
}
