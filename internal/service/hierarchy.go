package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"food-console/internal/domain"
	"food-console/internal/identity"
)

// MenuForm is operator input for menu create/update.
type MenuForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MenuItemForm is operator input for menu item create/update.
type MenuItemForm struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// HierarchyService owns the Restaurant → Menu → MenuItem tree for the
// restaurant currently open in the console. Only one restaurant is
// materialized at a time; opening another replaces the view wholesale.
//
// Mutations never patch the tree locally: after each successful backend call
// the whole hierarchy is rebuilt from authoritative data. Concurrent opens are
// not sequenced; the last completed rebuild wins and is swapped in atomically.
type HierarchyService struct {
	client BackendClient
	audit  *Auditor

	mu   sync.Mutex
	view *domain.HierarchyView
}

func NewHierarchyService(client BackendClient, audit *Auditor) *HierarchyService {
	return &HierarchyService{client: client, audit: audit}
}

// OpenByID fetches the restaurant and materializes its hierarchy.
func (s *HierarchyService) OpenByID(ctx context.Context, restaurantID string) (*domain.HierarchyView, error) {
	id, err := requireID("restaurantId", restaurantID)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Get(ctx, fmt.Sprintf("%s/%d", restaurantBase, id), nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var restaurant domain.Restaurant
	if err := json.Unmarshal(resp.Data, &restaurant); err != nil {
		return nil, fmt.Errorf("failed to decode restaurant: %w", err)
	}
	return s.Open(ctx, restaurant)
}

// Open materializes the hierarchy for a restaurant representation. Menus are
// fetched first, then each menu's items; a failing item fetch degrades that
// menu to an empty item list instead of aborting the open.
func (s *HierarchyService) Open(ctx context.Context, restaurant domain.Restaurant) (*domain.HierarchyView, error) {
	restaurantID, err := identity.Resolve(restaurant)
	if err != nil {
		return nil, err
	}

	menusPath := restaurantBase + "/" + restaurantID + "/menus"
	if restaurant.Links != nil && restaurant.Links.Menus != nil {
		menusPath = s.client.RelativePath(restaurant.Links.Menus.Href)
	}

	resp, err := s.client.Get(ctx, menusPath, nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	menus := []domain.Menu{}
	if err := decodeCollection(resp.Data, "menus", &menus); err != nil {
		return nil, err
	}

	expanded := s.expandedFlags(restaurantID)

	view := &domain.HierarchyView{
		RestaurantID: restaurantID,
		Restaurant:   restaurant,
		Menus:        make([]domain.MenuNode, 0, len(menus)),
	}
	for _, menu := range menus {
		menuID, err := identity.Resolve(menu)
		if err != nil {
			// A menu without any usable identity cannot be expanded or
			// mutated; skip it rather than poison the whole tree.
			log.Printf("Warning: skipping menu %q: %v", menu.Name, err)
			continue
		}
		items, err := s.fetchMenuItems(ctx, menuID)
		if err != nil {
			log.Printf("Warning: failed to fetch items for menu %s: %v", menuID, err)
			items = []domain.MenuItem{}
		}
		view.Menus = append(view.Menus, domain.MenuNode{
			ID:       menuID,
			Menu:     menu,
			Items:    items,
			Expanded: expanded[menuID],
		})
	}

	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
	return view, nil
}

// Current returns the open hierarchy, or nil when none is open.
func (s *HierarchyService) Current() *domain.HierarchyView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// ToggleExpand flips a menu's expand flag. View state only; no request.
func (s *HierarchyService) ToggleExpand(menuID string) (*domain.HierarchyView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return nil, ErrNoHierarchy
	}
	for i := range s.view.Menus {
		if s.view.Menus[i].ID == menuID {
			s.view.Menus[i].Expanded = !s.view.Menus[i].Expanded
			return s.view, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMenu, menuID)
}

// CreateMenu creates a menu under the open restaurant and rebuilds the tree.
// The write carries the restaurant's absolute address as a back-reference.
func (s *HierarchyService) CreateMenu(ctx context.Context, form MenuForm) (*domain.HierarchyView, error) {
	restaurant, restaurantID, err := s.openRestaurant()
	if err != nil {
		return nil, err
	}

	body := domain.MenuWrite{
		Name:        form.Name,
		Description: form.Description,
		Restaurant:  s.client.AbsoluteURL(restaurantBase + "/" + restaurantID),
	}
	resp, err := s.client.Post(ctx, menuBase, body)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "menu.create", "menu", "", form.Name)
	return s.Open(ctx, restaurant)
}

// UpdateMenu updates a menu of the open restaurant and rebuilds the tree.
func (s *HierarchyService) UpdateMenu(ctx context.Context, menuID string, form MenuForm) (*domain.HierarchyView, error) {
	restaurant, restaurantID, err := s.openRestaurant()
	if err != nil {
		return nil, err
	}
	if _, err := s.menuNode(menuID); err != nil {
		return nil, err
	}

	body := domain.MenuWrite{
		Name:        form.Name,
		Description: form.Description,
		Restaurant:  s.client.AbsoluteURL(restaurantBase + "/" + restaurantID),
	}
	resp, err := s.client.Put(ctx, menuBase+"/"+menuID, body, nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "menu.update", "menu", menuID, form.Name)
	return s.Open(ctx, restaurant)
}

// DeleteMenu removes a menu and rebuilds the tree.
func (s *HierarchyService) DeleteMenu(ctx context.Context, menuID string) (*domain.HierarchyView, error) {
	restaurant, _, err := s.openRestaurant()
	if err != nil {
		return nil, err
	}
	if _, err := s.menuNode(menuID); err != nil {
		return nil, err
	}

	resp, err := s.client.Delete(ctx, menuBase+"/"+menuID)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "menu.delete", "menu", menuID, "")
	return s.Open(ctx, restaurant)
}

// CreateMenuItem creates an item under one of the open restaurant's menus.
// The write carries the menu's absolute address as a back-reference.
func (s *HierarchyService) CreateMenuItem(ctx context.Context, menuID string, form MenuItemForm) (*domain.HierarchyView, error) {
	restaurant, _, err := s.openRestaurant()
	if err != nil {
		return nil, err
	}
	if _, err := s.menuNode(menuID); err != nil {
		return nil, err
	}

	body := domain.MenuItemWrite{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Menu:        s.client.AbsoluteURL(menuBase + "/" + menuID),
	}
	resp, err := s.client.Post(ctx, menuItemBase, body)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "menuItem.create", "menuItem", "", form.Name)
	return s.Open(ctx, restaurant)
}

// UpdateMenuItem updates an item under one of the open restaurant's menus.
func (s *HierarchyService) UpdateMenuItem(ctx context.Context, menuID, itemID string, form MenuItemForm) (*domain.HierarchyView, error) {
	restaurant, _, err := s.openRestaurant()
	if err != nil {
		return nil, err
	}
	if _, err := s.menuNode(menuID); err != nil {
		return nil, err
	}

	body := domain.MenuItemWrite{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Menu:        s.client.AbsoluteURL(menuBase + "/" + menuID),
	}
	resp, err := s.client.Put(ctx, menuItemBase+"/"+itemID, body, nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "menuItem.update", "menuItem", itemID, form.Name)
	return s.Open(ctx, restaurant)
}

// DeleteMenuItem removes an item and rebuilds the tree.
func (s *HierarchyService) DeleteMenuItem(ctx context.Context, itemID string) (*domain.HierarchyView, error) {
	restaurant, _, err := s.openRestaurant()
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Delete(ctx, menuItemBase+"/"+itemID)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "menuItem.delete", "menuItem", itemID, "")
	return s.Open(ctx, restaurant)
}

func (s *HierarchyService) fetchMenuItems(ctx context.Context, menuID string) ([]domain.MenuItem, error) {
	resp, err := s.client.Get(ctx, menuBase+"/"+menuID+"/menuItems", nil)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	items := []domain.MenuItem{}
	if err := decodeCollection(resp.Data, "menuItems", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// openRestaurant snapshots the currently open restaurant for a mutation.
func (s *HierarchyService) openRestaurant() (domain.Restaurant, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return domain.Restaurant{}, "", ErrNoHierarchy
	}
	return s.view.Restaurant, s.view.RestaurantID, nil
}

func (s *HierarchyService) menuNode(menuID string) (domain.MenuNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return domain.MenuNode{}, ErrNoHierarchy
	}
	for _, node := range s.view.Menus {
		if node.ID == menuID {
			return node, nil
		}
	}
	return domain.MenuNode{}, fmt.Errorf("%w: %s", ErrUnknownMenu, menuID)
}

// expandedFlags preserves expand state across rebuilds of the same restaurant.
func (s *HierarchyService) expandedFlags(restaurantID string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags := map[string]bool{}
	if s.view == nil || s.view.RestaurantID != restaurantID {
		return flags
	}
	for _, node := range s.view.Menus {
		flags[node.ID] = node.Expanded
	}
	return flags
}
