package service_test

import (
	"context"
	"net/url"
	"testing"

	"food-console/internal/domain"
	"food-console/internal/mocks"
	"food-console/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const gatewayURL = "http://localhost:8080"

func restaurantFixture(id int64) domain.Restaurant {
	return domain.Restaurant{ID: &id, Name: "Trattoria"}
}

// expectOpen wires the requests a hierarchy rebuild of restaurant 5 issues:
// the menus listing, then one item fetch per menu in the listing.
func expectOpen(client *mocks.BackendClient, menusBody string, itemBodies map[string]string) {
	client.On("Get", mock.Anything, "/restaurant-service/restaurants/5/menus", url.Values(nil)).
		Return(response(200, menusBody), nil).Once()
	for menuID, body := range itemBodies {
		client.On("Get", mock.Anything, "/restaurant-service/menus/"+menuID+"/menuItems", url.Values(nil)).
			Return(response(200, body), nil).Once()
	}
}

func TestHierarchyService_OpenByID(t *testing.T) {
	client := mocks.NewBackendClient(t)
	client.On("Get", mock.Anything, "/restaurant-service/restaurants/5", url.Values(nil)).
		Return(response(200, `{"id":5,"name":"Trattoria","_links":{"self":{"href":"`+gatewayURL+`/restaurant-service/restaurants/5"},"menus":{"href":"`+gatewayURL+`/restaurant-service/restaurants/5/menus"}}}`), nil).Once()
	client.On("RelativePath", gatewayURL+"/restaurant-service/restaurants/5/menus").
		Return("/restaurant-service/restaurants/5/menus").Once()
	// The second menu carries no id and no self link; it cannot be addressed
	// and must be skipped instead of failing the open.
	expectOpen(client,
		`{"_embedded":{"menus":[{"name":"Lunch","_links":{"self":{"href":"`+gatewayURL+`/restaurant-service/menus/10"}}},{"name":"Orphan"}]}}`,
		map[string]string{"10": `{"_embedded":{"menuItems":[{"name":"Soup","price":4.5,"_links":{"self":{"href":"`+gatewayURL+`/restaurant-service/menuItems/100"}}}]}}`},
	)

	svc := service.NewHierarchyService(client, nil)
	view, err := svc.OpenByID(context.Background(), "5")

	require.NoError(t, err)
	assert.Equal(t, "5", view.RestaurantID)
	assert.Equal(t, "Trattoria", view.Restaurant.Name)
	require.Len(t, view.Menus, 1)
	assert.Equal(t, "10", view.Menus[0].ID)
	assert.Equal(t, "Lunch", view.Menus[0].Menu.Name)
	assert.False(t, view.Menus[0].Expanded)
	require.Len(t, view.Menus[0].Items, 1)
	assert.Equal(t, "Soup", view.Menus[0].Items[0].Name)

	assert.Same(t, view, svc.Current())
}

func TestHierarchyService_OpenByID_Validation(t *testing.T) {
	svc := service.NewHierarchyService(mocks.NewBackendClient(t), nil)

	_, err := svc.OpenByID(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrMissingParameter)

	_, err = svc.OpenByID(context.Background(), "five")
	assert.ErrorIs(t, err, service.ErrMissingParameter)
}

func TestHierarchyService_Open_ItemFetchFailureDegradesMenu(t *testing.T) {
	client := mocks.NewBackendClient(t)
	client.On("Get", mock.Anything, "/restaurant-service/restaurants/5/menus", url.Values(nil)).
		Return(response(200, `{"_embedded":{"menus":[{"name":"Lunch","_links":{"self":{"href":"`+gatewayURL+`/restaurant-service/menus/10"}}}]}}`), nil).Once()
	client.On("Get", mock.Anything, "/restaurant-service/menus/10/menuItems", url.Values(nil)).
		Return(response(500, `boom`), nil).Once()

	svc := service.NewHierarchyService(client, nil)
	view, err := svc.Open(context.Background(), restaurantFixture(5))

	require.NoError(t, err)
	require.Len(t, view.Menus, 1)
	assert.Equal(t, []domain.MenuItem{}, view.Menus[0].Items)
}

func TestHierarchyService_ToggleExpand(t *testing.T) {
	client := mocks.NewBackendClient(t)
	expectOpen(client,
		`{"_embedded":{"menus":[{"name":"Lunch","_links":{"self":{"href":"`+gatewayURL+`/restaurant-service/menus/10"}}}]}}`,
		map[string]string{"10": `{"_embedded":{"menuItems":[]}}`},
	)

	svc := service.NewHierarchyService(client, nil)
	_, err := svc.Open(context.Background(), restaurantFixture(5))
	require.NoError(t, err)

	view, err := svc.ToggleExpand("10")
	require.NoError(t, err)
	assert.True(t, view.Menus[0].Expanded)

	view, err = svc.ToggleExpand("10")
	require.NoError(t, err)
	assert.False(t, view.Menus[0].Expanded)

	_, err = svc.ToggleExpand("99")
	assert.ErrorIs(t, err, service.ErrUnknownMenu)
}

func TestHierarchyService_ToggleExpand_NothingOpen(t *testing.T) {
	svc := service.NewHierarchyService(mocks.NewBackendClient(t), nil)
	_, err := svc.ToggleExpand("10")
	assert.ErrorIs(t, err, service.ErrNoHierarchy)
}

func TestHierarchyService_CreateMenu_RebuildsFromBackend(t *testing.T) {
	client := mocks.NewBackendClient(t)
	expectOpen(client, `{"_embedded":{"menus":[]}}`, nil)

	svc := service.NewHierarchyService(client, nil)
	view, err := svc.Open(context.Background(), restaurantFixture(5))
	require.NoError(t, err)
	require.Empty(t, view.Menus)

	client.On("AbsoluteURL", "/restaurant-service/restaurants/5").
		Return(gatewayURL + "/restaurant-service/restaurants/5").Once()
	client.On("Post", mock.Anything, "/restaurant-service/menus", domain.MenuWrite{
		Name:       "Lunch",
		Restaurant: gatewayURL + "/restaurant-service/restaurants/5",
	}).Return(response(201, `{"name":"Lunch"}`), nil).Once()
	expectOpen(client,
		`{"_embedded":{"menus":[{"name":"Lunch","_links":{"self":{"href":"`+gatewayURL+`/restaurant-service/menus/42"}}}]}}`,
		map[string]string{"42": `{"_embedded":{"menuItems":[]}}`},
	)

	view, err = svc.CreateMenu(context.Background(), service.MenuForm{Name: "Lunch"})
	require.NoError(t, err)
	require.Len(t, view.Menus, 1)
	assert.Equal(t, "42", view.Menus[0].ID)
	assert.Equal(t, "Lunch", view.Menus[0].Menu.Name)
	assert.Empty(t, view.Menus[0].Items)
}

func TestHierarchyService_CreateMenu_NothingOpen(t *testing.T) {
	svc := service.NewHierarchyService(mocks.NewBackendClient(t), nil)
	_, err := svc.CreateMenu(context.Background(), service.MenuForm{Name: "Lunch"})
	assert.ErrorIs(t, err, service.ErrNoHierarchy)
}

func TestHierarchyService_UpdateMenu_PreservesExpandState(t *testing.T) {
	menusBody := `{"_embedded":{"menus":[{"name":"Lunch","_links":{"self":{"href":"` + gatewayURL + `/restaurant-service/menus/10"}}}]}}`
	itemsBody := map[string]string{"10": `{"_embedded":{"menuItems":[]}}`}

	client := mocks.NewBackendClient(t)
	expectOpen(client, menusBody, itemsBody)

	svc := service.NewHierarchyService(client, nil)
	_, err := svc.Open(context.Background(), restaurantFixture(5))
	require.NoError(t, err)
	_, err = svc.ToggleExpand("10")
	require.NoError(t, err)

	client.On("AbsoluteURL", "/restaurant-service/restaurants/5").
		Return(gatewayURL + "/restaurant-service/restaurants/5").Once()
	client.On("Put", mock.Anything, "/restaurant-service/menus/10", domain.MenuWrite{
		Name:       "Dinner",
		Restaurant: gatewayURL + "/restaurant-service/restaurants/5",
	}, url.Values(nil)).Return(response(200, `{"name":"Dinner"}`), nil).Once()
	expectOpen(client,
		`{"_embedded":{"menus":[{"name":"Dinner","_links":{"self":{"href":"`+gatewayURL+`/restaurant-service/menus/10"}}}]}}`,
		itemsBody,
	)

	view, err := svc.UpdateMenu(context.Background(), "10", service.MenuForm{Name: "Dinner"})
	require.NoError(t, err)
	require.Len(t, view.Menus, 1)
	assert.Equal(t, "Dinner", view.Menus[0].Menu.Name)
	assert.True(t, view.Menus[0].Expanded)
}

func TestHierarchyService_UpdateMenu_UnknownMenu(t *testing.T) {
	client := mocks.NewBackendClient(t)
	expectOpen(client, `{"_embedded":{"menus":[]}}`, nil)

	svc := service.NewHierarchyService(client, nil)
	_, err := svc.Open(context.Background(), restaurantFixture(5))
	require.NoError(t, err)

	_, err = svc.UpdateMenu(context.Background(), "99", service.MenuForm{Name: "Dinner"})
	assert.ErrorIs(t, err, service.ErrUnknownMenu)
}

func TestHierarchyService_CreateMenuItem_RebuildsFromBackend(t *testing.T) {
	menusBody := `{"_embedded":{"menus":[{"name":"Lunch","_links":{"self":{"href":"` + gatewayURL + `/restaurant-service/menus/10"}}}]}}`

	client := mocks.NewBackendClient(t)
	expectOpen(client, menusBody, map[string]string{"10": `{"_embedded":{"menuItems":[]}}`})

	svc := service.NewHierarchyService(client, nil)
	_, err := svc.Open(context.Background(), restaurantFixture(5))
	require.NoError(t, err)

	client.On("AbsoluteURL", "/restaurant-service/menus/10").
		Return(gatewayURL + "/restaurant-service/menus/10").Once()
	client.On("Post", mock.Anything, "/restaurant-service/menuItems", domain.MenuItemWrite{
		Name:  "Soup",
		Price: 4.5,
		Menu:  gatewayURL + "/restaurant-service/menus/10",
	}).Return(response(201, `{"name":"Soup","price":4.5}`), nil).Once()
	expectOpen(client, menusBody, map[string]string{"10": `[{"name":"Soup","price":4.5}]`})

	view, err := svc.CreateMenuItem(context.Background(), "10", service.MenuItemForm{Name: "Soup", Price: 4.5})
	require.NoError(t, err)
	require.Len(t, view.Menus, 1)
	require.Len(t, view.Menus[0].Items, 1)
	assert.Equal(t, "Soup", view.Menus[0].Items[0].Name)
	assert.Equal(t, 4.5, view.Menus[0].Items[0].Price)
}

func TestHierarchyService_DeleteMenu(t *testing.T) {
	client := mocks.NewBackendClient(t)
	expectOpen(client,
		`{"_embedded":{"menus":[{"name":"Lunch","_links":{"self":{"href":"`+gatewayURL+`/restaurant-service/menus/10"}}}]}}`,
		map[string]string{"10": `{"_embedded":{"menuItems":[]}}`},
	)

	svc := service.NewHierarchyService(client, nil)
	_, err := svc.Open(context.Background(), restaurantFixture(5))
	require.NoError(t, err)

	client.On("Delete", mock.Anything, "/restaurant-service/menus/10").
		Return(response(204, ""), nil).Once()
	expectOpen(client, `{"_embedded":{"menus":[]}}`, nil)

	view, err := svc.DeleteMenu(context.Background(), "10")
	require.NoError(t, err)
	assert.Empty(t, view.Menus)
}

func TestHierarchyService_DeleteMenuItem(t *testing.T) {
	menusBody := `{"_embedded":{"menus":[{"name":"Lunch","_links":{"self":{"href":"` + gatewayURL + `/restaurant-service/menus/10"}}}]}}`

	client := mocks.NewBackendClient(t)
	expectOpen(client, menusBody, map[string]string{"10": `[{"name":"Soup","price":4.5}]`})

	svc := service.NewHierarchyService(client, nil)
	_, err := svc.Open(context.Background(), restaurantFixture(5))
	require.NoError(t, err)

	client.On("Delete", mock.Anything, "/restaurant-service/menuItems/100").
		Return(response(204, ""), nil).Once()
	expectOpen(client, menusBody, map[string]string{"10": `[]`})

	view, err := svc.DeleteMenuItem(context.Background(), "100")
	require.NoError(t, err)
	require.Len(t, view.Menus, 1)
	assert.Empty(t, view.Menus[0].Items)
}
