package identity_test

import (
	"testing"

	"food-console/internal/domain"
	"food-console/internal/identity"

	"github.com/stretchr/testify/assert"
)

func int64p(v int64) *int64 { return &v }

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		resource    identity.Resource
		expected    string
		expectedErr error
	}{
		{
			name:     "explicit_id_wins",
			resource: domain.Restaurant{ID: int64p(5), Links: &domain.Links{Self: &domain.Link{Href: "http://host/restaurants/99"}}},
			expected: "5",
		},
		{
			name:     "self_link_fallback",
			resource: domain.Menu{Links: &domain.Links{Self: &domain.Link{Href: "http://host/menus/42"}}},
			expected: "42",
		},
		{
			name:     "self_link_trailing_slash",
			resource: domain.MenuItem{Links: &domain.Links{Self: &domain.Link{Href: "http://host/menuItems/17/"}}},
			expected: "17",
		},
		{
			name:        "no_identity",
			resource:    domain.Menu{Name: "Lunch"},
			expectedErr: identity.ErrUnresolvableIdentity,
		},
		{
			name:        "empty_links",
			resource:    domain.Menu{Links: &domain.Links{}},
			expectedErr: identity.ErrUnresolvableIdentity,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			id, err := identity.Resolve(testCase.resource)
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, id)
		})
	}
}

func TestFromLink(t *testing.T) {
	assert.Equal(t, "42", identity.FromLink("http://host/menus/42"))
	assert.Equal(t, "42", identity.FromLink("http://host/menus/42/"))
	assert.Equal(t, "", identity.FromLink(""))
	assert.Equal(t, "menus", identity.FromLink("menus"))
}
