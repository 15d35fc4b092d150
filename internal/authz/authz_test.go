package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vibra-app/vibra/internal/authz"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

func TestCanAccess(t *testing.T) {
	cases := []struct {
		name string
		role entity.UserRole
		req  authz.Requirement
		want bool
	}{
		{"public is open to anonymous", "", authz.RequirePublic, true},
		{"anonymous cannot reach authenticated routes", "", authz.RequireAuthenticated, false},
		{"user reaches authenticated routes", entity.UserRoleUser, authz.RequireAuthenticated, true},
		{"creator reaches authenticated routes", entity.UserRoleCreator, authz.RequireAuthenticated, true},
		{"user cannot moderate", entity.UserRoleUser, authz.RequireModerator, false},
		{"moderator can moderate", entity.UserRoleModerator, authz.RequireModerator, true},
		{"admin can moderate", entity.UserRoleAdmin, authz.RequireModerator, true},
		{"moderator is not admin", entity.UserRoleModerator, authz.RequireAdmin, false},
		{"admin reaches admin routes", entity.UserRoleAdmin, authz.RequireAdmin, true},
		{"unknown role is rejected", "superuser", authz.RequireAuthenticated, false},
		{"unknown requirement is rejected", entity.UserRoleAdmin, authz.Requirement("owner"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.CanAccess(tc.role, tc.req))
		})
	}
}

func labels(items []authz.NavItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestNavItemsFor(t *testing.T) {
	assert.Equal(t,
		[]string{"Home", "Discover", "Wallet", "Profile", "Settings"},
		labels(authz.NavItemsFor(entity.UserRoleUser)))

	assert.Equal(t,
		[]string{"Home", "Discover", "Wallet", "Profile", "Moderation", "Settings"},
		labels(authz.NavItemsFor(entity.UserRoleModerator)))

	assert.Equal(t,
		[]string{"Home", "Discover", "Wallet", "Profile", "Moderation", "Admin", "Settings"},
		labels(authz.NavItemsFor(entity.UserRoleAdmin)))

	assert.Empty(t, authz.NavItemsFor(""))
}
