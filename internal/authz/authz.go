// Package authz is the single authorization predicate for the platform.
// Both route gating and navigation-menu filtering go through CanAccess so
// the role rules are never re-derived per screen.
package authz

import "github.com/vibra-app/vibra/internal/domain/entity"

// Requirement is what a route demands of its caller.
type Requirement string

const (
	RequirePublic        Requirement = "public"
	RequireAuthenticated Requirement = "authenticated"
	RequireModerator     Requirement = "moderator"
	RequireAdmin         Requirement = "admin"
)

// CanAccess reports whether a role satisfies a route requirement. The
// role is the sole authorization input; it is never cryptographically
// verified anywhere in the system.
func CanAccess(role entity.UserRole, req Requirement) bool {
	switch req {
	case RequirePublic:
		return true
	case RequireAuthenticated:
		return role.IsValid()
	case RequireModerator:
		return role == entity.UserRoleModerator || role == entity.UserRoleAdmin
	case RequireAdmin:
		return role == entity.UserRoleAdmin
	}
	return false
}

// NavItem is one navigation menu entry.
type NavItem struct {
	Label       string      `json:"label"`
	Path        string      `json:"path"`
	Requirement Requirement `json:"requirement"`
}

// navItems is the full menu in display order.
var navItems = []NavItem{
	{Label: "Home", Path: "/", Requirement: RequireAuthenticated},
	{Label: "Discover", Path: "/discover", Requirement: RequireAuthenticated},
	{Label: "Wallet", Path: "/wallet", Requirement: RequireAuthenticated},
	{Label: "Profile", Path: "/profile", Requirement: RequireAuthenticated},
	{Label: "Moderation", Path: "/moderation", Requirement: RequireModerator},
	{Label: "Admin", Path: "/admin", Requirement: RequireAdmin},
	{Label: "Settings", Path: "/settings", Requirement: RequireAuthenticated},
}

// NavItemsFor returns the menu entries visible to a role, in order.
func NavItemsFor(role entity.UserRole) []NavItem {
	var out []NavItem
	for _, item := range navItems {
		if CanAccess(role, item.Requirement) {
			out = append(out, item)
		}
	}
	return out
}
