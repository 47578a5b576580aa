// Package authz implements the role and ownership policy for every mutation
// in the system. All enforcement points consult the single policy table below
// so article handlers, user handlers and the lifecycle clamp cannot drift
// apart in what they allow.
package authz

import "backoffice-cms/internal/domain/entity"

// Action identifies an operation an actor may attempt on a resource.
type Action string

// Actions covered by the policy table.
const (
	ActionCreate    Action = "create"
	ActionRead      Action = "read"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionPublish   Action = "publish"
	ActionViewStats Action = "view_stats"
	// ActionChangeRole and ActionChangeStatus cover the admin-only user
	// management operations (role assignment, account activation).
	ActionChangeRole   Action = "change_role"
	ActionChangeStatus Action = "change_status"
)

// ResourceKind identifies the type of resource an action targets.
type ResourceKind string

// Resource kinds covered by the policy table.
const (
	ResourceArticle  ResourceKind = "article"
	ResourceUser     ResourceKind = "user"
	ResourceCategory ResourceKind = "category"
)

// Scope restricts how far a granted action reaches.
type Scope int

const (
	// ScopeNone denies the action outright.
	ScopeNone Scope = iota
	// ScopeOwn grants the action only when the actor owns the resource.
	// For user resources, ownership means the actor is the target user.
	ScopeOwn
	// ScopeAny grants the action on every resource of the kind.
	ScopeAny
)

// Policy maps (role, resource kind, action) to a scope. Roles or actions
// absent from the table are implicitly denied; the table fails closed.
//
// The editor grant on article delete is deliberately ScopeAny: the product
// decision is that editors manage the whole article catalog, not only
// articles they authored.
var Policy = map[entity.Role]map[ResourceKind]map[Action]Scope{
	entity.RoleAdmin: {
		// Admin short-circuits in Authorize; this entry documents intent.
		ResourceArticle:  {ActionCreate: ScopeAny, ActionRead: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny, ActionPublish: ScopeAny, ActionViewStats: ScopeAny},
		ResourceUser:     {ActionCreate: ScopeAny, ActionRead: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny, ActionChangeRole: ScopeAny, ActionChangeStatus: ScopeAny},
		ResourceCategory: {ActionCreate: ScopeAny, ActionRead: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny},
	},
	entity.RoleEditor: {
		// No ViewStats entry: the stats overview is an admin dashboard.
		ResourceArticle:  {ActionCreate: ScopeAny, ActionRead: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny, ActionPublish: ScopeAny},
		ResourceUser:     {ActionRead: ScopeAny, ActionUpdate: ScopeOwn},
		ResourceCategory: {ActionCreate: ScopeAny, ActionRead: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny},
	},
	entity.RoleAuthor: {
		ResourceArticle:  {ActionCreate: ScopeAny, ActionRead: ScopeOwn, ActionUpdate: ScopeOwn, ActionDelete: ScopeOwn},
		ResourceUser:     {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
		ResourceCategory: {ActionRead: ScopeAny},
	},
}

// AllowedProfileFields lists the user fields a non-admin may change on their
// own profile. Role and activation status stay immutable even on self.
var AllowedProfileFields = []string{"name", "email"}

// IsProfileFieldAllowed reports whether a non-admin self-update may touch the field.
func IsProfileFieldAllowed(field string) bool {
	for _, f := range AllowedProfileFields {
		if f == field {
			return true
		}
	}
	return false
}

// ScopeFor returns the policy scope granted to the role for an action on a
// resource kind. Admin always has ScopeAny; unknown combinations are ScopeNone.
func ScopeFor(role entity.Role, kind ResourceKind, action Action) Scope {
	if role == entity.RoleAdmin {
		return ScopeAny
	}
	scope, ok := Policy[role][kind][action]
	if !ok {
		return ScopeNone
	}
	return scope
}

// CanPublish reports whether the role may set an article's status to
// published. Callers lacking this privilege have their requested status
// silently clamped by the lifecycle rules rather than rejected.
func CanPublish(role entity.Role) bool {
	scope, ok := Policy[role][ResourceArticle][ActionPublish]
	return ok && scope == ScopeAny
}
