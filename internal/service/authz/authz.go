package authz

import (
	"fmt"

	"backoffice-cms/internal/domain/entity"
)

// Actor is the authenticated principal attempting an action. It is resolved
// upstream from a bearer credential; this package never sees the credential.
type Actor struct {
	ID       int64
	Role     entity.Role
	IsActive bool
}

// Resource describes the target of a resource-scoped action. A nil resource
// means the action is collection-scoped (create, list, stats).
type Resource struct {
	Kind    ResourceKind
	OwnerID int64
}

// Reason classifies why an action was denied.
type Reason string

// Denial reasons, in evaluation order.
const (
	// ReasonAccountDisabled: the actor's account is deactivated.
	ReasonAccountDisabled Reason = "account_disabled"
	// ReasonInsufficientPermissions: no policy rule grants the action.
	ReasonInsufficientPermissions Reason = "insufficient_permissions"
	// ReasonAccessDenied: the rule grants own-scope only and the actor
	// does not own the resource.
	ReasonAccessDenied Reason = "access_denied"
)

// Error is the typed failure returned when an action is denied.
type Error struct {
	Reason Reason
	Action Action
	Kind   ResourceKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("authorization denied (%s): %s on %s", e.Reason, e.Action, e.Kind)
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

// Deny constructs a negative decision with the given reason.
func Deny(r Reason) Decision {
	return Decision{Reason: r}
}

// Authorize decides whether the actor may perform the action on the given
// resource kind. It is a pure function over (actor, action, optional
// resource-owner-id): no I/O, no clock, no shared state.
//
// Checks run in a fixed order and the first failure wins:
//  1. the actor must be active
//  2. admin short-circuits to Allow
//  3. the policy table must grant the action for the actor's role
//  4. own-scoped grants require ownership of the resource
//
// A missing rule is an implicit deny; the function fails closed.
func Authorize(actor Actor, action Action, kind ResourceKind, res *Resource) Decision {
	if !actor.IsActive {
		return Deny(ReasonAccountDisabled)
	}

	if actor.Role == entity.RoleAdmin {
		return Allow
	}

	scope, ok := Policy[actor.Role][kind][action]
	if !ok || scope == ScopeNone {
		return Deny(ReasonInsufficientPermissions)
	}

	if scope == ScopeOwn {
		if res == nil || res.OwnerID != actor.ID {
			return Deny(ReasonAccessDenied)
		}
	}

	return Allow
}

// Err converts a decision into an error suitable for returning from a
// usecase: nil when allowed, a typed *Error otherwise.
func (d Decision) Err(action Action, kind ResourceKind) error {
	if d.Allowed {
		return nil
	}
	return &Error{Reason: d.Reason, Action: action, Kind: kind}
}
