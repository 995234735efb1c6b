package domain

import "errors"

var ErrUnauthenticated = errors.New("authentication required")
var ErrNotAuthorized = errors.New("not authorized")

// Action enumerates the operations the authorization rules decide on.
// "Own" actions target a record the caller claims through ownership; "Any"
// actions are the unconditional admin paths.
type Action string

const (
	ActionCreate    Action = "create"
	ActionReadOwn   Action = "read_own"
	ActionReadAny   Action = "read_any"
	ActionUpdateOwn Action = "update_own"
	ActionUpdateAny Action = "update_any"
	ActionDeleteOwn Action = "delete_own"
	ActionDeleteAny Action = "delete_any"
)

// Identity is the authenticated caller as materialized from the verified
// token. A nil *Identity means the request carried no valid credentials.
type Identity struct {
	ID       string
	UserName string
	Email    string
	Role     string
}

func (i *Identity) IsAdmin() bool { return i != nil && i.Role == RoleAdmin }

// Authorize decides whether identity may perform action against a record
// owned by owner. Ownership is compared on the stored owner reference, never
// on anything the client supplied. Rules, first match wins:
//
//	ReadAny                     → allow, authenticated or not
//	no identity                 → ErrUnauthenticated
//	Create, ReadOwn             → allow any authenticated caller
//	UpdateAny, DeleteAny        → allow admins only
//	UpdateOwn, DeleteOwn        → allow iff identity.ID == owner
func Authorize(identity *Identity, action Action, owner string) error {
	if action == ActionReadAny {
		return nil
	}
	if identity == nil || identity.ID == "" {
		return ErrUnauthenticated
	}

	switch action {
	case ActionCreate, ActionReadOwn:
		return nil
	case ActionUpdateAny, ActionDeleteAny:
		if identity.IsAdmin() {
			return nil
		}
		return ErrNotAuthorized
	case ActionUpdateOwn, ActionDeleteOwn:
		if identity.ID == owner {
			return nil
		}
		return ErrNotAuthorized
	}
	return ErrNotAuthorized
}
