package domain

import (
	"errors"
	"testing"
)

func TestAuthorize_RuleTable(t *testing.T) {
	owner := &Identity{ID: "u1", Role: RoleUser}
	other := &Identity{ID: "u2", Role: RoleUser}
	admin := &Identity{ID: "u9", Role: RoleAdmin}

	cases := []struct {
		name     string
		identity *Identity
		action   Action
		want     error
	}{
		{"read any without credentials", nil, ActionReadAny, nil},
		{"read any as user", other, ActionReadAny, nil},
		{"create unauthenticated", nil, ActionCreate, ErrUnauthenticated},
		{"create as user", other, ActionCreate, nil},
		{"read own as user", other, ActionReadOwn, nil},
		{"update own by owner", owner, ActionUpdateOwn, nil},
		{"update own by other user", other, ActionUpdateOwn, ErrNotAuthorized},
		{"update own unauthenticated", nil, ActionUpdateOwn, ErrUnauthenticated},
		{"delete own by owner", owner, ActionDeleteOwn, nil},
		{"delete own by other user", other, ActionDeleteOwn, ErrNotAuthorized},
		{"update any by admin", admin, ActionUpdateAny, nil},
		{"update any by user", other, ActionUpdateAny, ErrNotAuthorized},
		{"delete any by admin", admin, ActionDeleteAny, nil},
		{"delete any by user", owner, ActionDeleteAny, ErrNotAuthorized},
		{"unknown action", owner, Action("replicate"), ErrNotAuthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.identity, tc.action, "u1")
			if !errors.Is(err, tc.want) {
				t.Fatalf("Authorize(%v, %s) = %v, want %v", tc.identity, tc.action, err, tc.want)
			}
		})
	}
}

func TestAuthorize_OwnRequiresExactOwnerMatch(t *testing.T) {
	// Admin role does not shortcut ownership checks; the Any actions are the
	// admin paths.
	admin := &Identity{ID: "u9", Role: RoleAdmin}
	if err := Authorize(admin, ActionUpdateOwn, "u1"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for admin on foreign record, got %v", err)
	}
	if err := Authorize(admin, ActionDeleteOwn, "u9"); err != nil {
		t.Fatalf("owner match must pass regardless of role: %v", err)
	}
}

func TestAuthorize_EmptyIdentityID(t *testing.T) {
	// A token that verified but carried no subject is treated as missing
	// credentials, not as an anonymous owner of "".
	ghost := &Identity{Role: RoleUser}
	if err := Authorize(ghost, ActionDeleteOwn, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
