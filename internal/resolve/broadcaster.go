package resolve

import (
	"context"
	"fmt"

	"github.com/jokarl/helixctl/internal/helix"
)

// UserDirectory looks up accounts by login or ID.
type UserDirectory interface {
	GetUsers(ctx context.Context, logins, ids []string) ([]helix.User, error)
}

type identKind int

const (
	identSelf identKind = iota
	identLogin
	identID
)

// UserIdent names a broadcaster: the authenticated user, a login or an ID.
// The zero value is Self.
type UserIdent struct {
	kind  identKind
	value string
}

// Self refers to the account behind the access token.
func Self() UserIdent { return UserIdent{kind: identSelf} }

// ByLogin refers to an account by login name.
func ByLogin(login string) UserIdent { return UserIdent{kind: identLogin, value: login} }

// ByID refers to an account by its canonical ID.
func ByID(id string) UserIdent { return UserIdent{kind: identID, value: id} }

// IdentFromFlags picks an ident from optional flag values. An ID wins over a
// login; neither means Self.
func IdentFromFlags(login, id string) UserIdent {
	switch {
	case id != "":
		return ByID(id)
	case login != "":
		return ByLogin(login)
	default:
		return Self()
	}
}

func (u UserIdent) String() string {
	switch u.kind {
	case identLogin:
		return "login:" + u.value
	case identID:
		return "id:" + u.value
	default:
		return "self"
	}
}

// BroadcasterResolver maps a UserIdent to an account ID.
type BroadcasterResolver struct {
	users  UserDirectory
	selfID string
}

// NewBroadcasterResolver creates a resolver for the user whose ID is selfID.
func NewBroadcasterResolver(users UserDirectory, selfID string) *BroadcasterResolver {
	return &BroadcasterResolver{
		users:  users,
		selfID: selfID,
	}
}

// Resolve returns the account ID for ident. Only logins need a remote
// lookup; if it returns several accounts the first one is used.
func (r *BroadcasterResolver) Resolve(ctx context.Context, ident UserIdent) (string, error) {
	switch ident.kind {
	case identID:
		return ident.value, nil
	case identLogin:
		users, err := r.users.GetUsers(ctx, []string{ident.value}, nil)
		if err != nil {
			return "", fmt.Errorf("failed to look up user %s: %w", ident.value, err)
		}
		if len(users) == 0 {
			return "", &NoUserError{Login: ident.value}
		}
		return users[0].ID, nil
	default:
		return r.selfID, nil
	}
}
