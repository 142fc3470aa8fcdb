package resolve

import (
	"errors"
	"fmt"
)

// ErrTooManyPages is returned when a paginated listing does not terminate
// within the configured page limit.
var ErrTooManyPages = errors.New("remote listing exceeded the maximum number of pages")

// NoUserError is returned when a login lookup yields no account.
type NoUserError struct {
	Login string
}

func (e *NoUserError) Error() string {
	return fmt.Sprintf("no user with login `%s` found", e.Login)
}

// IsNoUser returns true if the error indicates an unknown login.
func IsNoUser(err error) bool {
	var nu *NoUserError
	return errors.As(err, &nu)
}
