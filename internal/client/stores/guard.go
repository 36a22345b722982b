package stores

import (
	"slices"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
)

// Decision is what a protected view should do given the auth state.
type Decision int

const (
	// DecisionWait means auth is still initializing; render nothing yet.
	DecisionWait Decision = iota
	DecisionLogin
	DecisionDenied
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionWait:
		return "wait"
	case DecisionLogin:
		return "login"
	case DecisionDenied:
		return "denied"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Guard decides access to a view that requires one of required roles. An
// empty required list only demands a signed-in user.
func Guard(state AuthState, required ...models.Role) Decision {
	if state.IsLoading {
		return DecisionWait
	}
	if !state.IsAuthenticated || state.User == nil {
		return DecisionLogin
	}
	if len(required) > 0 && !slices.Contains(required, state.User.Role) {
		return DecisionDenied
	}
	return DecisionAllow
}
