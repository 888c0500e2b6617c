package storesdk

// Decision is the outcome of an access check for a protected route.
type Decision int

const (
	// DecisionPending means the identity is still being resolved; show a
	// "checking access" indicator and decide later.
	DecisionPending Decision = iota

	// DecisionAllow grants access to the route.
	DecisionAllow

	// DecisionRedirectLogin denies access because the user is not
	// authenticated.
	DecisionRedirectLogin

	// DecisionRedirectHome denies access because the authenticated user
	// lacks the required role. The redirect target is the default
	// authenticated landing, not login.
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectHome:
		return "redirect-home"
	default:
		return "pending"
	}
}

// RouteRule declares the access requirement of a protected route. An empty
// role set means any authenticated user may enter.
type RouteRule struct {
	Roles []Role
}

// Authorize decides whether the session may enter a route. It is a pure
// function: it holds no state and must be re-evaluated on every navigation
// and whenever the session changes.
func Authorize(snap Snapshot, rule RouteRule) Decision {
	if snap.Loading() {
		return DecisionPending
	}
	if snap.User == nil {
		return DecisionRedirectLogin
	}
	if len(rule.Roles) == 0 {
		return DecisionAllow
	}
	for _, role := range rule.Roles {
		if snap.User.Role.Is(role) {
			return DecisionAllow
		}
	}
	return DecisionRedirectHome
}
