package service

import (
	"slices"

	"github.com/MKhiriev/go-sweet-shop/models"
)

// Route names a client view.
type Route string

const (
	RouteIndex     Route = "/"
	RouteLogin     Route = "/login"
	RouteRegister  Route = "/register"
	RouteUserHome  Route = "/dashboard"
	RouteAdminHome Route = "/admin"
)

type DecisionKind int

const (
	DecisionRender DecisionKind = iota
	DecisionLoading
	DecisionRedirect
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionRender:
		return "render"
	case DecisionLoading:
		return "loading"
	case DecisionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is the outcome of CheckAccess. Target is set only for redirects.
type Decision struct {
	Kind   DecisionKind
	Target Route
}

// CheckAccess decides whether a protected view may be shown for session.
// With no roles any authenticated identity is accepted. A caller whose role
// is not listed is sent to their own home view.
func CheckAccess(session models.Session, roles ...models.Role) Decision {
	if session.Status == models.StatusRestoring {
		return Decision{Kind: DecisionLoading}
	}
	if !session.IsAuthenticated() {
		return Decision{Kind: DecisionRedirect, Target: RouteLogin}
	}

	if len(roles) > 0 && !slices.Contains(roles, session.Identity.Role()) {
		return Decision{Kind: DecisionRedirect, Target: HomeFor(*session.Identity)}
	}
	return Decision{Kind: DecisionRender}
}

// HomeFor returns the landing view for user's role.
func HomeFor(user models.User) Route {
	if user.Role() == models.RoleAdmin {
		return RouteAdminHome
	}
	return RouteUserHome
}
