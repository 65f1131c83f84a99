// Package callback turns the credentials the identity provider appends to the
// callback URL into a session and a navigation target.
package callback

import (
	"net/url"

	"github.com/jrsteele09/go-contest-portal/session"
)

// Query parameter names delivered by the identity provider
const (
	ParamToken  = "token"
	ParamUserID = "userId"
	ParamEmail  = "email"
	ParamRole   = "role"
)

// Destinations are the three places a callback can navigate to
type Destinations struct {
	Login      string
	Dashboard  string
	SelectRole string
}

var DefaultDestinations = Destinations{
	Login:      "/login",
	Dashboard:  "/dashboard",
	SelectRole: "/select-role",
}

// Params are the raw callback parameters; absent values are empty strings
type Params struct {
	Token  string
	UserID string
	Email  string
	Role   string
}

func ParamsFromQuery(q url.Values) Params {
	return Params{
		Token:  q.Get(ParamToken),
		UserID: q.Get(ParamUserID),
		Email:  q.Get(ParamEmail),
		Role:   q.Get(ParamRole),
	}
}

type Outcome string

const (
	OutcomeMissingCredentials Outcome = "missing_credentials"
	OutcomeDashboard          Outcome = "dashboard"
	OutcomeSelectRole         Outcome = "select_role"
)

// Decision is the result of Decide. When Login is false Identity and Token are zero.
type Decision struct {
	Outcome  Outcome
	Target   string
	Login    bool
	Identity session.Identity
	Token    string
}

// Decide evaluates the callback parameters. The stored role falls back to
// session.DefaultRole, while the branch looks at the role exactly as received:
// a user arriving without a role is stored as STUDENT and still sent to role selection.
func Decide(p Params, d Destinations) Decision {
	if p.Token == "" || p.UserID == "" {
		return Decision{Outcome: OutcomeMissingCredentials, Target: d.Login}
	}

	storedRole := session.Role(p.Role)
	if storedRole == "" {
		storedRole = session.DefaultRole
	}

	decision := Decision{
		Login:    true,
		Identity: session.Identity{ID: p.UserID, Email: p.Email, Role: storedRole},
		Token:    p.Token,
	}

	if p.Role != "" {
		decision.Outcome = OutcomeDashboard
		decision.Target = d.Dashboard
		return decision
	}

	decision.Outcome = OutcomeSelectRole
	decision.Target = SelectRoleURL(d.SelectRole, p.Token, p.UserID)
	return decision
}

// SelectRoleURL forwards token and userId to the role-selection page
func SelectRoleURL(base, token, userID string) string {
	return base + "?" + ParamToken + "=" + url.QueryEscape(token) + "&" + ParamUserID + "=" + url.QueryEscape(userID)
}
