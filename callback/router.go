package callback

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jrsteele09/go-contest-portal/session"
)

// SessionStore is the part of the session the router writes to
type SessionStore interface {
	Login(ctx context.Context, identity session.Identity, token string) error
}

// Result carries the decision together with the phase reached
type Result struct {
	Decision
	Phase Phase
}

// Router runs the callback decision once per visit. Revisiting the same URL
// runs it again and logs in again.
type Router struct {
	destinations Destinations
}

func NewRouter(d Destinations) *Router {
	return &Router{destinations: d}
}

// Resolve reads rawQuery, decides, and on success performs exactly one Login on store.
// A query string that cannot be parsed takes the failure path without leaving PhaseLoading.
func (r *Router) Resolve(ctx context.Context, rawQuery string, store SessionStore) (Result, error) {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Result{
			Decision: Decision{Outcome: OutcomeMissingCredentials, Target: r.destinations.Login},
			Phase:    PhaseLoading,
		}, nil
	}

	res := Result{Decision: Decide(ParamsFromQuery(q), r.destinations), Phase: PhaseAuthenticating}
	if !res.Login {
		return res, nil
	}
	if err := store.Login(ctx, res.Identity, res.Token); err != nil {
		return res, fmt.Errorf("[callback Resolve] login: %w", err)
	}
	return res, nil
}
