package cli

import (
	"sync"

	"github.com/dmitrijs2005/tutoradmin/internal/common"
)

// Router tracks the console's current route. It is the Navigator handed to
// the HTTP client, so a 401 anywhere ends up as a redirect the REPL picks
// up after the running command.
type Router struct {
	mu         sync.Mutex
	current    string
	redirected string
}

func NewRouter() *Router {
	return &Router{current: common.RouteLogin}
}

func (r *Router) CurrentRoute() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate is a forced navigation coming from outside the console.
func (r *Router) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = route
	r.redirected = route
}

// set moves to route as part of normal console flow.
func (r *Router) set(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = route
}

// takeRedirect returns and forgets the last forced navigation.
func (r *Router) takeRedirect() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	route := r.redirected
	r.redirected = ""
	return route, route != ""
}
