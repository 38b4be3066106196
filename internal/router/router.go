package router

import (
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"sync"
)

// Router owns the current location. Listeners render the parsed Page; every
// in-app link goes through Navigate so the scroll-to-top is never skipped.
type Router struct {
	viewport port.Viewport

	mu        sync.Mutex
	location  string
	page      Page
	listeners []func(Page)
}

func New(viewport port.Viewport) *Router {
	return &Router{
		viewport: viewport,
		location: Home(),
		page:     homePage(),
	}
}

func (r *Router) Subscribe(fn func(Page)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, fn)
}

// Start delivers the current location to listeners once, like the initial
// parse performed when the application mounts.
func (r *Router) Start(location string) {
	r.mu.Lock()
	r.location = location
	r.page = ParseLocation(location)
	page, listeners := r.page, r.snapshotListeners()
	r.mu.Unlock()

	deliver(listeners, page)
}

// LocationChanged handles a location change that did not originate from
// Navigate (back button, manual edit). It re-parses and renders but does not
// scroll.
func (r *Router) LocationChanged(location string) {
	r.mu.Lock()
	if location == r.location {
		r.mu.Unlock()
		return
	}
	r.location = location
	r.page = ParseLocation(location)
	page, listeners := r.page, r.snapshotListeners()
	r.mu.Unlock()

	deliver(listeners, page)
}

// Navigate sets the location to fragment, renders the parsed page and then
// requests a scroll to the top. Navigating to the current location only
// scrolls, as no change is observed.
func (r *Router) Navigate(fragment string) {
	r.LocationChanged(fragment)

	if r.viewport != nil {
		r.viewport.ScrollToTop()
	}
}

func (r *Router) Current() Page {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.page
}

func (r *Router) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.location
}

func (r *Router) snapshotListeners() []func(Page) {
	listeners := make([]func(Page), len(r.listeners))
	copy(listeners, r.listeners)
	return listeners
}

func deliver(listeners []func(Page), page Page) {
	for _, fn := range listeners {
		fn(page)
	}
}
