package providers

import (
	"net/http"

	"github.com/gorilla/mux"

	"pad/internal/structures"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	Use(mw func(http.Handler) http.Handler)
	GetRoutes() []structures.Route
	Handler() http.Handler
}

// RouterProvider registers routes on a gorilla mux so handlers can read
// path variables like {user_id}.
type RouterProvider struct {
	mux    *mux.Router
	routes []structures.Route
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	rp.mux.Handle(url, handler).Methods(method)
	rp.routes = append(rp.routes, structures.Route{
		Url:     url,
		Method:  method,
		Handler: handler,
	})
}

// Use attaches middleware that runs after route matching, so handlers like
// MetricsMiddleware can read the matched route from the request context.
func (rp *RouterProvider) Use(mw func(http.Handler) http.Handler) {
	rp.mux.Use(mux.MiddlewareFunc(mw))
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}

func (rp *RouterProvider) Handler() http.Handler {
	return rp.mux
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{mux: mux.NewRouter()}
}
