// Package pages declares the page views of the front end and the URL paths
// they are served under.
package pages

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Page is one view of the front end.
type Page struct {
	Name    string
	Pattern string
	Navbar  bool // shows the user navigation bar
}

// Table is the static routing table. Patterns use chi syntax.
var Table = []Page{
	{Name: "sign-up", Pattern: "/sign-up"},
	{Name: "login", Pattern: "/login"},
	{Name: "user", Pattern: "/user/{username}", Navbar: true},
	{Name: "email", Pattern: "/email/{username}", Navbar: true},
	{Name: "password", Pattern: "/password/{username}", Navbar: true},
	{Name: "confirm", Pattern: "/confirm/{token}"},
	{Name: "reset-password", Pattern: "/reset-password/{token}"},
	{Name: "error", Pattern: "/error/{code:[0-9]+}"},
}

// Home is where "/" redirects to.
const Home = "/login"

// View is what a page route answers: the view to render and its parameters.
type View struct {
	Name   string            `json:"view"`
	Navbar bool              `json:"navbar"`
	Params map[string]string `json:"params"`
}

// Mount registers every page of Table on r.
func Mount(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, Home, http.StatusFound)
	})
	for _, p := range Table {
		r.Get(p.Pattern, p.serve)
	}
}

func (p Page) serve(w http.ResponseWriter, r *http.Request) {
	v := View{Name: p.Name, Navbar: p.Navbar, Params: map[string]string{}}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" {
				continue
			}
			v.Params[key] = rctx.URLParams.Values[i]
		}
	}

	status := http.StatusOK
	if p.Name == "error" {
		status = errorStatus(v.Params["code"])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorStatus is the status an error page is served with: the code in its
// URL when that is a valid HTTP error status, 404 otherwise.
func errorStatus(code string) int {
	n, err := strconv.Atoi(code)
	if err != nil || n < 400 || n > 599 {
		return http.StatusNotFound
	}
	return n
}
