package middleware

import (
	"net/http"
	"slices"
	"strings"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"https://cloudmlmsoftware.com",
	"https://www.cloudmlmsoftware.com",
}

const (
	allowMethods = "GET, POST, DELETE, OPTIONS"
	allowHeaders = "Origin, Content-Type, Accept, Authorization, X-Requested-With"
)

// CORS allows the marketing site and the admin dashboard to call the API
// from the browser. extraOrigins is appended to the built-in list.
func CORS(extraOrigins ...string) func(http.Handler) http.Handler {
	origins := append(slices.Clone(defaultOrigins), extraOrigins...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && slices.Contains(origins, strings.TrimSuffix(origin, "/")) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", allowMethods)
				h.Set("Access-Control-Allow-Headers", allowHeaders)
				h.Set("Access-Control-Max-Age", "86400")
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
