package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// corsHeaders are the request headers the mobile and web clients send. apikey
// is the Supabase publishable key, X-Request-Id is picked up by chi's RequestID.
const corsHeaders = "Authorization,Content-Type,apikey,X-Request-Id"

const corsMethods = "GET,POST,PATCH,DELETE,OPTIONS"

type CORSOptions struct {
	// AllowedOrigins may contain "*" to allow any origin.
	AllowedOrigins []string
	MaxAge         time.Duration
}

func NewCORS(opts CORSOptions) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(opts.AllowedOrigins))
	anyOrigin := false
	for _, origin := range opts.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		switch origin {
		case "":
			continue
		case "*":
			anyOrigin = true
		default:
			allowed[origin] = struct{}{}
		}
	}
	maxAge := ""
	if opts.MaxAge > 0 {
		maxAge = strconv.Itoa(int(opts.MaxAge / time.Second))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				w.Header().Add("Vary", "Origin")
				if _, ok := allowed[origin]; ok || anyOrigin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Methods", corsMethods)
					w.Header().Set("Access-Control-Allow-Headers", corsHeaders)
					if maxAge != "" {
						w.Header().Set("Access-Control-Max-Age", maxAge)
					}
				}
			}

			// Only preflights stop here; a plain OPTIONS falls through to the router.
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
