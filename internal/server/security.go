// security.go - response header hardening
package server

import "net/http"

// securityHeadersMiddleware adds security headers to all responses. The CSP
// has to allow inline styles/scripts and the cdnjs stylesheet because the
// served pages use both.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")

		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline'; " +
			"style-src 'self' 'unsafe-inline' https://cdnjs.cloudflare.com; " +
			"font-src https://cdnjs.cloudflare.com; " +
			"img-src 'self' data:; " +
			"frame-ancestors 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
		w.Header().Set("Content-Security-Policy", csp)

		next.ServeHTTP(w, r)
	})
}
