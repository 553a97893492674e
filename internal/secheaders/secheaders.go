// Package secheaders sets the response headers the page is served with.
package secheaders

import (
	"net/http"
	"strings"

	"github.com/iburimskiy/purpletab/internal/config"
)

const (
	devScriptSrc  = "'unsafe-inline' 'unsafe-eval' 'wasm-unsafe-eval' blob:"
	devConnectSrc = "ws: wss: http: https: blob: data: http://localhost:* ws://localhost:* wss://localhost:* http://127.0.0.1:* ws://127.0.0.1:*"

	permissions = "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()"
)

// Header is a single response header.
type Header struct {
	Key   string
	Value string
}

// CSP builds the Content-Security-Policy value for env.
func CSP(env string) string {
	dev := env != config.EnvProduction
	with := func(base, extra string) string {
		if dev {
			return base + " " + extra
		}
		return base
	}
	return strings.Join([]string{
		"default-src 'self'",
		with("script-src 'self'", devScriptSrc),
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com",
		"img-src 'self' https: data: blob:",
		"font-src 'self' https://fonts.gstatic.com data:",
		with("connect-src 'self'", devConnectSrc),
		"worker-src 'self' blob:",
		"frame-src 'self'",
		"manifest-src 'self'",
		"frame-ancestors 'none'",
		"base-uri 'self'",
		"form-action 'self'",
	}, "; ")
}

// Headers returns every header for env. Development only reports CSP
// violations.
func Headers(env string) []Header {
	cspKey := "Content-Security-Policy"
	if env != config.EnvProduction {
		cspKey = "Content-Security-Policy-Report-Only"
	}
	return []Header{
		{cspKey, CSP(env)},
		{"Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload"},
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Referrer-Policy", "no-referrer"},
		{"Permissions-Policy", permissions},
	}
}

// Middleware applies Headers(env) to every response from next.
func Middleware(env string, next http.Handler) http.Handler {
	headers := Headers(env)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, hd := range headers {
			h.Set(hd.Key, hd.Value)
		}
		next.ServeHTTP(w, r)
	})
}
