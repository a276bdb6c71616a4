package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type clientIPKey struct{}

// Checked in order when proxy headers are trusted.
var proxyIPHeaders = []string{
	"Fly-Client-IP",
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// ClientIP resolves the caller address once and stores it on the request
// context. Proxy headers are only read when trustProxy is set.
func ClientIP(trustProxy bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := remoteIP(r, trustProxy)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientIPKey{}, ip)))
	})
}

// clientIPFrom returns the address stored by ClientIP, or the socket
// address when the middleware did not run.
func clientIPFrom(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok && ip != "" {
		return ip
	}
	return remoteIP(r, false)
}

func remoteIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, header := range proxyIPHeaders {
			if ip := normalizeIP(r.Header.Get(header)); ip != "" {
				return ip
			}
		}
	}
	if ip := normalizeIP(r.RemoteAddr); ip != "" {
		return ip
	}
	return "unknown"
}

// normalizeIP keeps the first entry of a forwarded list and strips any port.
func normalizeIP(raw string) string {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}
