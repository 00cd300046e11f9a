package auth

import (
	"net"
	"net/http"
	"strings"
)

// RequestContext carries the request-derived audit fields recorded alongside
// refresh tokens. It decouples the token services from any HTTP framework.
type RequestContext struct {
	IP         string
	DeviceInfo string
}

// RequestContextFrom builds a RequestContext from an incoming request. The
// client IP is the first entry of X-Forwarded-For when present, otherwise the
// direct connection address; the device info is the user agent.
func RequestContextFrom(r *http.Request) RequestContext {
	if r == nil {
		return RequestContext{}
	}
	return RequestContext{
		IP:         clientIP(r),
		DeviceInfo: r.UserAgent(),
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
