// Package clientip extracts the originating client IP from a request,
// preferring trusted proxy headers over the transport address. The gate uses
// it to attribute rejected requests in logs.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders in trust order. CDN headers carry the verified client address
// and beat the standard forwarding headers, which anyone can set.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// GetIP returns the client's IP address for r, falling back to RemoteAddr
// when no proxy header carries a valid address.
func GetIP(r *http.Request) string {
	for _, h := range proxyHeaders {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		// X-Forwarded-For may list several hops; the first valid entry is
		// the client.
		for part := range strings.SplitSeq(value, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes a candidate address, returning "" when it
// is not a literal IP.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
