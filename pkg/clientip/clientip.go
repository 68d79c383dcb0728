package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Common proxy headers, in the order a typical edge sets them.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderDOConnectingIP = "DO-Connecting-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXRealIP        = "X-Real-IP"
)

// Resolver finds the client address of a request. Proxy headers are only
// consulted when listed as trusted; clients can forge them otherwise.
type Resolver struct {
	trusted []string
}

// NewResolver returns a Resolver that checks headers in order before falling
// back to RemoteAddr. With no headers only RemoteAddr is used.
func NewResolver(headers ...string) *Resolver {
	trusted := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			trusted = append(trusted, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{trusted: trusted}
}

// IP returns the normalised client IP, or "" when none can be parsed.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.trusted {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		if h == HeaderXForwardedFor {
			// Left-most valid entry is the original client.
			for part := range strings.SplitSeq(value, ",") {
				if ip := parseIP(part); ip != "" {
					return ip
				}
			}
			continue
		}
		if ip := parseIP(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
