// Package clientip resolves the client IP address of HTTP requests.
//
// Proxy headers such as CF-Connecting-IP or X-Forwarded-For are honoured only
// when passed to NewResolver, so deployments without a proxy cannot be fooled
// by forged headers. Middleware stores the result in the request context,
// where rate limiting and LoggerExtractor pick it up.
//
//	res := clientip.NewResolver(clientip.HeaderXForwardedFor)
//	r.Use(clientip.Middleware(res))
package clientip
