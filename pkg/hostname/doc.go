// Package hostname validates and normalizes inbound HTTP host headers.
//
// Host headers are fully attacker-controlled at the network edge. This
// package is the sole gate between that input and anything that builds URLs,
// cache keys, or log lines from it, so it is strict by construction: input
// either normalizes cleanly or is rejected with a sentinel error that tells
// the caller whether it saw garbage or a probe.
//
// # Usage
//
//	host, err := hostname.Normalize(r.Host)
//	if err != nil {
//	    if hostname.IsSuspicious(err) {
//	        log.WarnContext(ctx, "suspicious host header rejected")
//	    }
//	    http.Error(w, "Bad Request", http.StatusBadRequest)
//	    return
//	}
//
// Normalization lowercases the value and strips the port, a trailing dot, and
// a leading "www." so that "WWW.Acme.Example.COM:443." and "acme.example.com"
// resolve to the same tenant.
package hostname
