// Package clientip resolves the visitor's address for consent audit records
// and reduces it to a network prefix before it is logged.
//
// GetIP checks proxy headers in this order and returns the first valid
// address, falling back to the TCP peer:
//
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For (first valid entry of the chain)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Headers are trusted as sent, so deploy behind a proxy that overwrites them.
//
// Anonymize zeroes the host part: IPv4 keeps the /24 network
// ("192.168.1.42" becomes "192.168.1.0") and IPv6 keeps the first three
// groups ("2001:db8:85a3::8a2e:370:7334" becomes "2001:db8:85a3::").
// Input it cannot recognize is returned unchanged and nothing here returns
// an error.
//
// Middleware resolves the address once per request; FromRequest reads it
// back and consent.FromHTTP uses it:
//
//	r.Use(clientip.Middleware)
//	...
//	entry.IPAddress = clientip.Anonymize(clientip.FromRequest(r))
package clientip
