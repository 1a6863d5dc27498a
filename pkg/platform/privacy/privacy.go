// Package privacy masks personal data before it reaches logs.
//
// Search terms on this service are usually names of people under sanctions
// screening, and client addresses identify the analyst making the request.
package privacy

import (
	"net"
	"net/netip"
	"net/url"
	"strings"
	"unicode/utf8"
)

// AnonymizeAddr reduces a client address to its network: IPv4 to the /24,
// IPv6 to the /48. It accepts either a bare IP or a RemoteAddr "host:port".
// Returns "unknown" for empty input and "invalid" for anything unparseable.
func AnonymizeAddr(addr string) string {
	if addr == "" || addr == "unknown" {
		return "unknown"
	}
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	ip, err := netip.ParseAddr(strings.Trim(host, "[]"))
	if err != nil {
		return "invalid"
	}
	ip = ip.Unmap().WithZone("")

	bits := 48
	if ip.Is4() {
		bits = 24
	}
	prefix, err := ip.Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.Addr().String()
}

// MaskTerm keeps the first character of a term and replaces the rest with
// asterisks, one per character.
func MaskTerm(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(term)
	return string(first) + strings.Repeat("*", utf8.RuneCountInString(term[size:]))
}

// RedactQuery encodes values with every listed key masked by MaskTerm.
func RedactQuery(values url.Values, keys ...string) string {
	if len(values) == 0 {
		return ""
	}
	redacted := make(url.Values, len(values))
	for k, vs := range values {
		redacted[k] = vs
	}
	for _, k := range keys {
		vs, ok := redacted[k]
		if !ok {
			continue
		}
		masked := make([]string, len(vs))
		for i, v := range vs {
			masked[i] = MaskTerm(v)
		}
		redacted[k] = masked
	}
	return redacted.Encode()
}
