package clientip

import "strings"

// Anonymize truncates a textual IP address so it no longer identifies a single host.
//
// Addresses containing a colon are treated as IPv6: the first three groups
// are kept and "::" is appended ("2001:0db8:85a3:0000:..." -> "2001:0db8:85a3::").
// Otherwise the input is treated as dotted IPv4 and the last octet is set to
// zero ("192.168.1.100" -> "192.168.1.0"). Input that is not four dot-separated
// parts is returned unchanged, and an empty input yields an empty result.
//
// The transform is textual: it never parses or normalizes the
// address, so groups are kept exactly as written.
func Anonymize(ip string) string {
	if ip == "" {
		return ""
	}

	if strings.Contains(ip, ":") {
		groups := strings.Split(ip, ":")
		if len(groups) > 3 {
			groups = groups[:3]
		}
		return strings.Join(groups, ":") + "::"
	}

	octets := strings.Split(ip, ".")
	if len(octets) != 4 {
		return ip
	}
	octets[3] = "0"
	return strings.Join(octets, ".")
}
