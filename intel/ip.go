package intel

import "net"

// IsIP reports whether s is a syntactically valid IPv4 or IPv6 literal.
// It never touches the network.
func IsIP(s string) bool {
	return net.ParseIP(s) != nil
}
