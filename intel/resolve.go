package intel

import (
	"context"
	"net"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Resolver wraps the system resolver for forward and reverse lookups.
// Failures of any kind collapse to empty results; callers never get an
// error out of it.
type Resolver struct {
	lookupIP   func(ctx context.Context, host string) ([]net.IPAddr, error)
	lookupAddr func(ctx context.Context, addr string) ([]string, error)
}

func NewResolver() *Resolver {
	return &Resolver{
		lookupIP:   net.DefaultResolver.LookupIPAddr,
		lookupAddr: net.DefaultResolver.LookupAddr,
	}
}

// ResolveDomain expands host into the set of its A/AAAA addresses,
// deduplicated and sorted lexicographically on the string form. An
// empty slice means resolution failed, whatever the reason was.
func (r *Resolver) ResolveDomain(ctx context.Context, host string) []string {
	addrs, err := r.lookupIP(ctx, host)
	if err != nil {
		log.WithFields(log.Fields{
			"host":  host,
			"error": err,
		}).Debug("Cannot resolve domain.")

		return nil
	}

	seen := make(map[string]struct{}, len(addrs))
	ips := make([]string, 0, len(addrs))

	for _, addr := range addrs {
		ip := addr.IP.String()

		if _, ok := seen[ip]; ok {
			continue
		}

		seen[ip] = struct{}{}
		ips = append(ips, ip)
	}

	sort.Strings(ips)

	return ips
}

// ReverseDNS maps an IP literal back to a hostname with a PTR lookup.
// An empty string means no name could be found.
func (r *Resolver) ReverseDNS(ctx context.Context, ip string) string {
	names, err := r.lookupAddr(ctx, ip)
	if err != nil || len(names) == 0 {
		log.WithFields(log.Fields{
			"ip":    ip,
			"error": err,
		}).Debug("No PTR record.")

		return ""
	}

	return strings.TrimSuffix(names[0], ".")
}
