package intel

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/buattool/ipintel/providers"
)

// Report is the per-IP aggregate handed over to presentation. An empty
// ReverseDNS or a nil Geo means the corresponding lookup yielded
// nothing.
type Report struct {
	IP         string
	ReverseDNS string
	Geo        *providers.GeoRecord
}

// Gatherer joins one geolocation query and one reverse DNS lookup into
// a Report. It never fails: provider and resolver errors are absorbed
// where they happen and the field stays absent.
type Gatherer struct {
	provider providers.Provider
	resolver *Resolver
}

func NewGatherer(provider providers.Provider, resolver *Resolver) *Gatherer {
	return &Gatherer{
		provider: provider,
		resolver: resolver,
	}
}

// Gather runs the geolocation query concurrently with the reverse DNS
// lookup and waits for both before returning. ip has to be a valid IP
// literal already.
func (g *Gatherer) Gather(ctx context.Context, ip string) Report {
	geoChan := make(chan *providers.GeoRecord, 1)

	go func() {
		record, err := g.provider.Lookup(ctx, ip)
		if err != nil {
			log.WithFields(log.Fields{
				"provider": g.provider.Name(),
				"ip":       ip,
				"error":    err,
			}).Debug("Geolocation lookup failed.")

			geoChan <- nil

			return
		}

		geoChan <- record
	}()

	reverse := g.resolver.ReverseDNS(ctx, ip)

	return Report{
		IP:         ip,
		ReverseDNS: reverse,
		Geo:        <-geoChan,
	}
}
