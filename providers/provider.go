package providers

import "context"

// GeoRecord represents geolocation and network ownership data for a
// single IP address. A record is populated as a whole from one
// successful provider response; a partially filled record is never
// produced.
type GeoRecord struct {
	Country string
	Region  string
	City    string
	ISP     string
	Org     string
	ASN     string
	Lat     float64
	Lon     float64
}

// Provider is the interface which defines methods each source of
// geolocation intelligence has to provide. Consider it as a public
// interface.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, ip string) (*GeoRecord, error)
}
