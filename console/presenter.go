package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/buattool/ipintel/intel"
)

// Presenter renders gathered reports as themed key-value sections.
// Rendering never fails.
type Presenter struct {
	out   io.Writer
	theme Theme
}

func NewPresenter(out io.Writer, theme Theme) *Presenter {
	return &Presenter{
		out:   out,
		theme: theme,
	}
}

// Render prints target information first, then a geolocation section
// if the lookup produced anything. A line whose value is absent or
// blank is dropped entirely, label included.
func (p *Presenter) Render(report intel.Report) {
	p.section("Target Information")
	p.kv("IP Address", report.IP)
	p.kv("Reverse DNS", report.ReverseDNS)

	if geo := report.Geo; geo != nil {
		p.section("Geolocation")
		p.kv("Country", geo.Country)
		p.kv("Region", geo.Region)
		p.kv("City", geo.City)
		p.kv("ISP", geo.ISP)
		p.kv("Organization", geo.Org)
		p.kv("ASN", geo.ASN)
		p.kv("Coordinates", formatCoordinates(geo.Lat, geo.Lon))
	}

	fmt.Fprintln(p.out)
}

func (p *Presenter) section(title string) {
	fmt.Fprintln(p.out, p.theme.Primary.Sprint(title))
	fmt.Fprintln(p.out, p.theme.Primary.Sprint(strings.Repeat("-", len(title))))
}

func (p *Presenter) kv(key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}

	fmt.Fprintf(p.out, "%s %s\n", p.theme.Dim.Sprintf("%-18s", key), value)
}

func formatCoordinates(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'g', -1, 64) +
		", " +
		strconv.FormatFloat(lon, 'g', -1, 64)
}
