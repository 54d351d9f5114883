package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/buattool/ipintel/console"
	"github.com/buattool/ipintel/intel"
	"github.com/buattool/ipintel/providers"
)

var (
	app = kingpin.New(
		"ipintel",
		"Geolocation and reverse DNS intelligence for IPs and domains")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("IPINTEL_DEBUG").
		Bool()
	timeout = app.Flag("timeout", "Timeout for geolocation requests.").
		Envar("IPINTEL_TIMEOUT").
		Default("5s").
		Duration()
	noColor = app.Flag("no-color", "Disable colored output.").
		Envar("IPINTEL_NO_COLOR").
		Bool()
	target = app.Arg("target", "IP address or domain to investigate. Absent means interactive mode.").
		String()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	theme := console.NewTheme(*noColor)
	resolver := intel.NewResolver()
	provider := providers.NewIPAPI(makeHTTPClient(*timeout))

	sess := &session{
		gatherer: intel.NewGatherer(provider, resolver),
		resolver: resolver,
		renderer: console.NewPresenter(os.Stdout, theme),
		theme:    theme,
		out:      os.Stdout,
	}

	printBanner(os.Stdout, theme)

	if t := strings.TrimSpace(*target); t != "" {
		sess.RunOnce(ctx, t)
		return
	}

	sess.RunInteractive(ctx, os.Stdin)
}
