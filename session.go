package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/buattool/ipintel/console"
	"github.com/buattool/ipintel/intel"
)

const resolveFailureNotice = "Could not resolve domain."

type gatherer interface {
	Gather(ctx context.Context, ip string) intel.Report
}

type domainResolver interface {
	ResolveDomain(ctx context.Context, host string) []string
}

type renderer interface {
	Render(report intel.Report)
}

// session drives one-shot and interactive runs over the same
// IP-vs-domain branching.
type session struct {
	gatherer gatherer
	resolver domainResolver
	renderer renderer
	theme    console.Theme
	out      io.Writer
}

var quitWords = map[string]struct{}{
	"q":    {},
	"quit": {},
	"exit": {},
}

// RunOnce investigates a single externally supplied target.
func (s *session) RunOnce(ctx context.Context, target string) {
	s.investigate(ctx, target)
}

// RunInteractive reads targets from in until a quit keyword or
// end-of-input. Blank lines are skipped silently; a failed domain
// resolution keeps the loop going.
func (s *session) RunInteractive(ctx context.Context, in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		s.prompt()

		if !scanner.Scan() {
			break
		}

		target := strings.TrimSpace(scanner.Text())
		if target == "" {
			continue
		}

		if _, ok := quitWords[strings.ToLower(target)]; ok {
			break
		}

		s.investigate(ctx, target)
	}

	fmt.Fprintln(s.out, s.theme.Dim.Sprint("bye."))
}

func (s *session) prompt() {
	fmt.Fprintf(s.out, "%s%s: ",
		s.theme.Primary.Sprint("Target"),
		s.theme.Dim.Sprint(" (q to quit)"))
}

func (s *session) investigate(ctx context.Context, target string) {
	if intel.IsIP(target) {
		s.renderer.Render(s.gatherer.Gather(ctx, target))
		return
	}

	ips := s.resolver.ResolveDomain(ctx, target)
	if len(ips) == 0 {
		fmt.Fprintln(s.out, resolveFailureNotice)
		return
	}

	for _, ip := range ips {
		s.renderer.Render(s.gatherer.Gather(ctx, ip))
	}
}
