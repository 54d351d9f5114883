package intel

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResolverTestSuite struct {
	suite.Suite

	resolver *Resolver
}

func (suite *ResolverTestSuite) SetupTest() {
	suite.resolver = NewResolver()
}

func (suite *ResolverTestSuite) TestResolveDomainDedupAndSort() {
	suite.resolver.lookupIP = func(_ context.Context, _ string) ([]net.IPAddr, error) {
		return []net.IPAddr{
			{IP: net.ParseIP("1.1.1.1")},
			{IP: net.ParseIP("1.0.0.1")},
			{IP: net.ParseIP("1.1.1.1")},
		}, nil
	}

	ips := suite.resolver.ResolveDomain(context.Background(), "one.one.one.one")

	suite.Equal([]string{"1.0.0.1", "1.1.1.1"}, ips)
}

func (suite *ResolverTestSuite) TestResolveDomainMixedFamilies() {
	suite.resolver.lookupIP = func(_ context.Context, _ string) ([]net.IPAddr, error) {
		return []net.IPAddr{
			{IP: net.ParseIP("2606:4700:4700::1111")},
			{IP: net.ParseIP("1.1.1.1")},
		}, nil
	}

	ips := suite.resolver.ResolveDomain(context.Background(), "one.one.one.one")

	suite.Equal([]string{"1.1.1.1", "2606:4700:4700::1111"}, ips)
}

func (suite *ResolverTestSuite) TestResolveDomainFailure() {
	suite.resolver.lookupIP = func(_ context.Context, _ string) ([]net.IPAddr, error) {
		return nil, errors.New("no such host")
	}

	suite.Empty(suite.resolver.ResolveDomain(context.Background(), "nxdomain.invalid"))
}

func (suite *ResolverTestSuite) TestReverseDNSTrimsTrailingDot() {
	suite.resolver.lookupAddr = func(_ context.Context, _ string) ([]string, error) {
		return []string{"dns.google.", "dns9.quad9.net."}, nil
	}

	suite.Equal("dns.google", suite.resolver.ReverseDNS(context.Background(), "8.8.8.8"))
}

func (suite *ResolverTestSuite) TestReverseDNSFailure() {
	suite.resolver.lookupAddr = func(_ context.Context, _ string) ([]string, error) {
		return nil, errors.New("nxdomain")
	}

	suite.Empty(suite.resolver.ReverseDNS(context.Background(), "192.0.2.1"))
}

func (suite *ResolverTestSuite) TestReverseDNSNoNames() {
	suite.resolver.lookupAddr = func(_ context.Context, _ string) ([]string, error) {
		return []string{}, nil
	}

	suite.Empty(suite.resolver.ReverseDNS(context.Background(), "192.0.2.1"))
}

func TestResolver(t *testing.T) {
	suite.Run(t, &ResolverTestSuite{})
}
