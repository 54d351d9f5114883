package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/juju/errors"
)

// Identifier for ip-api.com.
const NameIPAPI = "ip-api"

type ipapiResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Country    string  `json:"country"`
	RegionName string  `json:"regionName"`
	City       string  `json:"city"`
	ISP        string  `json:"isp"`
	Org        string  `json:"org"`
	AS         string  `json:"as"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

type ipapiProvider struct {
	client HTTPClient
}

func (i ipapiProvider) Name() string {
	return NameIPAPI
}

func (i ipapiProvider) Lookup(ctx context.Context, ip string) (*GeoRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.buildURL(ip), nil)
	if err != nil {
		return nil, errors.Annotate(err, "cannot build a request")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, errors.Annotate(err, "cannot send a request")
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	jsonResponse := ipapiResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return nil, errors.Annotate(err, "cannot parse a response")
	}

	if jsonResponse.Status != "success" {
		return nil, fmt.Errorf("failed response: status=%s, message=%s",
			jsonResponse.Status,
			jsonResponse.Message)
	}

	return &GeoRecord{
		Country: jsonResponse.Country,
		Region:  jsonResponse.RegionName,
		City:    jsonResponse.City,
		ISP:     jsonResponse.ISP,
		Org:     jsonResponse.Org,
		ASN:     jsonResponse.AS,
		Lat:     jsonResponse.Lat,
		Lon:     jsonResponse.Lon,
	}, nil
}

func (i ipapiProvider) buildURL(ip string) string {
	u := url.URL{
		Scheme: "http",
		Host:   "ip-api.com",
		Path:   "/json/" + ip,
	}

	return u.String()
}

// NewIPAPI builds a provider backed by the free ip-api.com JSON
// endpoint. No auth token is required.
func NewIPAPI(client HTTPClient) Provider {
	return ipapiProvider{
		client: client,
	}
}
