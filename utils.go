package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/buattool/ipintel/providers"
)

const (
	rateLimitInterval = 100 * time.Millisecond
	rateLimitBurst    = 10
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeHTTPClient(timeout time.Duration) providers.HTTPClient {
	httpClient := &http.Client{
		Timeout: timeout,
	}

	return providers.NewHTTPClient(httpClient,
		"ipintel/"+version,
		rateLimitInterval,
		rateLimitBurst)
}
