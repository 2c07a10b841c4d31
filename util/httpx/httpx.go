package httpx

import (
	"net"
	"net/http"
	"time"
)

// New builds a pooled client for talking to one upstream API host; the only
// outbound traffic here is the Google Books volume lookups, so the pool is
// kept small and connections are reused aggressively.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        32,
			MaxIdleConnsPerHost: 8,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
