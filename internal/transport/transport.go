package transport

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// SessionTransport applies the persistent concerns of an API session to every
// outgoing request: a fixed Accept header and a correlation ID. It performs no
// retries.
type SessionTransport struct {
	base   http.RoundTripper
	accept string
}

func WithSessionHeaders(base http.RoundTripper, accept string) *SessionTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &SessionTransport{base: base, accept: accept}
}

func (t *SessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	r := req.Clone(req.Context())
	if t.accept != "" {
		r.Header.Set("Accept", t.accept)
	}
	if r.Header.Get("X-Request-ID") == "" {
		r.Header.Set("X-Request-ID", uuid.New().String())
	}
	return t.base.RoundTrip(r)
}

// NewBaseTransport returns an HTTP transport that routes requests through the
// given per-scheme proxies, keyed by request scheme ("http" or "https").
// Schemes without an entry connect directly. An unknown scheme key or an
// unparseable proxy URL is a construction error.
func NewBaseTransport(proxies map[string]string) (*http.Transport, error) {
	if len(proxies) == 0 {
		return &http.Transport{}, nil
	}

	byScheme := make(map[string]*url.URL, len(proxies))
	for scheme, raw := range proxies {
		if scheme != "http" && scheme != "https" {
			return nil, fmt.Errorf("unsupported proxy scheme %q", scheme)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid proxy URL %q for scheme %q", raw, scheme)
		}
		byScheme[scheme] = u
	}

	return &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			return byScheme[req.URL.Scheme], nil
		},
	}, nil
}
