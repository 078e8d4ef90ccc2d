package transport

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestSessionTransport_SetsHeaders(t *testing.T) {
	var seen *http.Request
	rt := WithSessionHeaders(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{StatusCode: http.StatusOK}, nil
	}), "application/vnd.github.v3+json")

	req, err := http.NewRequest(http.MethodPost, "https://api.github.com/repos/o/r/issues", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	require.Equal(t, "application/vnd.github.v3+json", seen.Header.Get("Accept"))
	require.NotEmpty(t, seen.Header.Get("X-Request-ID"))

	// The caller's request must not be mutated
	require.Empty(t, req.Header.Get("Accept"))
	require.Empty(t, req.Header.Get("X-Request-ID"))
}

func TestSessionTransport_PreservesRequestID(t *testing.T) {
	var seen *http.Request
	rt := WithSessionHeaders(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{StatusCode: http.StatusOK}, nil
	}), "application/json")

	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "caller-supplied")

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	require.Equal(t, "caller-supplied", seen.Header.Get("X-Request-ID"))
}

func TestNewBaseTransport_NoProxies(t *testing.T) {
	tr, err := NewBaseTransport(nil)
	require.NoError(t, err)
	require.Nil(t, tr.Proxy)
}

func TestNewBaseTransport_PerSchemeRouting(t *testing.T) {
	tr, err := NewBaseTransport(map[string]string{
		"http":  "http://plain.proxy.example.com:3128",
		"https": "http://tls.proxy.example.com:3128",
	})
	require.NoError(t, err)
	require.NotNil(t, tr.Proxy)

	httpsReq := &http.Request{URL: &url.URL{Scheme: "https", Host: "api.github.com"}}
	proxyURL, err := tr.Proxy(httpsReq)
	require.NoError(t, err)
	require.Equal(t, "http://tls.proxy.example.com:3128", proxyURL.String())

	httpReq := &http.Request{URL: &url.URL{Scheme: "http", Host: "api.github.com"}}
	proxyURL, err = tr.Proxy(httpReq)
	require.NoError(t, err)
	require.Equal(t, "http://plain.proxy.example.com:3128", proxyURL.String())
}

func TestNewBaseTransport_RejectsBadEntries(t *testing.T) {
	_, err := NewBaseTransport(map[string]string{"socks5": "http://proxy.example.com"})
	require.Error(t, err)

	_, err = NewBaseTransport(map[string]string{"http": "not a url"})
	require.Error(t, err)

	_, err = NewBaseTransport(map[string]string{"https": "://missing-scheme"})
	require.Error(t, err)
}
