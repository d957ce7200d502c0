package httpclient

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/publicsuffix"
)

const dialTimeout = 10 * time.Second

// newTransport builds the round tripper for cfg: cleartext HTTP/2 when H2C is
// set, otherwise a cloned default transport carrying the TLS settings.
func newTransport(cfg Config) (http.RoundTripper, error) {
	if cfg.H2C {
		return &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return (&net.Dialer{Timeout: dialTimeout}).DialContext(ctx, network, addr)
			},
		}, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}
	return transport, nil
}

// newCookieJar returns a jar scoped by the public suffix list, or nil when
// cookies are disabled.
func newCookieJar(cfg Config) (http.CookieJar, error) {
	if !cfg.Cookies {
		return nil, nil
	}
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}
