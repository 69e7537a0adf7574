package http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// errProtocolMismatch is returned by a dial whose negotiated ALPN protocol
// does not fit the transport that asked for it.
var errProtocolMismatch = errors.New("negotiated protocol mismatch")

// BrowserTransport is an http.RoundTripper whose TLS handshakes carry a
// Chrome ClientHello. Sites behind anti-bot proxies reject the default Go
// fingerprint. HTTPS requests try HTTP/2 first and fall back to HTTP/1.1;
// plain HTTP requests use a standard transport.
type BrowserTransport struct {
	h1 *http.Transport
	h2 *http2.Transport
}

// NewBrowserTransport creates a new BrowserTransport.
func NewBrowserTransport() *BrowserTransport {
	return &BrowserTransport{
		h1: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialBrowserTLS(ctx, network, addr, false)
			},
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			ResponseHeaderTimeout: dialTimeout,
		},
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialBrowserTLS(ctx, network, addr, true)
			},
		},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *BrowserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, h2err := t.h2.RoundTrip(req)
	if h2err == nil {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		return nil, h2err
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}

	resp, err := t.h1.RoundTrip(retry)
	if errors.Is(err, errProtocolMismatch) {
		// The server speaks h2, so the HTTP/2 failure is the real one.
		return nil, h2err
	}
	return resp, err
}

// CloseIdleConnections closes idle connections of both transports.
func (t *BrowserTransport) CloseIdleConnections() {
	t.h1.CloseIdleConnections()
	t.h2.CloseIdleConnections()
}

// dialBrowserTLS dials addr and performs a handshake mimicking Chrome 120,
// which offers both h2 and http/1.1. The connection is rejected if the
// server's choice does not match wantH2.
func dialBrowserTLS(ctx context.Context, network, addr string, wantH2 bool) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	if isH2 := tlsConn.ConnectionState().NegotiatedProtocol == http2.NextProtoTLS; isH2 != wantH2 {
		tlsConn.Close()
		return nil, errProtocolMismatch
	}

	return tlsConn, nil
}
