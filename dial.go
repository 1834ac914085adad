package ch

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-faster/errors"

	"github.com/nativeclick/ch-native/internal/chx"
)

// buildTLSConfig translates SSLOptions into a *tls.Config, loading any
// configured PEM bundles/directories eagerly (spec.md §4.3/§6.2, detail
// recovered from the Rust prototype's ssl.rs).
func buildTLSConfig(o SSLOptions, dialHost string) (*tls.Config, error) {
	cfg := &tls.Config{
		InsecureSkipVerify: o.SkipVerification, //nolint:gosec // explicit opt-in, test-only per spec.
	}

	pool := x509.NewCertPool()
	loaded := false
	if o.UseSystemCerts {
		sys, err := x509.SystemCertPool()
		if err != nil {
			return nil, chx.Wrap(chx.KindConnection, err, "load system cert pool")
		}
		pool = sys
		loaded = true
	}
	for _, f := range o.CACertFiles {
		pem, err := os.ReadFile(f)
		if err != nil {
			return nil, chx.Wrap(chx.KindConnection, err, "read ca cert file")
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, chx.Newf(chx.KindConnection, "no certificates found in %q", f)
		}
		loaded = true
	}
	if o.CACertDirectory != "" {
		matches, err := filepath.Glob(filepath.Join(o.CACertDirectory, "*.pem"))
		if err != nil {
			return nil, chx.Wrap(chx.KindConnection, err, "glob ca cert directory")
		}
		for _, f := range matches {
			pem, err := os.ReadFile(f)
			if err != nil {
				return nil, chx.Wrap(chx.KindConnection, err, "read ca cert file")
			}
			if !pool.AppendCertsFromPEM(pem) {
				return nil, chx.Newf(chx.KindConnection, "no certificates found in %q", f)
			}
			loaded = true
		}
	}
	if loaded {
		cfg.RootCAs = pool
	}

	if o.ClientCertPath != "" {
		cert, err := tls.LoadX509KeyPair(o.ClientCertPath, o.ClientKeyPath)
		if err != nil {
			return nil, chx.Wrap(chx.KindConnection, err, "load client cert")
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	// SNI is on by default; server name defaults to the dial host.
	if o.ServerName != "" {
		cfg.ServerName = o.ServerName
	} else {
		cfg.ServerName = dialHost
	}
	return cfg, nil
}

// dialEndpoint opens (and optionally upgrades to TLS) one TCP connection to
// ep, applying connect timeout and keepalive settings (spec.md §4.3).
func dialEndpoint(ctx context.Context, ep Endpoint, opts ConnectionOptions, ssl *SSLOptions) (net.Conn, error) {
	dialer := &net.Dialer{
		Timeout:   opts.ConnectTimeout,
		KeepAlive: -1, // managed explicitly below when requested
	}
	addr := net.JoinHostPort(ep.Host, strconv.Itoa(int(ep.Port)))
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, chx.Wrap(chx.KindConnection, err, "dial "+addr)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(opts.TCPNoDelay)
		if opts.TCPKeepalive {
			_ = tc.SetKeepAlive(true)
			// Go 1.21's net.TCPConn exposes a single keepalive period, not
			// separate idle/interval/count knobs (those arrive with
			// SetKeepAliveConfig in Go 1.23), so Idle is what actually reaches
			// the socket; Interval and Count are recorded in Options but
			// unused, see DESIGN.md.
			_ = tc.SetKeepAlivePeriod(opts.TCPKeepaliveIdle)
		}
	}
	if ssl != nil && ssl.Enabled {
		tlsCfg, err := ssl.tlsConfig(ep.Host)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		tlsConn := tls.Client(conn, tlsCfg)
		hctx := ctx
		if opts.ConnectTimeout > 0 {
			var cancel context.CancelFunc
			hctx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
			defer cancel()
		}
		if err := tlsConn.HandshakeContext(hctx); err != nil {
			_ = conn.Close()
			return nil, chx.Wrap(chx.KindConnection, err, "tls handshake")
		}
		conn = tlsConn
	}
	return conn, nil
}

// dialWithFailover tries every endpoint in order, retrying each up to
// send_retries times with retry_timeout between attempts, returning the
// first successful connection (spec.md §4.7 Failover and retries).
func dialWithFailover(ctx context.Context, o Options) (net.Conn, error) {
	if len(o.Endpoints) == 0 {
		return nil, chx.New(chx.KindConnection, "no endpoints configured")
	}
	var lastErr error
	for _, ep := range o.Endpoints {
		for attempt := 0; attempt < o.SendRetries; attempt++ {
			conn, err := dialEndpoint(ctx, ep, o.ConnectionOptions, o.SSLOptions)
			if err == nil {
				return conn, nil
			}
			lastErr = errors.Wrap(err, ep.Host)
			if attempt+1 < o.SendRetries {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(o.RetryTimeout):
				}
			}
		}
	}
	return nil, chx.Wrap(chx.KindConnection, lastErr, "all endpoints exhausted")
}
