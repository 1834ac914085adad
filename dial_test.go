package ch

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildTLSConfig(t *testing.T) {
	t.Run("ServerNameDefaultsToHost", func(t *testing.T) {
		cfg, err := buildTLSConfig(SSLOptions{}, "clickhouse.example.com")
		require.NoError(t, err)
		require.Equal(t, "clickhouse.example.com", cfg.ServerName)
		require.False(t, cfg.InsecureSkipVerify)
	})
	t.Run("ServerNameOverride", func(t *testing.T) {
		cfg, err := buildTLSConfig(SSLOptions{ServerName: "override"}, "clickhouse.example.com")
		require.NoError(t, err)
		require.Equal(t, "override", cfg.ServerName)
	})
	t.Run("SkipVerification", func(t *testing.T) {
		cfg, err := buildTLSConfig(SSLOptions{SkipVerification: true}, "host")
		require.NoError(t, err)
		require.True(t, cfg.InsecureSkipVerify)
	})
	t.Run("MissingCAFile", func(t *testing.T) {
		_, err := buildTLSConfig(SSLOptions{CACertFiles: []string{"/nonexistent/ca.pem"}}, "host")
		require.Error(t, err)
	})
}

func TestDialWithFailoverExhaustsEndpoints(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().(*net.TCPAddr)
	require.NoError(t, l.Close()) // nothing listens here anymore

	o := Options{
		Endpoints: []Endpoint{
			{Host: addr.IP.String(), Port: uint16(addr.Port)},
		},
		SendRetries:  2,
		RetryTimeout: time.Millisecond,
		ConnectionOptions: ConnectionOptions{
			ConnectTimeout: 200 * time.Millisecond,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = dialWithFailover(ctx, o)
	require.Error(t, err)
}

func TestDialWithFailoverNoEndpoints(t *testing.T) {
	_, err := dialWithFailover(context.Background(), Options{})
	require.Error(t, err)
}
