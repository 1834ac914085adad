package chpool

import (
	"context"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ch "github.com/nativeclick/ch-native"
	"github.com/nativeclick/ch-native/proto"
)

const pingTimeout = 5 * time.Second

// PoolConn builds a small Pool against CH_NATIVE_TEST_ADDR (host:port,
// default localhost:9000), skipping the test when no server is reachable.
func PoolConn(t *testing.T) *Pool {
	t.Helper()

	addr := os.Getenv("CH_NATIVE_TEST_ADDR")
	if addr == "" {
		addr = "localhost:9000"
	}
	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.ParseUint(portStr, 10, 16)
	require.NoError(t, err)

	p, err := New(Options{
		MaxConns: 2,
		ClientOptions: ch.Options{
			Host: host,
			Port: uint16(port),
		},
	})
	require.NoError(t, err)
	t.Cleanup(p.Close)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	conn, err := p.Acquire(ctx)
	if err != nil {
		t.Skipf("no reachable clickhouse server at %s: %v", addr, err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Release()
		t.Skipf("no reachable clickhouse server at %s: %v", addr, err)
	}
	conn.Release()

	return p
}

// testDo runs a trivial round trip over conn, exercising the query send/
// receive path end to end.
func testDo(t *testing.T, conn *Conn) {
	t.Helper()

	var got int
	err := conn.Do(context.Background(), ch.Query{
		Body: "SELECT 1",
		OnResult: func(ctx context.Context, block proto.Block) error {
			got++
			return nil
		},
	})
	require.NoError(t, err)
	require.Greater(t, got, 0)
}
