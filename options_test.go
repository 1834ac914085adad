package ch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptionsWithDefaults(t *testing.T) {
	t.Run("EndpointsFallBackToHostPort", func(t *testing.T) {
		o := Options{Host: "ch1", Port: 9000}.withDefaults()
		require.Equal(t, []Endpoint{{Host: "ch1", Port: 9000}}, o.Endpoints)
	})
	t.Run("ExplicitEndpointsWin", func(t *testing.T) {
		want := []Endpoint{{Host: "a", Port: 1}, {Host: "b", Port: 2}}
		o := Options{Host: "ch1", Port: 9000, Endpoints: want}.withDefaults()
		require.Equal(t, want, o.Endpoints)
	})
	t.Run("Defaults", func(t *testing.T) {
		o := Options{}.withDefaults()
		require.Equal(t, 65535, o.MaxCompressionChunkSize)
		require.Equal(t, 1, o.SendRetries)
		require.Equal(t, 5*time.Second, o.RetryTimeout)
		require.Equal(t, "ch-native", o.ClientInfo.Version.Name)
		require.NotNil(t, o.Logger)
	})
	t.Run("ExplicitValuesSurvive", func(t *testing.T) {
		o := Options{
			MaxCompressionChunkSize: 1024,
			SendRetries:             5,
			RetryTimeout:            time.Minute,
		}.withDefaults()
		require.Equal(t, 1024, o.MaxCompressionChunkSize)
		require.Equal(t, 5, o.SendRetries)
		require.Equal(t, time.Minute, o.RetryTimeout)
	})
}

func TestConnectionOptionsWithDefaults(t *testing.T) {
	o := ConnectionOptions{}.withDefaults()
	require.Equal(t, 5*time.Second, o.ConnectTimeout)
	require.Equal(t, 60*time.Second, o.TCPKeepaliveIdle)
	require.Equal(t, 5*time.Second, o.TCPKeepaliveInterval)
	require.Equal(t, 3, o.TCPKeepaliveCount)
	require.True(t, o.TCPNoDelay, "Nagle's algorithm should always be disabled")

	explicit := ConnectionOptions{TCPNoDelay: false}.withDefaults()
	require.True(t, explicit.TCPNoDelay, "TCPNoDelay cannot be turned off")
}

func TestVersionWithDefaults(t *testing.T) {
	require.Equal(t, "ch-native", Version{}.withDefaults().Name)
	require.Equal(t, "custom", Version{Name: "custom"}.withDefaults().Name)
}
