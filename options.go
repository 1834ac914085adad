package ch

import (
	"crypto/tls"
	"time"

	"go.uber.org/zap"
)

// CompressionMethod selects the wire compression algorithm, or none at all.
type CompressionMethod int

const (
	CompressionNone CompressionMethod = iota
	CompressionLZ4
	CompressionZSTD
)

// Endpoint is one failover candidate in Options.Endpoints.
type Endpoint struct {
	Host string
	Port uint16
}

// ConnectionOptions tunes the raw TCP transport (spec.md §6.2).
type ConnectionOptions struct {
	ConnectTimeout       time.Duration
	RecvTimeout          time.Duration
	SendTimeout          time.Duration
	TCPKeepalive         bool
	TCPKeepaliveIdle     time.Duration
	TCPKeepaliveInterval time.Duration
	TCPKeepaliveCount    int
	TCPNoDelay           bool
}

func (o ConnectionOptions) withDefaults() ConnectionOptions {
	if o.ConnectTimeout == 0 {
		o.ConnectTimeout = 5 * time.Second
	}
	if o.TCPKeepaliveIdle == 0 {
		o.TCPKeepaliveIdle = 60 * time.Second
	}
	if o.TCPKeepaliveInterval == 0 {
		o.TCPKeepaliveInterval = 5 * time.Second
	}
	if o.TCPKeepaliveCount == 0 {
		o.TCPKeepaliveCount = 3
	}
	// Always on: Nagle's algorithm only hurts a request/response protocol
	// this latency-sensitive.
	o.TCPNoDelay = true
	return o
}

// SSLOptions configures the optional TLS upgrade of the transport.
type SSLOptions struct {
	Enabled bool

	CACertFiles     []string
	CACertDirectory string
	UseSystemCerts  bool

	ClientCertPath string
	ClientKeyPath  string

	SkipVerification bool
	ServerName       string
}

// tlsConfig builds a *tls.Config from o, loading files eagerly so dial-time
// errors surface as Connection errors rather than deferred TLS failures.
func (o SSLOptions) tlsConfig(host string) (*tls.Config, error) {
	cfg, err := buildTLSConfig(o, host)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClientInfoOptions seeds the Query packet's client-identity segment
// (spec.md §6.2); Version.Name doubles as ClientInfo's client_name, and
// Version is also echoed in the Hello handshake.
type ClientInfoOptions struct {
	InitialUser    string
	InitialQueryID string
	QuotaKey       string
	OSUser         string
	ClientHostname string
	Version        Version
}

// Version identifies this client build in the Hello handshake and in
// ClientInfo.
type Version struct {
	Name  string
	Major int
	Minor int
	Patch int
}

func (v Version) withDefaults() Version {
	if v.Name == "" {
		v.Name = "ch-native"
	}
	return v
}

// Options configures Dial.
type Options struct {
	Host      string
	Port      uint16
	Endpoints []Endpoint

	Database string
	User     string
	Password string

	Compression             CompressionMethod
	MaxCompressionChunkSize int

	SendRetries  int
	RetryTimeout time.Duration

	PingBeforeQuery  bool
	RethrowException bool

	ClientInfo ClientInfoOptions

	ConnectionOptions ConnectionOptions
	SSLOptions        *SSLOptions

	Settings []Setting

	Logger *zap.Logger

	// OpenTelemetryEnabled turns on per-query tracing spans in Do.
	OpenTelemetryEnabled bool
}

// Setting is a query-scoped or session-scoped server setting (spec.md §6.1).
type Setting struct {
	Key       string
	Value     string
	Important bool
}

func (o Options) withDefaults() Options {
	if len(o.Endpoints) == 0 {
		o.Endpoints = []Endpoint{{Host: o.Host, Port: o.Port}}
	}
	if o.MaxCompressionChunkSize == 0 {
		o.MaxCompressionChunkSize = 65535
	}
	if o.SendRetries == 0 {
		o.SendRetries = 1
	}
	if o.RetryTimeout == 0 {
		o.RetryTimeout = 5 * time.Second
	}
	o.ConnectionOptions = o.ConnectionOptions.withDefaults()
	o.ClientInfo.Version = o.ClientInfo.Version.withDefaults()
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
