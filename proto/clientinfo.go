package proto

import "go.opentelemetry.io/otel/trace"

// Interface identifies the client interface kind in ClientInfo.
type Interface byte

// InterfaceTCP is the only interface this client ever reports.
const InterfaceTCP Interface = 1

// ClientQuery identifies whether a query is the user's initial query or a
// secondary query spawned on behalf of a distributed query.
type ClientQuery byte

const (
	ClientQueryInitial  ClientQuery = 1
	ClientQuerySecondary ClientQuery = 2
)

// ClientInfo describes the querying client, sent as part of the Query
// packet once R_CLIENT_INFO negotiates (spec.md §4.6/§4.7).
type ClientInfo struct {
	ProtocolVersion int
	Major, Minor, Patch int
	Interface       Interface
	Query           ClientQuery

	InitialUser    string
	InitialQueryID string
	InitialAddress string

	OSUser         string
	ClientHostname string
	ClientName     string

	QuotaKey string
	Span     trace.SpanContext

	DistributedDepth int64
}

// EncodeAware writes ClientInfo, gating each optional trailer on the
// negotiated server revision.
func (c ClientInfo) EncodeAware(b *Buffer, revision int) {
	b.PutByte(byte(c.Query))
	if c.Query == 0 {
		return
	}
	b.PutString(c.InitialUser)
	b.PutString(c.InitialQueryID)
	b.PutString(c.InitialAddress)
	if FeatureQueryStartTime.In(revision) {
		b.PutInt64(0)
	}
	b.PutByte(byte(c.Interface))
	b.PutString(c.OSUser)
	b.PutString(c.ClientHostname)
	b.PutString(c.ClientName)
	b.PutUVarInt(uint64(c.Major))
	b.PutUVarInt(uint64(c.Minor))
	b.PutUVarInt(uint64(c.ProtocolVersion))
	if FeatureQuotaKeyInClientInfo.In(revision) {
		b.PutString(c.QuotaKey)
	}
	if FeatureDistributedDepth.In(revision) {
		b.PutUVarInt(uint64(c.DistributedDepth))
	}
	if FeatureVersionPatch.In(revision) {
		b.PutUVarInt(uint64(c.Patch))
	}
	if FeatureOpenTelemetry.In(revision) {
		if c.Span.IsValid() {
			b.PutByte(1)
			traceID := c.Span.TraceID()
			spanID := c.Span.SpanID()
			b.PutRaw(traceID[:])
			b.PutRaw(spanID[:])
			b.PutByte(byte(c.Span.TraceFlags()))
			b.PutString("")
		} else {
			b.PutByte(0)
		}
	}
	if FeatureParallelReplicas.In(revision) {
		b.PutUVarInt(0)
		b.PutUVarInt(0)
		b.PutUVarInt(0)
	}
}

// Setting is one query or session setting, optionally marked "important"
// (a server that doesn't recognize an important setting must reject the
// query rather than silently ignore it).
type Setting struct {
	Key       string
	Value     string
	Important bool
}

// Encode writes one setting entry, including the R_SETTINGS_WITH_FLAGS
// per-entry flag byte when negotiated.
func (s Setting) Encode(b *Buffer, revision int) {
	b.PutString(s.Key)
	if FeatureSettingsWithFlags.In(revision) {
		var flags byte
		if s.Important {
			flags |= 0x1
		}
		b.PutByte(flags)
	} else {
		b.PutBool(s.Important)
	}
	b.PutString(s.Value)
}

// Parameter is one `{name:Type}`-style query parameter value.
type Parameter struct {
	Key   string
	Value string
}
