package proto

// Stage identifies how far the server should carry query execution before
// replying (spec.md §4.7); this client always asks for StageComplete.
type Stage byte

const (
	StageFetchColumns    Stage = 0
	StageWithMergeableState Stage = 1
	StageComplete        Stage = 2
)

// Query is the client → server Query packet body.
type Query struct {
	ID          string
	Body        string
	Secret      string
	Stage       Stage
	Compression Compression
	Settings    []Setting
	Parameters  []Parameter
	Info        ClientInfo
}

// EncodeAware writes the Query packet body, gating each trailing segment
// (client info, settings, interserver secret, parameters) on the negotiated
// server revision, in the exact order the server expects (spec.md §4.7
// Query packet).
func (q Query) EncodeAware(b *Buffer, revision int) {
	b.PutString(q.ID)
	if FeatureClientInfo.In(revision) {
		q.Info.EncodeAware(b, revision)
	}
	if FeatureSettingsWithFlags.In(revision) {
		for _, s := range q.Settings {
			s.Encode(b, revision)
		}
	}
	b.PutString("") // end of settings marker
	if FeatureInterserverSecret.In(revision) {
		b.PutString(q.Secret)
	}
	b.PutByte(byte(q.Stage))
	q.Compression.Encode(b)
	b.PutString(q.Body)
	if FeatureParameters.In(revision) {
		for _, p := range q.Parameters {
			b.PutString(p.Key)
			b.PutUVarInt(2) // custom type tag
			b.PutString(quoteParamValue(p.Value))
		}
		b.PutString("") // end of parameters marker
	}
}

// quoteParamValue renders a parameter value as a single-quoted SQL literal,
// escaping embedded backslashes and quotes, matching how the server expects
// a bound parameter's textual representation.
func quoteParamValue(v string) string {
	var b []byte
	b = append(b, '\'')
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\'', '\\':
			b = append(b, '\\', v[i])
		default:
			b = append(b, v[i])
		}
	}
	b = append(b, '\'')
	return string(b)
}

// ClientData is the per-Data-packet temp-table-name prefix, used for
// external data and for the insert/select data stream itself (empty name
// in the ordinary case).
type ClientData struct {
	TableName string
}

// EncodeAware writes the temp-table-name prefix, gated on R_TEMP_TABLES.
func (d ClientData) EncodeAware(b *Buffer, revision int) {
	if FeatureTempTables.In(revision) {
		b.PutString(d.TableName)
	}
}

// DecodeAware reads the temp-table-name prefix.
func (d *ClientData) DecodeAware(r *Reader, revision int) error {
	if !FeatureTempTables.In(revision) {
		return nil
	}
	v, err := r.Str()
	if err != nil {
		return err
	}
	d.TableName = v
	return nil
}
