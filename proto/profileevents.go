package proto

// ProfileEventType classifies a profile event row (spec.md §4.7's profile
// events stream uses a small fixed set of kinds).
type ProfileEventType byte

const (
	EventTypeIncrement ProfileEventType = 1
	EventTypeGauge     ProfileEventType = 2
)

// ProfileEvent is one decoded row of the ProfileEvents block.
type ProfileEvent struct {
	Host      string
	Time      uint32
	ThreadID  uint64
	Type      ProfileEventType
	Name      string
	Value     int64
}

// ProfileEvents decodes the ProfileEvents block's fixed schema:
// host_name String, current_time DateTime, thread_id UInt64,
// type Int8, name String, value Int64.
type ProfileEvents struct {
	host     *ColStr
	time     *ColDateTime
	thread   *ColUInt64
	typ      *ColInt8
	name     *ColStr
	value    *ColInt64
}

// Result returns the Results declaration this decoder expects the server's
// block to conform to.
func (p *ProfileEvents) Result() Result {
	p.host = NewColStr()
	p.time = NewColDateTime("")
	p.thread = NewColUInt64()
	p.typ = NewColInt8()
	p.name = NewColStr()
	p.value = NewColInt64()
	return Results{
		{Name: "host_name", Data: p.host},
		{Name: "current_time", Data: p.time},
		{Name: "thread_id", Data: p.thread},
		{Name: "type", Data: p.typ},
		{Name: "name", Data: p.name},
		{Name: "value", Data: p.value},
	}
}

// All returns every decoded row.
func (p *ProfileEvents) All() ([]ProfileEvent, error) {
	rows := p.host.Rows()
	out := make([]ProfileEvent, rows)
	for i := range out {
		out[i] = ProfileEvent{
			Host:     p.host.Row(i),
			Time:     p.time.Row(i),
			ThreadID: p.thread.Row(i),
			Type:     ProfileEventType(p.typ.Row(i)),
			Name:     p.name.Row(i),
			Value:    p.value.Row(i),
		}
	}
	return out, nil
}
