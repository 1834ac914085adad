package proto

// Log is one decoded row of the server Log block.
type Log struct {
	Time     uint32
	Host     string
	QueryID  string
	ThreadID uint64
	Priority int8
	Source   string
	Text     string
}

// Logs decodes the Log block's fixed schema: event_time DateTime,
// host_name String, query_id String, thread_id UInt64, priority Int8,
// source String, text String.
type Logs struct {
	time     *ColDateTime
	host     *ColStr
	queryID  *ColStr
	thread   *ColUInt64
	priority *ColInt8
	source   *ColStr
	text     *ColStr
}

// Result returns the Results declaration this decoder expects.
func (l *Logs) Result() Result {
	l.time = NewColDateTime("")
	l.host = NewColStr()
	l.queryID = NewColStr()
	l.thread = NewColUInt64()
	l.priority = NewColInt8()
	l.source = NewColStr()
	l.text = NewColStr()
	return Results{
		{Name: "event_time", Data: l.time},
		{Name: "host_name", Data: l.host},
		{Name: "query_id", Data: l.queryID},
		{Name: "thread_id", Data: l.thread},
		{Name: "priority", Data: l.priority},
		{Name: "source", Data: l.source},
		{Name: "text", Data: l.text},
	}
}

// All returns every decoded row.
func (l *Logs) All() []Log {
	rows := l.host.Rows()
	out := make([]Log, rows)
	for i := range out {
		out[i] = Log{
			Time:     l.time.Row(i),
			Host:     l.host.Row(i),
			QueryID:  l.queryID.Row(i),
			ThreadID: l.thread.Row(i),
			Priority: l.priority.Row(i),
			Source:   l.source.Row(i),
			Text:     l.text.Row(i),
		}
	}
	return out
}
