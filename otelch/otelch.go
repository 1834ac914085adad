// Package otelch holds the OpenTelemetry attribute-key helpers used to
// annotate a query's tracing span.
package otelch

import "go.opentelemetry.io/otel/attribute"

const namespace = "clickhouse"

// ProtocolVersion reports the negotiated native-protocol revision.
func ProtocolVersion(v int) attribute.KeyValue {
	return attribute.Int(namespace+".protocol_version", v)
}

// QueryID reports the query's id.
func QueryID(v string) attribute.KeyValue {
	return attribute.String(namespace+".query_id", v)
}

// QuotaKey reports the query's quota key, if any.
func QuotaKey(v string) attribute.KeyValue {
	return attribute.String(namespace+".quota_key", v)
}

// BlocksSent reports the number of data blocks sent to the server.
func BlocksSent(v int) attribute.KeyValue {
	return attribute.Int(namespace+".blocks_sent", v)
}

// BlocksReceived reports the number of data blocks received from the server.
func BlocksReceived(v int) attribute.KeyValue {
	return attribute.Int(namespace+".blocks_received", v)
}

// RowsReceived reports the total rows received across all blocks.
func RowsReceived(v int) attribute.KeyValue {
	return attribute.Int(namespace+".rows_received", v)
}

// ColumnsReceived reports the total columns received across all blocks.
func ColumnsReceived(v int) attribute.KeyValue {
	return attribute.Int(namespace+".columns_received", v)
}

// Rows reports the server-reported progress row count.
func Rows(v int) attribute.KeyValue {
	return attribute.Int(namespace+".rows", v)
}

// Bytes reports the server-reported progress byte count.
func Bytes(v int) attribute.KeyValue {
	return attribute.Int(namespace+".bytes", v)
}

// ErrorCode reports a server exception's numeric code.
func ErrorCode(v int) attribute.KeyValue {
	return attribute.Int(namespace+".error_code", v)
}

// ErrorName reports a server exception's symbolic name.
func ErrorName(v string) attribute.KeyValue {
	return attribute.String(namespace+".error_name", v)
}
