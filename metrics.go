package ch

import "context"

// queryMetrics accumulates the OpenTelemetry span attributes for one Do
// call; a *queryMetrics is stashed in ctx under ctxQueryKey so every leg of
// Do's errgroup can contribute to it.
type queryMetrics struct {
	BlocksSent      int
	BlocksReceived  int
	RowsReceived    int
	ColumnsReceived int
	Rows            int
	Bytes           int
}

type ctxQueryKey struct{}

// metricsInc adds delta's nonzero fields to the *queryMetrics stashed in
// ctx, if OpenTelemetry instrumentation is active for this call.
func (c *Client) metricsInc(ctx context.Context, delta queryMetrics) {
	m, ok := ctx.Value(ctxQueryKey{}).(*queryMetrics)
	if !ok {
		return
	}
	m.BlocksSent += delta.BlocksSent
	m.BlocksReceived += delta.BlocksReceived
	m.RowsReceived += delta.RowsReceived
	m.ColumnsReceived += delta.ColumnsReceived
	m.Rows += delta.Rows
	m.Bytes += delta.Bytes
}
