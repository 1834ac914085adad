package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	for _, method := range []Method{MethodNone, MethodLZ4, MethodZSTD} {
		method := method
		t.Run(method.String(), func(t *testing.T) {
			payload := bytes.Repeat([]byte("clickhouse native protocol compression frame"), 200)

			var buf bytes.Buffer
			w := NewWriter(&buf, method)
			require.NoError(t, w.Compress(payload))
			require.NoError(t, w.Close())

			r := NewReader(&buf)
			got := make([]byte, len(payload))
			_, err := r.Read(got[:1])
			require.NoError(t, err)
			rest := got[1:]
			n := 0
			for n < len(rest) {
				m, err := r.Read(rest[n:])
				require.NoError(t, err)
				n += m
			}
			require.Equal(t, payload, got)
		})
	}
}

func TestReaderDetectsCorruption(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, MethodNone)
	require.NoError(t, w.Compress([]byte("hello")))

	corrupted := buf.Bytes()
	corrupted[0] ^= 0xFF

	r := NewReader(bytes.NewReader(corrupted))
	_, err := r.Read(make([]byte, 5))
	require.Error(t, err)

	var badData *CorruptedDataErr
	require.ErrorAs(t, err, &badData)
}
