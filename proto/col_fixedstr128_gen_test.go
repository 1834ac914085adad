package proto

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nativeclick/ch-native/internal/gold"
)

func newByte128(v int) []byte {
	b := make([]byte, 128)
	b[0] = byte(v)
	return b
}

func TestColFixedStr_128_DecodeColumn(t *testing.T) {
	t.Parallel()
	const rows = 50
	data := NewColFixedStr(128)
	for i := 0; i < rows; i++ {
		v := newByte128(i)
		data.Append(v)
		require.Equal(t, v, data.Row(i))
	}

	var buf Buffer
	data.EncodeColumn(&buf)
	t.Run("Golden", func(t *testing.T) {
		t.Parallel()
		gold.Bytes(t, buf.Buf, "col_fixedstr128")
	})
	t.Run("Ok", func(t *testing.T) {
		br := bytes.NewReader(buf.Buf)
		r := NewReader(br)

		dec := NewColFixedStr(128)
		require.NoError(t, dec.DecodeColumn(r, rows))
		require.Equal(t, data, dec)
		require.Equal(t, rows, dec.Rows())
		dec.Reset()
		require.Equal(t, 0, dec.Rows())

		require.Equal(t, ColumnTypeFixedString.With("128"), dec.Type())
	})
	t.Run("ZeroRows", func(t *testing.T) {
		r := NewReader(bytes.NewReader(nil))

		dec := NewColFixedStr(128)
		require.NoError(t, dec.DecodeColumn(r, 0))
	})
	t.Run("EOF", func(t *testing.T) {
		r := NewReader(bytes.NewReader(nil))

		dec := NewColFixedStr(128)
		require.ErrorIs(t, dec.DecodeColumn(r, rows), io.EOF)
	})
	t.Run("NoShortRead", func(t *testing.T) {
		dec := NewColFixedStr(128)
		requireNoShortRead(t, buf.Buf, colAware(dec, rows))
	})
	t.Run("ZeroRowsEncode", func(t *testing.T) {
		v := NewColFixedStr(128)
		v.EncodeColumn(new(Buffer)) // should be a no-op on an empty column
	})
	t.Run("WriteColumn", checkWriteColumn(data))
}

func BenchmarkColFixedStr_128_DecodeColumn(b *testing.B) {
	const rows = 1_000
	data := NewColFixedStr(128)
	for i := 0; i < rows; i++ {
		data.Append(newByte128(i))
	}

	var buf Buffer
	data.EncodeColumn(&buf)

	br := bytes.NewReader(buf.Buf)
	r := NewReader(br)

	dec := NewColFixedStr(128)
	if err := dec.DecodeColumn(r, rows); err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(buf.Buf)))
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		br.Reset(buf.Buf)
		r.raw.Reset(br)
		dec.Reset()

		if err := dec.DecodeColumn(r, rows); err != nil {
			b.Fatal(err)
		}
	}
}
