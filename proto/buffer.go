package proto

import (
	"encoding/binary"
	"math"
)

// Buffer implements low level building blocks for binary encoding that
// operate on an in-memory byte slice instead of a socket.
//
// Zero value is a valid empty buffer.
type Buffer struct {
	Buf []byte
}

// Reset resets buffer length to zero, retaining underlying storage capacity.
// Reusing a Buffer across blocks via Reset is part of the hot path.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// PutByte writes single byte to buffer.
func (b *Buffer) PutByte(v byte) {
	b.Buf = append(b.Buf, v)
}

// PutBool writes single boolean byte to buffer.
func (b *Buffer) PutBool(v bool) {
	if v {
		b.PutByte(1)
	} else {
		b.PutByte(0)
	}
}

// PutUVarInt encodes unsigned integer as uvarint (LEB128-like, 7 bits per
// byte, low bits first, high bit is continuation bit).
func (b *Buffer) PutUVarInt(v uint64) {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], v)
	b.Buf = append(b.Buf, scratch[:n]...)
}

// PutInt encodes signed int as unsigned varint, matching native protocol
// convention (no zig-zag encoding is used on the wire).
func (b *Buffer) PutInt(v int) {
	b.PutUVarInt(uint64(v))
}

// PutUInt8 writes single byte.
func (b *Buffer) PutUInt8(v uint8) {
	b.PutByte(v)
}

// PutInt8 writes single signed byte.
func (b *Buffer) PutInt8(v int8) {
	b.PutByte(byte(v))
}

// PutUInt16 writes uint16 little endian.
func (b *Buffer) PutUInt16(v uint16) {
	b.Buf = binary.LittleEndian.AppendUint16(b.Buf, v)
}

// PutInt16 writes int16 little endian.
func (b *Buffer) PutInt16(v int16) {
	b.PutUInt16(uint16(v))
}

// PutUInt32 writes uint32 little endian.
func (b *Buffer) PutUInt32(v uint32) {
	b.Buf = binary.LittleEndian.AppendUint32(b.Buf, v)
}

// PutInt32 writes int32 little endian.
func (b *Buffer) PutInt32(v int32) {
	b.PutUInt32(uint32(v))
}

// PutUInt64 writes uint64 little endian.
func (b *Buffer) PutUInt64(v uint64) {
	b.Buf = binary.LittleEndian.AppendUint64(b.Buf, v)
}

// PutInt64 writes int64 little endian.
func (b *Buffer) PutInt64(v int64) {
	b.PutUInt64(uint64(v))
}

// PutFloat32 writes IEEE-754 binary32 little endian.
func (b *Buffer) PutFloat32(v float32) {
	b.PutUInt32(math.Float32bits(v))
}

// PutFloat64 writes IEEE-754 binary64 little endian.
func (b *Buffer) PutFloat64(v float64) {
	b.PutUInt64(math.Float64bits(v))
}

// PutString writes varint length-prefixed UTF-8 string.
func (b *Buffer) PutString(v string) {
	b.PutUVarInt(uint64(len(v)))
	b.Buf = append(b.Buf, v...)
}

// PutRaw writes raw bytes with no framing.
func (b *Buffer) PutRaw(v []byte) {
	b.Buf = append(b.Buf, v...)
}

// EncodeAware is implemented by values whose wire shape depends on the
// negotiated server protocol revision.
type EncodeAware interface {
	EncodeAware(b *Buffer, version int)
}

// DecodeAware is the decode counterpart of EncodeAware.
type DecodeAware interface {
	DecodeAware(r *Reader, version int) error
}
