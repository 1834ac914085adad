package proto

// BlockInfo carries the optional preamble fields written ahead of a block's
// columns once the server revision negotiates R_BLOCK_INFO (spec.md §4.6).
type BlockInfo struct {
	IsOverflows bool
	BucketNum   int32
}

// EncodeAware writes the BlockInfo preamble:
// varint(1); u8(is_overflows); varint(2); i32 LE(bucket_num); varint(0).
func (b BlockInfo) EncodeAware(buf *Buffer, revision int) {
	if !FeatureBlockInfo.In(revision) {
		return
	}
	buf.PutUVarInt(1)
	if b.IsOverflows {
		buf.PutByte(1)
	} else {
		buf.PutByte(0)
	}
	buf.PutUVarInt(2)
	buf.PutInt32(b.BucketNum)
	buf.PutUVarInt(0)
}

// DecodeAware reads the BlockInfo preamble up to its terminating 0 tag. An
// unknown field tag ends the preamble early without an error; its payload
// is not consumed, since field tags carry no length.
func (b *BlockInfo) DecodeAware(r *Reader, revision int) error {
	if !FeatureBlockInfo.In(revision) {
		return nil
	}
	for {
		tag, err := r.UVarInt()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			return nil
		case 1:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			b.IsOverflows = v
		case 2:
			v, err := r.Int32()
			if err != nil {
				return err
			}
			b.BucketNum = v
		default:
			return nil
		}
	}
}
