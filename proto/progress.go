package proto

// Progress reports incremental query execution progress (spec.md §4.7).
// Fields are deltas since the previous Progress packet, not cumulative
// totals — callers that want totals must accumulate them.
type Progress struct {
	Rows      uint64
	Bytes     uint64
	TotalRows uint64

	WroteRows  uint64
	WroteBytes uint64
}

// DecodeAware reads a Progress packet, gating the "written" fields on
// R_PROGRESS_WRITTEN.
func (p *Progress) DecodeAware(r *Reader, revision int) error {
	var err error
	if p.Rows, err = r.UVarInt(); err != nil {
		return err
	}
	if p.Bytes, err = r.UVarInt(); err != nil {
		return err
	}
	if p.TotalRows, err = r.UVarInt(); err != nil {
		return err
	}
	if FeatureProgressWritten.In(revision) {
		if p.WroteRows, err = r.UVarInt(); err != nil {
			return err
		}
		if p.WroteBytes, err = r.UVarInt(); err != nil {
			return err
		}
	}
	return nil
}

// Profile reports query resource usage after execution (spec.md §4.7).
type Profile struct {
	Rows       uint64
	Blocks     uint64
	Bytes      uint64
	AppliedLimit bool
	RowsBeforeLimit uint64
	CalculatedRowsBeforeLimit bool
}

// Decode reads a Profile packet.
func (p *Profile) Decode(r *Reader) error {
	var err error
	if p.Rows, err = r.UVarInt(); err != nil {
		return err
	}
	if p.Blocks, err = r.UVarInt(); err != nil {
		return err
	}
	if p.Bytes, err = r.UVarInt(); err != nil {
		return err
	}
	if p.AppliedLimit, err = r.Bool(); err != nil {
		return err
	}
	if p.RowsBeforeLimit, err = r.UVarInt(); err != nil {
		return err
	}
	if p.CalculatedRowsBeforeLimit, err = r.Bool(); err != nil {
		return err
	}
	return nil
}
