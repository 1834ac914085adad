package proto

// Exception is the server-reported error for a failed query (spec.md
// §4.7). Nested carries the cause chain the server sent, outermost first.
type Exception struct {
	Code       int32
	Name       string
	Message    string
	StackTrace string
	Nested     *Exception
}

func (e *Exception) Error() string {
	return e.Name + ": " + e.Message
}

// DecodeException reads one Exception frame, following the server's
// has-nested flag to read the full cause chain.
func DecodeException(r *Reader) (*Exception, error) {
	var head, cur *Exception
	for {
		var e Exception
		code, err := r.Int32()
		if err != nil {
			return nil, err
		}
		e.Code = code
		if e.Name, err = r.Str(); err != nil {
			return nil, err
		}
		if e.Message, err = r.Str(); err != nil {
			return nil, err
		}
		if e.StackTrace, err = r.Str(); err != nil {
			return nil, err
		}
		hasNested, err := r.Bool()
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = &e
			cur = &e
		} else {
			cur.Nested = &e
			cur = &e
		}
		if !hasNested {
			break
		}
	}
	return head, nil
}

// TableColumns is the server's echoed name/columns-description pair sent
// ahead of external-data result sets; this client does not act on it
// beyond draining it from the wire.
type TableColumns struct {
	Name    string
	Columns string
}

// Decode reads a TableColumns packet.
func (t *TableColumns) Decode(r *Reader) error {
	var err error
	if t.Name, err = r.Str(); err != nil {
		return err
	}
	if t.Columns, err = r.Str(); err != nil {
		return err
	}
	return nil
}
