package proto

import "github.com/nativeclick/ch-native/internal/chx"

// InputColumn binds a name to the Column supplying its values for an
// INSERT, or carrying external-data rows for a JOIN/IN clause.
type InputColumn struct {
	Name string
	Data Column
}

// Input is the ordered set of columns for an INSERT.
type Input []InputColumn

// Into builds a Block carrying Input's current rows, under the schema
// implied by its column names and types.
func (in Input) Into() (Block, error) {
	var b Block
	for _, c := range in {
		if err := b.Append(c.Name, c.Data); err != nil {
			return Block{}, err
		}
	}
	return b, nil
}

// Inferable is implemented by a Column whose concrete type parameters
// (e.g. Enum member values, DateTime64 precision) are not fully known
// until the server echoes the target column's declared type — e.g. an
// enum column built from bare Go strings needs the server's
// Enum8('a'=1,...) definition before it can validate/encode values.
type Inferable interface {
	Infer(typ ColumnType) error
}

// Bind resolves infer on every inferable column in in against columns,
// matching by name.
func (in Input) Bind(columns []ColInfoInputRow) error {
	byName := make(map[string]ColumnType, len(columns))
	for _, c := range columns {
		byName[c.Name] = c.Type
	}
	for _, c := range in {
		infer, ok := c.Data.(Inferable)
		if !ok {
			continue
		}
		typ, ok := byName[c.Name]
		if !ok {
			return chx.Newf(chx.KindProtocol, "no server type for column %q", c.Name)
		}
		if err := infer.Infer(typ); err != nil {
			return err
		}
	}
	return nil
}
