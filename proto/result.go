package proto

import "github.com/nativeclick/ch-native/internal/chx"

// Result controls how a decoded block's columns are materialized: either
// into columns the caller already declared (Results), or recorded purely
// as name/type pairs for input-type inference (ColInfoInput). A nil Result
// constructs a fresh Column from the server-reported type name for every
// column.
type Result interface {
	resultColumn(name, typeName string) (Column, error)
}

// ResultColumn binds a result column name to the caller-provided Column it
// should be decoded into.
type ResultColumn struct {
	Name string
	Data Column
}

// Results is a Result that decodes named columns directly into
// caller-supplied Column instances, rejecting a server-reported type that
// structurally conflicts with the declared one.
type Results []ResultColumn

func (r Results) resultColumn(name, typeName string) (Column, error) {
	for _, rc := range r {
		if rc.Name != name {
			continue
		}
		if rc.Data.Type().Conflicts(ColumnType(typeName)) {
			return nil, chx.Newf(chx.KindTypeMismatch, "column %q: declared %s, server sent %s", name, rc.Data.Type(), typeName)
		}
		return rc.Data, nil
	}
	return NewColumnByName(typeName)
}

// AutoResult decodes every column into a freshly constructed Column, for
// callers that don't know their result schema ahead of time.
type AutoResult struct{}

func (AutoResult) resultColumn(name, typeName string) (Column, error) {
	return NewColumnByName(typeName)
}

// ColInfoInputRow is one column's name and server-reported type, recorded
// by ColInfoInput.
type ColInfoInputRow struct {
	Name string
	Type ColumnType
}

// ColInfoInput is a Result that records each column's name and
// server-reported type without requiring the caller to declare columns
// ahead of time — used to learn an INSERT target's column types for input
// inference (e.g. Enum, DateTime precision).
type ColInfoInput []ColInfoInputRow

func (r *ColInfoInput) resultColumn(name, typeName string) (Column, error) {
	*r = append(*r, ColInfoInputRow{Name: name, Type: ColumnType(typeName)})
	return NewColumnByName(typeName)
}

func resolveResultColumn(result Result, name, typeName string) (Column, error) {
	if result == nil {
		return NewColumnByName(typeName)
	}
	return result.resultColumn(name, typeName)
}
