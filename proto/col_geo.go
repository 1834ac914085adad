package proto

// ColPoint, ColRing, ColPolygon and ColMultiPolygon are the geo column
// kinds (spec.md §3.1): each is laid out on the wire exactly like its
// underlying Tuple/Array kind (original_source/src/column/geo.rs), but
// reports its own distinguishing type name instead of the structural
// Tuple(Float64, Float64)/Array(...) name that the underlying column would
// compute.

// ColPoint is a column of Point values: Tuple(Float64, Float64).
type ColPoint struct{ *ColTuple }

func newColPoint() *ColPoint {
	return &ColPoint{NewColTuple(NewColFloat64(), NewColFloat64())}
}

func (c *ColPoint) Type() ColumnType { return ColumnTypePoint }

func (c *ColPoint) Slice(begin, n int) (Column, error) {
	s, err := c.ColTuple.Slice(begin, n)
	if err != nil {
		return nil, err
	}
	return &ColPoint{s.(*ColTuple)}, nil
}

func (c *ColPoint) CloneEmpty() Column {
	return &ColPoint{c.ColTuple.CloneEmpty().(*ColTuple)}
}

func (c *ColPoint) AppendColumn(other Column) error {
	o, ok := other.(*ColPoint)
	if !ok {
		return typeMismatch(c, other)
	}
	return c.ColTuple.AppendColumn(o.ColTuple)
}

// ColRing is a column of Ring values: Array(Point).
type ColRing struct{ *ColArr }

func newColRing() *ColRing { return &ColRing{NewColArr(newColPoint())} }

func (c *ColRing) Type() ColumnType { return ColumnTypeRing }

func (c *ColRing) Slice(begin, n int) (Column, error) {
	s, err := c.ColArr.Slice(begin, n)
	if err != nil {
		return nil, err
	}
	return &ColRing{s.(*ColArr)}, nil
}

func (c *ColRing) CloneEmpty() Column {
	return &ColRing{c.ColArr.CloneEmpty().(*ColArr)}
}

func (c *ColRing) AppendColumn(other Column) error {
	o, ok := other.(*ColRing)
	if !ok {
		return typeMismatch(c, other)
	}
	return c.ColArr.AppendColumn(o.ColArr)
}

// ColPolygon is a column of Polygon values: Array(Ring).
type ColPolygon struct{ *ColArr }

func newColPolygon() *ColPolygon { return &ColPolygon{NewColArr(newColRing())} }

func (c *ColPolygon) Type() ColumnType { return ColumnTypePolygon }

func (c *ColPolygon) Slice(begin, n int) (Column, error) {
	s, err := c.ColArr.Slice(begin, n)
	if err != nil {
		return nil, err
	}
	return &ColPolygon{s.(*ColArr)}, nil
}

func (c *ColPolygon) CloneEmpty() Column {
	return &ColPolygon{c.ColArr.CloneEmpty().(*ColArr)}
}

func (c *ColPolygon) AppendColumn(other Column) error {
	o, ok := other.(*ColPolygon)
	if !ok {
		return typeMismatch(c, other)
	}
	return c.ColArr.AppendColumn(o.ColArr)
}

// ColMultiPolygon is a column of MultiPolygon values: Array(Polygon).
type ColMultiPolygon struct{ *ColArr }

func newColMultiPolygon() *ColMultiPolygon { return &ColMultiPolygon{NewColArr(newColPolygon())} }

func (c *ColMultiPolygon) Type() ColumnType { return ColumnTypeMultiPolygon }

func (c *ColMultiPolygon) Slice(begin, n int) (Column, error) {
	s, err := c.ColArr.Slice(begin, n)
	if err != nil {
		return nil, err
	}
	return &ColMultiPolygon{s.(*ColArr)}, nil
}

func (c *ColMultiPolygon) CloneEmpty() Column {
	return &ColMultiPolygon{c.ColArr.CloneEmpty().(*ColArr)}
}

func (c *ColMultiPolygon) AppendColumn(other Column) error {
	o, ok := other.(*ColMultiPolygon)
	if !ok {
		return typeMismatch(c, other)
	}
	return c.ColArr.AppendColumn(o.ColArr)
}
