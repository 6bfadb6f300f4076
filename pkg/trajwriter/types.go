package trajwriter

// CellRef is an opaque, non-owning handle to one tensor appended to a
// source column. It is minted by the sink and is meaningless to the core;
// the writer only stores and forwards it.
type CellRef = any

// Tensor is an opaque payload appended for one source column at one step.
// The core never interprets its contents.
type Tensor = any

// SourceColumn identifies a logical input channel. Columns are addressed by
// their position in a Step/config, never by name.
type SourceColumn = int

// Step is one call to Append: at most one Tensor per source column
// referenced anywhere in the registered patterns. A nil slot means "no
// value this step for this column".
type Step []Tensor
