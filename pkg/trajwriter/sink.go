package trajwriter

import "time"

// ColumnWriter is the destination a Writer dispatches finished items to. It
// is the only interface the rest of this package depends on for output,
// mirroring the teacher's convention of depending on a narrow sink interface
// (SynapseRuntime.Ingest's StructuralMemory) rather than a concrete type.
type ColumnWriter interface {
	// Append stores one step's cell value for sourceColumn and returns a
	// CellRef the writer can later hand back to CreateItem.
	Append(sourceColumn SourceColumn, value Tensor) (CellRef, error)

	// AppendPartial records that sourceColumn has no value for the current
	// step, without allocating a CellRef. Patterns referencing that column
	// at this step cannot fire until a real value is appended.
	AppendPartial(sourceColumn SourceColumn) error

	// CreateItem asks the sink to persist one trajectory made of the given
	// columns into table, with the given priority.
	CreateItem(table string, priority float64, columns []TrajectoryColumn) error

	// EndEpisode signals that the current episode is finished. If
	// clearBuffers is true every ring must be cleared once pending patterns
	// have had a chance to fire against the final step.
	EndEpisode(clearBuffers bool, timeout time.Duration) error

	// Flush blocks until every item created so far (except, optionally, the
	// most recent ignoreLastNumItems) has been durably written, or timeout
	// elapses.
	Flush(ignoreLastNumItems int, timeout time.Duration) error
}
