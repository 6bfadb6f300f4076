package memsink

import (
	"fmt"
	"sync"
	"time"

	"github.com/jtomasevic/trajwriter/pkg/trajwriter"
)

// WrittenItem is one CreateItem call captured by Writer, with every column's
// references already resolved to their underlying values.
type WrittenItem struct {
	Table    string
	Priority float64
	Columns  [][]any
	Squeezed []bool
}

// Writer is an in-memory trajwriter.ColumnWriter. By default it never
// evicts anything; pass WithRetention to bound per-column memory the way a
// real column writer's chunker options would.
type Writer struct {
	mu        sync.Mutex
	retention map[trajwriter.SourceColumn]int
	chunkers  map[trajwriter.SourceColumn]*chunker
	written   []WrittenItem
	episodes  int
	flushed   int
}

// Option configures a Writer at construction time.
type Option func(*Writer)

// WithRetention bounds how many values each source column's chunker keeps,
// keyed by SourceColumn. Columns absent from the map retain everything.
// Callers typically derive this from the same per-column lookback a
// trajwriter.Writer computes for its reference rings, so memsink never
// holds tensors the core can no longer address.
func WithRetention(retention map[trajwriter.SourceColumn]int) Option {
	return func(w *Writer) { w.retention = retention }
}

func New(opts ...Option) *Writer {
	w := &Writer{chunkers: make(map[trajwriter.SourceColumn]*chunker)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) chunkerFor(col trajwriter.SourceColumn) *chunker {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunkers[col]
	if !ok {
		c = newChunker(w.retention[col])
		w.chunkers[col] = c
	}
	return c
}

func (w *Writer) Append(sourceColumn trajwriter.SourceColumn, value trajwriter.Tensor) (trajwriter.CellRef, error) {
	return w.chunkerFor(sourceColumn).append(value), nil
}

func (w *Writer) AppendPartial(sourceColumn trajwriter.SourceColumn) error {
	// No value arrived for this column this step; nothing to store. The
	// column's chunker is still created if it does not exist yet.
	w.chunkerFor(sourceColumn)
	return nil
}

func (w *Writer) CreateItem(table string, priority float64, columns []trajwriter.TrajectoryColumn) error {
	resolved := make([][]any, len(columns))
	squeezed := make([]bool, len(columns))
	for i, col := range columns {
		values := make([]any, len(col.Refs))
		for j, ref := range col.Refs {
			cr, ok := ref.(cellRef)
			if !ok {
				return fmt.Errorf("memsink: unrecognized cell ref %v", ref)
			}
			v, ok := w.refValue(cr)
			if !ok {
				return fmt.Errorf("memsink: dangling cell ref %v", ref)
			}
			values[j] = v
		}
		resolved[i] = values
		squeezed[i] = col.Squeezed
	}

	w.mu.Lock()
	w.written = append(w.written, WrittenItem{Table: table, Priority: priority, Columns: resolved, Squeezed: squeezed})
	w.mu.Unlock()
	return nil
}

func (w *Writer) refValue(ref cellRef) (any, bool) {
	w.mu.Lock()
	chunkers := make([]*chunker, 0, len(w.chunkers))
	for _, c := range w.chunkers {
		chunkers = append(chunkers, c)
	}
	w.mu.Unlock()

	for _, c := range chunkers {
		if v, ok := c.get(ref); ok {
			return v, true
		}
	}
	return nil, false
}

func (w *Writer) EndEpisode(clearBuffers bool, timeout time.Duration) error {
	w.mu.Lock()
	w.episodes++
	chunkers := make([]*chunker, 0, len(w.chunkers))
	for _, c := range w.chunkers {
		chunkers = append(chunkers, c)
	}
	w.mu.Unlock()

	if clearBuffers {
		for _, c := range chunkers {
			c.reset()
		}
	}
	return nil
}

func (w *Writer) Flush(ignoreLastNumItems int, timeout time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := len(w.written) - ignoreLastNumItems
	if n > w.flushed {
		w.flushed = n
	}
	return nil
}

// GetWritten returns every item dispatched via CreateItem so far, in order.
func (w *Writer) GetWritten() []WrittenItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]WrittenItem, len(w.written))
	copy(out, w.written)
	return out
}

// Episodes reports how many times EndEpisode has been called.
func (w *Writer) Episodes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.episodes
}

// ByTable groups every item dispatched so far by its destination table,
// preserving append order within each table. This models, at the level of
// detail this module needs, the real column writer's per-table priority
// queues without reimplementing their transport or compression.
func (w *Writer) ByTable() map[string][]WrittenItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string][]WrittenItem)
	for _, item := range w.written {
		out[item.Table] = append(out[item.Table], item)
	}
	return out
}
