// Package memsink is an in-memory reference implementation of
// trajwriter.ColumnWriter, useful for tests and for the demo command. It
// keeps every appended value in memory rather than batching it into wire
// chunks, trading throughput for simplicity.
package memsink

import (
	"sync"

	"github.com/google/uuid"
)

// cellRef identifies one appended value. trajwriter only ever treats
// CellRef as an opaque comparable handle, so a uuid is as good a choice as
// any -- mirroring the teacher's EventID = uuid.UUID alias idiom.
type cellRef uuid.UUID

// chunker owns the append-ordered values for one source column, keyed by
// the opaque ref minted for each Append call. If retain > 0 it reclaims the
// oldest entries once more than retain values have been appended, mirroring
// Reverb's ConstantChunkerOptions retention window; retain == 0 means
// "keep everything", the right default when the writer's lookback for this
// column is unknown.
type chunker struct {
	mu     sync.Mutex
	retain int
	values map[cellRef]any
	order  []cellRef
}

func newChunker(retain int) *chunker {
	return &chunker{retain: retain, values: make(map[cellRef]any)}
}

func (c *chunker) append(value any) cellRef {
	c.mu.Lock()
	defer c.mu.Unlock()

	ref := cellRef(uuid.New())
	c.values[ref] = value
	c.order = append(c.order, ref)
	c.reclaim()
	return ref
}

// reclaim drops the oldest entries once the chunker holds more than retain,
// so a long-running writer doesn't accumulate every tensor it has ever seen
// once the core's reference ring can no longer reach that far back.
func (c *chunker) reclaim() {
	if c.retain <= 0 {
		return
	}
	for len(c.order) > c.retain {
		stale := c.order[0]
		c.order = c.order[1:]
		delete(c.values, stale)
	}
}

func (c *chunker) get(ref cellRef) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[ref]
	return v, ok
}

// reset drops every value this chunker holds, mirroring
// EndEpisode(clear_buffers=true) clearing the core's reference rings.
func (c *chunker) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[cellRef]any)
	c.order = nil
}
