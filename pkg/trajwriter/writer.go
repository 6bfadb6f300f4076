package trajwriter

import (
	"log/slog"
	"time"
)

// pattern bundles one validated StructuredWriterConfig with the mutable
// counter state it needs across Append calls.
type pattern struct {
	config            StructuredWriterConfig
	stepsSinceApplied int
}

// Writer is Component E: the orchestrator that drives the reference ring,
// the condition evaluator, and the slicer from a caller's Append/
// EndEpisode/Flush calls, and dispatches finished items to a ColumnWriter.
// It mirrors the teacher's SynapseRuntime in shape: a thin struct holding a
// sink and a set of registered rules, with all the real logic factored into
// package-level helpers.
type Writer struct {
	sink       ColumnWriter
	patterns   []pattern
	rings      *ringSet
	stepIdx    int
	numColumns int
	log        *slog.Logger
}

// WithLogger overrides the Writer's logger, which otherwise defaults to
// slog.Default(). Returns w for chaining at construction time.
func (w *Writer) WithLogger(log *slog.Logger) *Writer {
	w.log = log
	return w
}

// RequiredRetention computes, per source column, the maximum trailing
// lookback any flat node across configs needs. A sink that wants to bound
// memory (e.g. memsink.WithRetention) can derive its own per-column cap from
// this without duplicating the reference ring's lookback arithmetic. configs
// are assumed already validated; NewWriter computes the same map internally.
func RequiredRetention(configs []StructuredWriterConfig) map[SourceColumn]int {
	retention := make(map[SourceColumn]int)
	for _, cfg := range configs {
		for _, node := range cfg.Flat {
			if lookback := requiredLookback(node); lookback > retention[node.FlatSourceIndex] {
				retention[node.FlatSourceIndex] = lookback
			}
		}
	}
	return retention
}

// NewWriter validates every config, computes the per-column retention every
// registered pattern needs, and returns a ready-to-use Writer.
func NewWriter(sink ColumnWriter, configs []StructuredWriterConfig) (*Writer, error) {
	if len(configs) == 0 {
		return nil, ErrNoPatterns
	}

	patterns := make([]pattern, len(configs))
	for i, cfg := range configs {
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		patterns[i] = pattern{config: cfg}
	}
	retention := RequiredRetention(configs)

	numColumns := 0
	for col := range retention {
		if col+1 > numColumns {
			numColumns = col + 1
		}
	}

	return &Writer{
		sink:       sink,
		patterns:   patterns,
		rings:      newRingSet(retention),
		numColumns: numColumns,
		log:        slog.Default(),
	}, nil
}

// Append pushes one step's values into their respective rings, keyed by
// SourceColumn = slice index. A nil entry in step means that column has no
// value for this step.
//
// A step where every entry is present is "complete": it is the only kind of
// step that can trigger a pattern, and only a complete step advances
// step_index. A step with any missing entry only updates rings -- the
// corresponding columns simply accumulate no new reference, and no pattern
// is evaluated -- mirroring the sink-level Append/AppendPartial split the
// original writer dispatches on.
func (w *Writer) Append(step Step) error {
	if len(step) > w.numColumns {
		return ErrTooManyColumns
	}

	complete := true
	for _, value := range step {
		if value == nil {
			complete = false
			break
		}
	}

	for col, value := range step {
		sc := SourceColumn(col)
		if value == nil {
			if err := w.sink.AppendPartial(sc); err != nil {
				return err
			}
			continue
		}
		ref, err := w.sink.Append(sc, value)
		if err != nil {
			return err
		}
		w.rings.push(sc, ref)
	}

	if !complete {
		return nil
	}

	if err := w.fireEligible(false); err != nil {
		return err
	}
	w.stepIdx++
	return nil
}

// EndEpisode marks the current step as the end of an episode, lets every
// pattern re-evaluate against that boundary, and optionally clears every
// ring so the next episode starts with empty history.
func (w *Writer) EndEpisode(clearBuffers bool, timeout time.Duration) error {
	if err := w.fireEligible(true); err != nil {
		return err
	}
	if err := w.sink.EndEpisode(clearBuffers, timeout); err != nil {
		return err
	}
	if clearBuffers {
		w.rings.clearAll()
		w.stepIdx = 0
		for i := range w.patterns {
			w.patterns[i].stepsSinceApplied = 0
		}
	}
	return nil
}

// Flush blocks until the sink has durably written every item created so
// far, aside from the most recent ignoreLastNumItems.
func (w *Writer) Flush(ignoreLastNumItems int, timeout time.Duration) error {
	return w.sink.Flush(ignoreLastNumItems, timeout)
}

// fireEligible checks every pattern's conditions and dispatches a CreateItem
// for every pattern whose conditions are all satisfied. On an Append it first
// advances each pattern's steps-since-applied counter; the end-of-episode
// evaluation leaves the counters unchanged.
func (w *Writer) fireEligible(isEndEpisode bool) error {
	for i := range w.patterns {
		p := &w.patterns[i]
		if !isEndEpisode {
			p.stepsSinceApplied++
		}

		ctx := evalContext{
			stepIndex:         w.stepIdx,
			stepsSinceApplied: p.stepsSinceApplied,
			bufferLength:      w.patternBufferLength(p.config),
			isEndEpisode:      isEndEpisode,
		}

		if !evaluateConditions(p.config.Conditions, ctx) {
			continue
		}

		columns := make([]TrajectoryColumn, len(p.config.Flat))
		for j, node := range p.config.Flat {
			columns[j] = sliceColumn(w.rings.ringFor(node.FlatSourceIndex), node)
		}

		if err := w.sink.CreateItem(p.config.Table, p.config.Priority, columns); err != nil {
			w.log.Error("create item failed", "table", p.config.Table, "error", err)
			return err
		}
		w.log.Debug("item created", "table", p.config.Table, "step_index", w.stepIdx)
		p.stepsSinceApplied = 0
	}
	return nil
}

// patternBufferLength is the minimum ring length across every column a
// pattern references, matching the spec's definition of buffer_length as a
// pattern-scoped (not column-scoped) signal.
func (w *Writer) patternBufferLength(cfg StructuredWriterConfig) int {
	minLen := -1
	for _, node := range cfg.Flat {
		l := w.rings.len(node.FlatSourceIndex)
		if minLen == -1 || l < minLen {
			minLen = l
		}
	}
	if minLen == -1 {
		return 0
	}
	return minLen
}
