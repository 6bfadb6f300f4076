package trajwriter

// TrajectoryColumn is one emitted column: the selected cell references, in
// order, and whether the caller should treat it as a single squeezed value
// rather than a length-1 sequence.
type TrajectoryColumn struct {
	Refs     []CellRef
	Squeezed bool
}

// sliceColumn selects references out of ring for one FlatNode. ring.len()
// must already be known to satisfy every condition that gates this pattern;
// sliceColumn itself does no gating, it only computes indices.
//
// For a squeezed node (Start unset) exactly one reference is selected, at
// negative index `stop` itself -- not `stop - 1`. This mirrors the original
// C++ implementation, which resolves a single non-negative "newest is index
// N-1" position as `N + stop` rather than the naive `N + stop - 1` that a
// literal reading of the slice-semantics prose suggests.
func sliceColumn(ring *referenceRing, node FlatNode) TrajectoryColumn {
	if node.Squeezed() {
		stop := 0
		if node.Stop != nil {
			stop = *node.Stop
		}
		return TrajectoryColumn{Refs: []CellRef{ring.at(stop)}, Squeezed: true}
	}

	start := *node.Start
	stop := 0
	if node.Stop != nil {
		stop = *node.Stop
	}
	step := 1
	if node.Step != nil {
		step = *node.Step
	}

	refs := make([]CellRef, 0, (stop-start+step-1)/step)
	for idx := start; idx < stop; idx += step {
		refs = append(refs, ring.at(idx))
	}
	return TrajectoryColumn{Refs: refs, Squeezed: false}
}
