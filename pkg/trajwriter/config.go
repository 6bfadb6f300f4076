package trajwriter

// FlatNode describes one column of an emitted trajectory: which source
// column to read from, and the (start, stop, step) slice into its
// reference ring. Start/Stop/Step are pointers so that "unset" is
// distinguishable from the zero value, mirroring the proto-optional-int
// semantics the original config format relies on.
type FlatNode struct {
	FlatSourceIndex int  `yaml:"flat_source_index" mapstructure:"flat_source_index"`
	Start           *int `yaml:"start,omitempty" mapstructure:"start"`
	Stop            *int `yaml:"stop,omitempty" mapstructure:"stop"`
	Step            *int `yaml:"step,omitempty" mapstructure:"step"`
}

// Squeezed reports whether this node selects a single element with no
// added leading axis, i.e. Start is unset.
func (n FlatNode) Squeezed() bool {
	return n.Start == nil
}

func intPtr(v int) *int { return &v }

// NewFlatNode builds a node with both start and stop set.
func NewFlatNode(flatSourceIndex, start, stop int) FlatNode {
	return FlatNode{FlatSourceIndex: flatSourceIndex, Start: intPtr(start), Stop: intPtr(stop)}
}

// NewFlatNodeStop builds a squeezed node (start unset).
func NewFlatNodeStop(flatSourceIndex, stop int) FlatNode {
	return FlatNode{FlatSourceIndex: flatSourceIndex, Stop: intPtr(stop)}
}

// NewFlatNodeStart builds a node with only start set (stop defaults to 0,
// i.e. "through the newest").
func NewFlatNodeStart(flatSourceIndex, start int) FlatNode {
	return FlatNode{FlatSourceIndex: flatSourceIndex, Start: intPtr(start)}
}

// WithStep returns a copy of the node with step set. Only meaningful when
// Start is also set; Validate rejects the combination otherwise.
func (n FlatNode) WithStep(step int) FlatNode {
	n.Step = intPtr(step)
	return n
}

// ConditionLeft identifies which dynamic signal a condition compares
// against. The zero value, leftUnspecified, means "no left selector was
// set" and is rejected by Validate.
type ConditionLeft int

const (
	leftUnspecified ConditionLeft = iota
	LeftStepIndex
	LeftStepsSinceApplied
	LeftBufferLength
	LeftIsEndEpisode
	// LeftData selects a tensor-derived integer. It is accepted by the
	// config shape but always rejected by Validate: see SPEC_FULL.md §4.3.
	LeftData
)

// CmpKind identifies which relation a condition's right-hand side uses.
// The zero value, cmpUnspecified, means "no cmp was set" and is rejected
// by Validate.
type CmpKind int

const (
	cmpUnspecified CmpKind = iota
	CmpEq
	CmpNe
	CmpGe
	CmpLe
	CmpGt
	CmpLt
	CmpModEq
)

// Cmp is the right-hand side of a condition: either a single value
// compared with Kind's relation, or (for CmpModEq) a modulus/remainder
// pair.
type Cmp struct {
	Kind  CmpKind `yaml:"-" mapstructure:"-"`
	Value int     `yaml:"-" mapstructure:"-"`
	Mod   int     `yaml:"-" mapstructure:"-"`
	Eq    int     `yaml:"-" mapstructure:"-"`
}

func Eq(v int) Cmp  { return Cmp{Kind: CmpEq, Value: v} }
func Ne(v int) Cmp  { return Cmp{Kind: CmpNe, Value: v} }
func Ge(v int) Cmp  { return Cmp{Kind: CmpGe, Value: v} }
func Le(v int) Cmp  { return Cmp{Kind: CmpLe, Value: v} }
func Gt(v int) Cmp  { return Cmp{Kind: CmpGt, Value: v} }
func Lt(v int) Cmp  { return Cmp{Kind: CmpLt, Value: v} }
func ModEq(mod, eq int) Cmp {
	return Cmp{Kind: CmpModEq, Mod: mod, Eq: eq}
}

// Condition is one (left, cmp) pair; a pattern's Conditions are combined by
// logical AND.
// Condition implements yaml.Marshaler/Unmarshaler (see config_loader.go) so
// that it reads and writes as a flat object keyed by selector/relation
// name, matching the original config format.
type Condition struct {
	Left ConditionLeft
	Cmp  Cmp
}

func BufferLength(cmp Cmp) Condition      { return Condition{Left: LeftBufferLength, Cmp: cmp} }
func StepIndex(cmp Cmp) Condition         { return Condition{Left: LeftStepIndex, Cmp: cmp} }
func StepsSinceApplied(cmp Cmp) Condition { return Condition{Left: LeftStepsSinceApplied, Cmp: cmp} }
func IsEndEpisode() Condition             { return Condition{Left: LeftIsEndEpisode, Cmp: Eq(1)} }

// StructuredWriterConfig is one pattern: an ordered list of flat nodes, a
// set of AND-combined conditions, and an opaque destination table +
// priority forwarded to the sink.
type StructuredWriterConfig struct {
	Flat       []FlatNode  `yaml:"flat" mapstructure:"flat"`
	Conditions []Condition `yaml:"conditions,omitempty" mapstructure:"conditions"`
	Table      string      `yaml:"table" mapstructure:"table"`
	Priority   float64     `yaml:"priority" mapstructure:"priority"`
}
