package trajwriter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() StructuredWriterConfig {
	return StructuredWriterConfig{
		Flat:       []FlatNode{NewFlatNodeStop(0, -1)},
		Table:      "table",
		Priority:   1,
		Conditions: []Condition{BufferLength(Ge(1))},
	}
}

func TestValidate_Accepts(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_EmptyFlat(t *testing.T) {
	cfg := validConfig()
	cfg.Flat = nil
	require.ErrorContains(t, Validate(cfg), "`flat` must not be empty.")
}

func TestValidate_NegativeSourceIndex(t *testing.T) {
	cfg := validConfig()
	cfg.Flat[0].FlatSourceIndex = -1
	require.ErrorContains(t, Validate(cfg), "`flat_source_index` must be >= 0")
}

func TestValidate_StartAndStopBothUnset(t *testing.T) {
	cfg := validConfig()
	cfg.Flat[0].Stop = nil
	require.ErrorContains(t, Validate(cfg), "At least one of `start` and `stop` must be specified.")
}

func TestValidate_StartMustBeNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Flat[0] = NewFlatNode(0, 0, -1)
	require.ErrorContains(t, Validate(cfg), "`start` must be < 0")
}

func TestValidate_StopMustNotBePositive(t *testing.T) {
	cfg := validConfig()
	cfg.Flat[0] = NewFlatNode(0, -2, 1)
	require.ErrorContains(t, Validate(cfg), "`stop` must be <= 0")
}

func TestValidate_StopZeroRequiresStart(t *testing.T) {
	cfg := validConfig()
	cfg.Flat[0] = NewFlatNodeStop(0, 0)
	require.ErrorContains(t, Validate(cfg), "`stop` must be < 0 when `start` isn't set")
}

func TestValidate_StopMustExceedStart(t *testing.T) {
	cfg := validConfig()
	cfg.Flat[0] = NewFlatNode(0, -2, -3)
	require.ErrorContains(t, Validate(cfg), "`stop` (-3) must be > `start` (-2)")
}

func TestValidate_StepRequiresStart(t *testing.T) {
	cfg := validConfig()
	cfg.Flat[0] = NewFlatNodeStop(0, -3).WithStep(2)
	require.ErrorContains(t, Validate(cfg), "`step` must only be set when `start` is set.")
}

func TestValidate_StepMustBePositive(t *testing.T) {
	cfg := validConfig()
	cfg.Flat[0] = NewFlatNodeStart(0, -3).WithStep(-1)
	require.ErrorContains(t, Validate(cfg), "`step` must be > 0 but got -1.")

	cfg2 := validConfig()
	cfg2.Flat[0] = NewFlatNodeStart(0, -3).WithStep(0)
	require.ErrorContains(t, Validate(cfg2), "`step` must be > 0 but got 0.")
}

func TestValidate_TableRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Table = ""
	require.ErrorContains(t, Validate(cfg), "`table` must not be empty.")
}

func TestValidate_NegativePriority(t *testing.T) {
	cfg := validConfig()
	cfg.Priority = -1
	require.ErrorContains(t, Validate(cfg), "`priority` must be >= 0 but got -1.0")
}

func TestValidate_ConditionsRequireLeftAndCmp(t *testing.T) {
	cfg := validConfig()
	cfg.Conditions = append(cfg.Conditions, Condition{})
	require.ErrorContains(t, Validate(cfg), "Conditions must specify a value for `left`")

	cfg2 := validConfig()
	cfg2.Conditions = append(cfg2.Conditions, Condition{Left: LeftStepIndex})
	require.ErrorContains(t, Validate(cfg2), "Conditions must specify a value for `cmp`.")
}

func TestValidate_DataSelectorRejected(t *testing.T) {
	cfg := validConfig()
	cfg.Conditions = append(cfg.Conditions, Condition{Left: LeftData, Cmp: Eq(1)})
	require.ErrorContains(t, Validate(cfg), "`data` selector is not supported by this writer")
}

func TestValidate_ModEqBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Conditions = append(cfg.Conditions, StepIndex(ModEq(0, 1)))
	require.ErrorContains(t, Validate(cfg), "`mod_eq.mod` must be > 0 but got 0.")

	cfg2 := validConfig()
	cfg2.Conditions = append(cfg2.Conditions, StepIndex(ModEq(3, -1)))
	require.ErrorContains(t, Validate(cfg2), "`mod_eq.eq` must be >= 0 but got -1.")
}

func TestValidate_IsEndEpisodeMustBeEq1(t *testing.T) {
	cfg := validConfig()
	cfg.Conditions = append(cfg.Conditions, Condition{Left: LeftIsEndEpisode, Cmp: Ge(1)})
	require.ErrorContains(t, Validate(cfg), "Condition must use `eq=1` when using `is_end_episode`")
}

func TestValidate_RequiresBufferLengthCondition(t *testing.T) {
	cfg := validConfig()
	cfg.Conditions = nil
	require.ErrorContains(t, Validate(cfg), "Config does not contain required buffer length condition;")
}

func TestValidate_RequiredBufferLengthScalesWithLookback(t *testing.T) {
	cfg := StructuredWriterConfig{
		Flat:       []FlatNode{NewFlatNode(0, -4, -1)},
		Table:      "table",
		Priority:   1,
		Conditions: []Condition{BufferLength(Ge(3))},
	}
	require.ErrorContains(t, Validate(cfg), "expected a `buffer_length` condition with `ge` >= 4.")
}
