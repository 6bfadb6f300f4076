package trajwriter

import (
	"strconv"
	"strings"
)

// Validate rejects a malformed StructuredWriterConfig before any data
// flows. It is a pure function: the same config always yields the same
// result. Diagnostics are part of the external contract — callers match on
// substrings of the returned error's message — so wording here must not
// drift.
func Validate(config StructuredWriterConfig) error {
	if len(config.Flat) == 0 {
		return invalidArgumentf("`flat` must not be empty.")
	}

	requiredBufferLength := 0
	for _, node := range config.Flat {
		if node.FlatSourceIndex < 0 {
			return invalidArgumentf("`flat_source_index` must be >= 0 but got %d.", node.FlatSourceIndex)
		}

		if node.Start == nil && node.Stop == nil {
			return invalidArgumentf("At least one of `start` and `stop` must be specified.")
		}

		if node.Start != nil && *node.Start >= 0 {
			return invalidArgumentf("`start` must be < 0 but got %d.", *node.Start)
		}

		if node.Stop != nil && *node.Stop > 0 {
			return invalidArgumentf("`stop` must be <= 0 but got %d.", *node.Stop)
		}

		if node.Stop != nil && node.Start == nil && *node.Stop == 0 {
			return invalidArgumentf("`stop` must be < 0 when `start` isn't set but got 0.")
		}

		if node.Start != nil && node.Stop != nil && *node.Stop <= *node.Start {
			return invalidArgumentf("`stop` (%d) must be > `start` (%d) when both are specified.", *node.Stop, *node.Start)
		}

		if node.Step != nil && node.Start == nil {
			return invalidArgumentf("`step` must only be set when `start` is set.")
		}

		if node.Step != nil && *node.Step <= 0 {
			return invalidArgumentf("`step` must be > 0 but got %d.", *node.Step)
		}

		if lookback := requiredLookback(node); lookback > requiredBufferLength {
			requiredBufferLength = lookback
		}
	}

	if config.Table == "" {
		return invalidArgumentf("`table` must not be empty.")
	}

	if config.Priority < 0 {
		return invalidArgumentf("`priority` must be >= 0 but got %s.", formatPriority(config.Priority))
	}

	hasRequiredBufferLength := false
	for _, cond := range config.Conditions {
		if cond.Left == leftUnspecified {
			return invalidArgumentf("Conditions must specify a value for `left`")
		}
		if cond.Cmp.Kind == cmpUnspecified {
			return invalidArgumentf("Conditions must specify a value for `cmp`.")
		}

		if cond.Left == LeftData {
			return invalidArgumentf("`data` selector is not supported by this writer")
		}

		if cond.Cmp.Kind == CmpModEq {
			if cond.Cmp.Mod <= 0 {
				return invalidArgumentf("`mod_eq.mod` must be > 0 but got %d.", cond.Cmp.Mod)
			}
			if cond.Cmp.Eq < 0 {
				return invalidArgumentf("`mod_eq.eq` must be >= 0 but got %d.", cond.Cmp.Eq)
			}
		}

		if cond.Left == LeftIsEndEpisode {
			if cond.Cmp.Kind != CmpEq || cond.Cmp.Value != 1 {
				return invalidArgumentf("Condition must use `eq=1` when using `is_end_episode`")
			}
		}

		if cond.Left == LeftBufferLength && cond.Cmp.Kind == CmpGe && cond.Cmp.Value >= requiredBufferLength {
			hasRequiredBufferLength = true
		}
	}

	if !hasRequiredBufferLength {
		return invalidArgumentf(
			"Config does not contain required buffer length condition; "+
				"expected a `buffer_length` condition with `ge` >= %d.", requiredBufferLength)
	}

	return nil
}

// formatPriority renders a float64 with at least one decimal digit so
// messages read "-1.0" rather than Go's default "-1" for whole numbers,
// matching the original implementation's diagnostic wording.
func formatPriority(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// requiredLookback returns |min(start, stop)| for one node, treating an
// unset start/stop as 0: the smallest `ge` the mandatory buffer_length
// condition may use for a pattern containing this node.
func requiredLookback(node FlatNode) int {
	start, stop := 0, 0
	if node.Start != nil {
		start = *node.Start
	}
	if node.Stop != nil {
		stop = *node.Stop
	}
	m := start
	if stop < m {
		m = stop
	}
	if m < 0 {
		return -m
	}
	return m
}
