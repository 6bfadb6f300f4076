package trajwriter

// evalContext carries the dynamic signals a condition's left selector may
// read, for one candidate emission.
type evalContext struct {
	stepIndex         int
	stepsSinceApplied int
	bufferLength      int
	isEndEpisode      bool
}

// evaluateConditions combines every condition by logical AND. An empty set
// evaluates to true (the mandatory buffer_length condition from Validate is
// still present in practice, but evaluateConditions itself has no opinion
// about that — it just ANDs whatever it's given).
func evaluateConditions(conditions []Condition, ctx evalContext) bool {
	for _, cond := range conditions {
		if !evaluateCondition(cond, ctx) {
			return false
		}
	}
	return true
}

func evaluateCondition(cond Condition, ctx evalContext) bool {
	left := resolveLeft(cond.Left, ctx)
	return evaluateCmp(cond.Cmp, left)
}

func resolveLeft(left ConditionLeft, ctx evalContext) int {
	switch left {
	case LeftStepIndex:
		return ctx.stepIndex
	case LeftStepsSinceApplied:
		return ctx.stepsSinceApplied
	case LeftBufferLength:
		return ctx.bufferLength
	case LeftIsEndEpisode:
		if ctx.isEndEpisode {
			return 1
		}
		return 0
	default:
		// LeftData and leftUnspecified are both rejected by Validate before
		// a writer is ever constructed; reaching here would be a
		// programmer error in test-only bypasses of Validate.
		return 0
	}
}

func evaluateCmp(cmp Cmp, left int) bool {
	switch cmp.Kind {
	case CmpEq:
		return left == cmp.Value
	case CmpNe:
		return left != cmp.Value
	case CmpGe:
		return left >= cmp.Value
	case CmpLe:
		return left <= cmp.Value
	case CmpGt:
		return left > cmp.Value
	case CmpLt:
		return left < cmp.Value
	case CmpModEq:
		return left%cmp.Mod == cmp.Eq
	default:
		return false
	}
}
