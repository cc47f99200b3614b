package symbol

// matchPattern attempts to match steps against compressed starting at
// startPos. On success it returns the compressed position just past the
// match, and the compressed indices of the first and last tokens the
// pattern actually consumed.
func matchPattern(compressed []compressedToken, startPos int, steps []Step, captures map[string]capture) (endPos, firstIdx, lastIdx int, ok bool) {
	pos := startPos
	firstIdx, lastIdx = -1, -1

	i := 0
	for i < len(steps) {
		step := steps[i]

		if step.Kind == SkipUntilStep {
			if i+1 >= len(steps) {
				return 0, 0, 0, false
			}
			sentinel := steps[i+1]
			maxTokens := step.MaxTokens
			if maxTokens <= 0 {
				maxTokens = DefaultMaxSkipTokens
			}

			found := -1
			for k := 0; k < maxTokens && pos+k < len(compressed); k++ {
				if newPos, consumedIdx, matched := tryStepAt(compressed, pos+k, sentinel, captures); matched && consumedIdx >= 0 {
					found = newPos
					if firstIdx == -1 {
						firstIdx = consumedIdx
					}
					lastIdx = consumedIdx
					break
				}
			}
			if found == -1 {
				return 0, 0, 0, false
			}
			pos = found
			i += 2
			continue
		}

		newPos, consumedIdx, matched := tryStepAt(compressed, pos, step, captures)
		if !matched {
			return 0, 0, 0, false
		}
		pos = newPos
		if consumedIdx >= 0 {
			if firstIdx == -1 {
				firstIdx = consumedIdx
			}
			lastIdx = consumedIdx
		}
		i++
	}

	if firstIdx == -1 {
		// The pattern matched nothing concrete (all-optional pattern);
		// there is no symbol here.
		return 0, 0, 0, false
	}
	return pos, firstIdx, lastIdx, true
}

// tryStepAt attempts a single non-skip step at exactly pos. It returns
// the position just past the step, the compressed index of the token it
// consumed (-1 if none), and whether the step succeeded.
func tryStepAt(compressed []compressedToken, pos int, step Step, captures map[string]capture) (newPos, consumedIdx int, ok bool) {
	switch step.Kind {
	case MatchStep:
		if pos >= len(compressed) {
			return pos, -1, false
		}
		ct := compressed[pos]
		if ct.token.Type != step.TokenType {
			return pos, -1, false
		}
		if step.Value != "" && ct.token.Value != step.Value {
			return pos, -1, false
		}
		if step.Capture != "" {
			captures[step.Capture] = capture{value: ct.token.Value, origIndex: ct.origIndex}
		}
		return pos + 1, pos, true

	case OptionalStep:
		if step.Inner == nil {
			return pos, -1, true
		}
		if newPos, consumedIdx, matched := tryStepAt(compressed, pos, *step.Inner, captures); matched {
			return newPos, consumedIdx, true
		}
		return pos, -1, true

	case AnyOfStep:
		for _, alt := range step.Alternatives {
			if newPos, consumedIdx, matched := tryStepAt(compressed, pos, alt, captures); matched {
				return newPos, consumedIdx, true
			}
		}
		return pos, -1, false

	default: // SkipUntilStep nested inside optional/any-of is out of scope.
		return pos, -1, false
	}
}
