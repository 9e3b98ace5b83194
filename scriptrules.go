package jpnorm

// The states of the dominant script parser. The script seen so far is kept
// in the bits above shiftScriptState.
const (
	scUnset = iota
	scDominant
	scMixed
)

const (
	maskScriptState  = 0xf
	shiftScriptState = 4
)

// scriptTransitions implements the dominant script parser's state
// transitions. Wildcard code points never reach it.
//
//	Unset       + any script       -> Dominant(script)
//	Dominant(s) + s                -> Dominant(s)
//	Dominant(s) + other script     -> Mixed
//	Mixed       + any script       -> Mixed
func scriptTransitions(state int, script ScriptType) int {
	switch uint64(state&maskScriptState) | uint64(boolToInt(ScriptType(state>>shiftScriptState) == script))<<32 {
	case scUnset | 0<<32, scUnset | 1<<32:
		return scDominant | int(script)<<shiftScriptState
	case scDominant | 1<<32:
		return state
	default:
		return scMixed
	}
}

// transitionScriptState determines the new state of the dominant script
// parser given the current state and the next code point.
func transitionScriptState(state int, cp Codepoint) int {
	if cp.Malformed {
		return scriptTransitions(state, UnknownScript)
	}
	if isScriptWildcard(cp.Rune) {
		return state
	}
	return scriptTransitions(state, scriptOf(cp.Rune))
}

// scriptResult maps a final parser state to the script of the whole string.
func scriptResult(state int) ScriptType {
	if state&maskScriptState != scDominant {
		return UnknownScript
	}
	return ScriptType(state >> shiftScriptState)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
