package jpnorm

import (
	"errors"
	"fmt"
)

// Errors reported by the numeral parser. A [*ParseError] matches the
// sentinel of its Kind with [errors.Is].
var (
	ErrEmpty          = errors.New("jpnorm: empty numeral")
	ErrInvalidToken   = errors.New("jpnorm: invalid numeral token")
	ErrOutOfOrderUnit = errors.New("jpnorm: numeral unit out of order")
	ErrOverflow       = errors.New("jpnorm: numeral overflows uint64")
)

// ParseErrorKind classifies a [ParseError].
type ParseErrorKind int

// Parse error kinds.
const (
	Empty ParseErrorKind = iota
	InvalidToken
	OutOfOrderUnit
	Overflow
)

func (k ParseErrorKind) sentinel() error {
	switch k {
	case InvalidToken:
		return ErrInvalidToken
	case OutOfOrderUnit:
		return ErrOutOfOrderUnit
	case Overflow:
		return ErrOverflow
	default:
		return ErrEmpty
	}
}

// String returns the name of the kind.
func (k ParseErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	case OutOfOrderUnit:
		return "OutOfOrderUnit"
	case Overflow:
		return "Overflow"
	default:
		return "Empty"
	}
}

// ParseError describes why a numeral could not be converted. Offset is the
// byte offset of the code point Rune that triggered the error. For Empty,
// Offset is 0 and Rune is 0.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
	Rune   rune
}

func (e *ParseError) Error() string {
	if e.Kind == Empty {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%v: %q at offset %d", e.Kind.sentinel(), e.Rune, e.Offset)
}

// Is reports whether target is the sentinel error of e's kind.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind.sentinel()
}
