package field

import (
	"fmt"
	"strings"
)

// Kind is the classification of a single attribute.
type Kind uint8

const (
	// Required attributes are set exactly once and gate completion.
	Required Kind = iota + 1
	// Optional attributes are set at most once.
	Optional
	// Accumulating attributes are appended to in any state.
	Accumulating
	// Flag attributes are marked true in any state.
	Flag
)

// Tokens accepted by ParseKind, as written in struct tags.
const (
	TokenRequired     = "required"
	TokenOptional     = "optional"
	TokenAppend       = "append"
	TokenAccumulating = "accumulating"
	TokenFlag         = "flag"
)

// String returns the canonical token of k.
func (k Kind) String() string {
	switch k {
	case Required:
		return TokenRequired
	case Optional:
		return TokenOptional
	case Accumulating:
		return TokenAppend
	case Flag:
		return TokenFlag
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Gated reports whether k owns a phantom type parameter.
func (k Kind) Gated() bool {
	return k == Required || k == Optional
}

// valid reports whether k is one of the declared kinds.
func (k Kind) valid() bool {
	return k >= Required && k <= Flag
}

// ParseKind maps a tag token to a Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case TokenRequired:
		return Required, nil
	case TokenOptional:
		return Optional, nil
	case TokenAppend, TokenAccumulating:
		return Accumulating, nil
	case TokenFlag:
		return Flag, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}
