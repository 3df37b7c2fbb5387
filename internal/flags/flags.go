// Package flags defines the closed set of command-line switches rep understands.
package flags

// Flag is one recognized command-line switch.
type Flag int

const (
	LineNumbers Flag = iota + 1
	CaseInsensitive
	Invert
	Count
	WordMatch
	Verbose
)

// All lists every flag in usage order.
var All = []Flag{LineNumbers, CaseInsensitive, Count, Invert, WordMatch, Verbose}

// Of maps a single command-line token to its flag.
// Only the exact tokens -n, -i, -c, -v, -w and -V are recognized.
func Of(token string) (Flag, bool) {
	switch token {
	case "-n":
		return LineNumbers, true
	case "-i":
		return CaseInsensitive, true
	case "-c":
		return Count, true
	case "-v":
		return Invert, true
	case "-w":
		return WordMatch, true
	case "-V":
		return Verbose, true
	default:
		return 0, false
	}
}

// From returns the recognized flags in tokens, skipping the program name at
// tokens[0]. Order and duplicates are preserved; unknown tokens are dropped.
func From(tokens []string) []Flag {
	result := []Flag{}
	if len(tokens) < 2 {
		return result
	}
	for _, token := range tokens[1:] {
		if f, ok := Of(token); ok {
			result = append(result, f)
		}
	}
	return result
}

// String returns the token form of the flag, e.g. "-n".
func (f Flag) String() string {
	switch f {
	case LineNumbers:
		return "-n"
	case CaseInsensitive:
		return "-i"
	case Count:
		return "-c"
	case Invert:
		return "-v"
	case WordMatch:
		return "-w"
	case Verbose:
		return "-V"
	default:
		return "-?"
	}
}

// Description is the one-line help text shown in usage output.
func (f Flag) Description() string {
	switch f {
	case LineNumbers:
		return "prefix each line with its line number"
	case CaseInsensitive:
		return "ignore case when matching"
	case Count:
		return "print only a count of selected lines per file"
	case Invert:
		return "select non-matching lines"
	case WordMatch:
		return "match whole words only (not supported yet)"
	case Verbose:
		return "print diagnostics to stderr"
	default:
		return ""
	}
}
