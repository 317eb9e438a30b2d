// Package formats provides the maze file encodings: the line-based text
// format and a YAML wrapper around the same token grammar.
package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/maze-bomber/internal/maze/core"
)

// Policy controls how unknown token letters are handled while decoding.
type Policy string

const (
	// PolicyStrict rejects unknown letters with core.ErrMalformedInput.
	PolicyStrict Policy = "strict"
	// PolicyLenient decodes unknown letters as Empty.
	PolicyLenient Policy = "lenient"
)

// ParsePolicy converts a config string to a Policy.
// An empty string selects PolicyStrict.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyLenient:
		return PolicyLenient, nil
	default:
		return PolicyStrict, fmt.Errorf("unknown decode policy %q", s)
	}
}

// Options configures decoding.
type Options struct {
	Unknown Policy
}

// DefaultOptions returns the strict decoding options.
func DefaultOptions() Options {
	return Options{Unknown: PolicyStrict}
}

// DecodeText parses a text maze: one row per line, whitespace ignored,
// blank lines skipped.
func DecodeText(data []byte, opts Options) (*core.Grid, error) {
	var rows [][]core.Object

	scanner := bufio.NewScanner(bytes.NewReader(data))
	// A single line may span the whole input.
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), max(len(data)+1, bufio.MaxScanTokenSize))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := DecodeRow(line, len(rows), opts)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	return core.NewGrid(rows)
}

// DecodeRow parses the tokens of a single row. y is used in error messages.
//
// Grammar, per token:
//   - F<n>  enemy with n lives (default 1)
//   - B<n>  bomb with range n (default 0)
//   - S<n>  piercing bomb with range n (default 0)
//   - R, W  rock, wall
//   - D<c>  deflector, c in L/R/U/D (default U; the character after D is always consumed)
//   - _     empty
func DecodeRow(line string, y int, opts Options) ([]core.Object, error) {
	s := stripSpace(line)
	row := make([]core.Object, 0, len(s))

	for i := 0; i < len(s); {
		col := len(row)
		c := s[i]
		i++

		switch c {
		case 'F', 'B', 'S':
			n, next, err := readInt(s, i, defaultValue(c))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", core.ErrMalformedInput, y, col, err)
			}
			i = next
			row = append(row, numbered(c, n))
		case 'R':
			row = append(row, core.Rock())
		case 'W':
			row = append(row, core.Wall())
		case 'D':
			// The next character always belongs to the deflector;
			// anything but L/R/U/D points it Up.
			dir := core.DirUp
			if i < len(s) {
				if d, ok := core.ParseDir(s[i]); ok {
					dir = d
				}
				_, size := utf8.DecodeRuneInString(s[i:])
				i += size
			}
			row = append(row, core.Deflector(dir))
		case '_':
			row = append(row, core.Empty())
		default:
			r, size := utf8.DecodeRuneInString(s[i-1:])
			i += size - 1
			if opts.Unknown == PolicyLenient {
				row = append(row, core.Empty())
				continue
			}
			return nil, fmt.Errorf("%w: row %d column %d: unknown symbol %q", core.ErrMalformedInput, y, col, r)
		}
	}

	return row, nil
}

// EncodeText renders a grid as text: tokens separated by single spaces,
// one row per line, every line newline-terminated.
func EncodeText(g *core.Grid) []byte {
	return []byte(core.RenderGrid(g))
}

// stripSpace removes every whitespace character from the line.
func stripSpace(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}

// readInt reads decimal digits starting at i.
// Returns def when no digits are present.
func readInt(s string, i int, def int) (int, int, error) {
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return def, i, nil
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, i, fmt.Errorf("invalid number %q", s[start:i])
	}
	return n, i, nil
}

func defaultValue(letter byte) int {
	if letter == 'F' {
		return 1
	}
	return 0
}

func numbered(letter byte, n int) core.Object {
	switch letter {
	case 'F':
		return core.Enemy(n)
	case 'B':
		return core.Bomb(n)
	default:
		return core.PiercingBomb(n)
	}
}
