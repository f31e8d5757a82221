// Package plugboard models the Steckerbrett: a symmetric letter swap applied
// once before and once after the rotor path. The board is a total mapping
// over the alphabet, identity for unplugged letters, so lookups are a single
// array index with no branching.
package plugboard

import (
	"fmt"
	"sort"
	"strings"
)

// MaxPairs is the number of cables shipped with the machine.
const MaxPairs = 10

var (
	// ErrInvalidPair reports a pair that is not exactly two distinct letters.
	ErrInvalidPair = fmt.Errorf("invalid plugboard pair")
	// ErrDuplicateLetter reports a letter used in more than one pair.
	ErrDuplicateLetter = fmt.Errorf("duplicate plugboard letter")
	// ErrTooManyPairs reports more than MaxPairs pairs.
	ErrTooManyPairs = fmt.Errorf("too many plugboard pairs")
)

// Board maps letter index to letter index. The zero Board is not valid;
// use Identity or New.
type Board [26]int

// Identity returns a board with no cables plugged.
func Identity() Board {
	var b Board
	for i := range b {
		b[i] = i
	}
	return b
}

// New builds a board from unordered two-letter pairs such as "AB".
// Pairs are case-insensitive. A letter may appear in at most one pair and
// at most MaxPairs pairs are accepted; violations are reported, never
// silently dropped.
func New(pairs []string) (Board, error) {
	b := Identity()
	if len(pairs) > MaxPairs {
		return b, fmt.Errorf("%d pairs: %w (max %d)", len(pairs), ErrTooManyPairs, MaxPairs)
	}
	used := [26]bool{}
	for _, raw := range pairs {
		p := strings.ToUpper(strings.TrimSpace(raw))
		if len(p) != 2 || p[0] < 'A' || p[0] > 'Z' || p[1] < 'A' || p[1] > 'Z' || p[0] == p[1] {
			return Identity(), fmt.Errorf("pair %q: %w", raw, ErrInvalidPair)
		}
		x, y := int(p[0]-'A'), int(p[1]-'A')
		if used[x] || used[y] {
			return Identity(), fmt.Errorf("pair %q: %w", raw, ErrDuplicateLetter)
		}
		used[x], used[y] = true, true
		b[x], b[y] = y, x
	}
	return b, nil
}

// Swap passes a letter index through the board.
func (b Board) Swap(c int) int { return b[c] }

// Pairs returns the plugged pairs in normalized form, sorted, for display
// and settings echo.
func (b Board) Pairs() []string {
	var out []string
	for i := 0; i < 26; i++ {
		if j := b[i]; j > i {
			out = append(out, string([]byte{byte('A' + i), byte('A' + j)}))
		}
	}
	sort.Strings(out)
	return out
}
