package life

import (
	"fmt"
	"strings"
)

// Rule decides the next state of a cell from its current state and the
// number of living neighbors (0..8).
type Rule struct {
	Birth   [9]bool // Dead cell with n living neighbors becomes alive
	Survive [9]bool // Living cell with n living neighbors stays alive
}

// Conway is B3/S23: fewer than two neighbors dies of solitude, four or more
// dies of overpopulation, two or three survives, exactly three is born.
var Conway = Rule{
	Birth:   [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}

// Next returns the state after one generation.
func (r Rule) Next(alive bool, liveNeighbors int) bool {
	if liveNeighbors < 0 || liveNeighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[liveNeighbors]
	}
	return r.Birth[liveNeighbors]
}

// String returns the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			sb.WriteByte(byte('0' + n))
		}
	}
	sb.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// ParseRule reads B/S notation. Both parts are required, in either order,
// and letters are case-insensitive: "B3/S23", "s23/b3".
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("life: invalid rule %q: expected B<digits>/S<digits>", s)
	}

	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return r, fmt.Errorf("life: invalid rule %q: empty part", s)
		}
		var dst *[9]bool
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return r, fmt.Errorf("life: invalid rule %q: duplicate B part", s)
			}
			seenB, dst = true, &r.Birth
		case 'S', 's':
			if seenS {
				return r, fmt.Errorf("life: invalid rule %q: duplicate S part", s)
			}
			seenS, dst = true, &r.Survive
		default:
			return r, fmt.Errorf("life: invalid rule %q: unknown part %q", s, part)
		}
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return Rule{}, fmt.Errorf("life: invalid rule %q: bad neighbor count %q", s, ch)
			}
			dst[ch-'0'] = true
		}
	}
	return r, nil
}
