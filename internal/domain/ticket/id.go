package ticket

import (
	"fmt"
	"strconv"
	"strings"
)

const idPrefix = "TICK-"

// FormatID renders n as TICK-NNN, zero padded to three digits.
func FormatID(n int) string {
	return fmt.Sprintf("%s%03d", idPrefix, n)
}

// IDGenerator derives the id of a new ticket from the ids already stored,
// in insertion order.
type IDGenerator interface {
	NextID(existing []string) string
}

// LengthIDGenerator numbers tickets by collection size. After a delete the
// next id can collide with a live ticket.
type LengthIDGenerator struct{}

func (LengthIDGenerator) NextID(existing []string) string {
	return FormatID(len(existing) + 1)
}

// SequenceIDGenerator uses the highest numeric suffix plus one, so ids are
// never reused while the highest ticket survives.
type SequenceIDGenerator struct{}

func (SequenceIDGenerator) NextID(existing []string) string {
	highest := 0
	for _, id := range existing {
		if n, ok := parseSuffix(id); ok && n > highest {
			highest = n
		}
	}
	return FormatID(highest + 1)
}

func parseSuffix(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NewIDGenerator maps the ticket_store.id_strategy setting to a generator.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", "length":
		return LengthIDGenerator{}, nil
	case "sequence":
		return SequenceIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown ticket id strategy %q", strategy)
	}
}
