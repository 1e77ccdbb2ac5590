package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// Document number prefixes.
const (
	PrefixEstimate = "EST"
	PrefixInvoice  = "INV"
)

// PrefixFor maps a document kind to its number prefix.
func PrefixFor(kind DocumentKind) string {
	if kind == KindInvoice {
		return PrefixInvoice
	}
	return PrefixEstimate
}

// FormatNumber renders a document number, e.g. FormatNumber("INV", 2024, 7)
// returns "INV-2024-0007". Sequences past 9999 widen rather than wrap.
func FormatNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

// MaxSequence scans previously issued numbers and returns the highest
// sequence found for the given prefix and year, 0 if none. Numbers from
// other years or kinds are skipped; suffixes that do not parse as an
// integer are ignored.
func MaxSequence(existing []string, prefix string, year int) int {
	head := fmt.Sprintf("%s-%d-", prefix, year)
	max := 0
	for _, n := range existing {
		suffix, ok := strings.CutPrefix(n, head)
		if !ok {
			continue
		}
		seq, err := strconv.Atoi(suffix)
		if err != nil || seq < 0 {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max
}

// NextNumber derives the next sequential document number from the full set
// of previously issued numbers: the true maximum sequence for the
// prefix/year plus one, zero-padded to four digits.
//
// Scanning at call time is inherently racy between concurrent writers; the
// persistence layer keeps an atomic per-(kind, year) counter for the live
// path and uses this function only to seed that counter from legacy rows.
func NextNumber(existing []string, prefix string, year int) string {
	return FormatNumber(prefix, year, MaxSequence(existing, prefix, year)+1)
}
