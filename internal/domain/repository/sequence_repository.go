package repository

// SequenceRepository is the single numbering authority: one monotonically
// increasing counter per (kind, year), incremented atomically so that two
// concurrent creations can never compute the same document number.
type SequenceRepository interface {
	// Next increments and returns the counter for (kind, year), creating
	// it at 1 if absent.
	Next(kind string, year int) (int, error)
	// Seed inserts the counter at lastValue if no row exists yet; an
	// existing counter is left untouched. Used once at startup to adopt
	// numbers issued before the counter table existed.
	Seed(kind string, year, lastValue int) error
}
