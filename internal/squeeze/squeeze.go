// Package squeeze detects runs of identical dump lines so the printer can
// collapse them into a single "*" placeholder, the way uniq elides
// repeated lines. Long zero-filled or padded regions would otherwise
// dominate the output.
package squeeze

// Action is the fate of a completed line.
type Action int

const (
	// ActionIgnore renders the line normally.
	ActionIgnore Action = iota
	// ActionPrint replaces the line with the placeholder that opens a
	// squeezed run.
	ActionPrint
	// ActionDelete drops the line; its run already has a placeholder.
	ActionDelete
)

// Squeezer tracks, byte by byte, whether the line being assembled repeats
// the previously completed line. All mutation happens through Process and
// Advance; the printer queries LineAction exactly once per line, between
// the two.
type Squeezer struct {
	enabled bool
	// prev is the last committed line, line the one in progress. The two
	// buffers are swapped on Advance to avoid reallocation.
	prev []byte
	line []byte
	// candidate stays true while the line in progress matches the
	// corresponding prefix of prev.
	candidate bool
	// active marks that the last committed line belonged to a run.
	active bool
}

// New returns a squeezer. A disabled squeezer never reports a run, so
// every line renders normally.
func New(enabled bool) *Squeezer {
	return &Squeezer{enabled: enabled}
}

// Process records the next byte of the line in progress. lineWidth is the
// full line width in bytes; idx is the printer's 1-based running index.
func (s *Squeezer) Process(lineWidth uint64, b byte, idx uint64) {
	if !s.enabled {
		return
	}
	pos := (idx - 1) % lineWidth
	if pos == 0 {
		s.line = s.line[:0]
		s.candidate = len(s.prev) > 0
	}
	if s.candidate && (pos >= uint64(len(s.prev)) || s.prev[pos] != b) {
		s.candidate = false
	}
	s.line = append(s.line, b)
}

// LineAction decides the fate of the just-completed line. Lines count as
// duplicates only when length and content both match, so a short final
// line never collapses into a full line it merely prefixes.
func (s *Squeezer) LineAction() Action {
	if !s.enabled || !s.candidate || len(s.line) != len(s.prev) {
		return ActionIgnore
	}
	if s.active {
		return ActionDelete
	}
	return ActionPrint
}

// Advance commits the completed line as the reference for the next one
// and records whether a run is now in progress.
func (s *Squeezer) Advance() {
	if !s.enabled {
		return
	}
	s.active = s.LineAction() != ActionIgnore
	s.prev, s.line = s.line, s.prev[:0]
}

// Active reports whether a squeezed run is still open. The printer checks
// it when input ends exactly on a line boundary: an open run gets one
// final address-only line marking where it terminates.
func (s *Squeezer) Active() bool {
	return s.enabled && s.active
}
