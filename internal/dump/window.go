package dump

import "errors"

var (
	// ErrInvalidWindowSize is returned when the requested line width is
	// not a positive multiple of 2.
	ErrInvalidWindowSize = errors.New("window size is not a positive multiple of 2")
	// ErrWindowSizeTooLarge is returned when the requested line width
	// would push the panel width math past sane bounds.
	ErrWindowSizeTooLarge = errors.New("window size exceeds the maximum of 4096")
)

// maxWindowSize keeps half*3+1 and the address field width comfortably
// inside int range on every platform.
const maxWindowSize = 4096

// WindowSize is the validated number of input bytes rendered per line.
// Lines are split into two panels of Half() bytes each.
type WindowSize struct {
	n int
}

// NewWindowSize validates n as a line width.
func NewWindowSize(n int) (WindowSize, error) {
	if n <= 0 || n%2 != 0 {
		return WindowSize{}, ErrInvalidWindowSize
	}
	if n > maxWindowSize {
		return WindowSize{}, ErrWindowSizeTooLarge
	}
	return WindowSize{n: n}, nil
}

// Half returns the number of bytes in one panel.
func (w WindowSize) Half() int { return w.n / 2 }

// Full returns the number of bytes in one line.
func (w WindowSize) Full() int { return w.n }
