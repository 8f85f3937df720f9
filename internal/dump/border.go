package dump

import "fmt"

// BorderStyle selects the framing drawn around a dump: Unicode box
// drawing, plain ASCII punctuation, or no framing at all.
type BorderStyle int

const (
	BorderUnicode BorderStyle = iota
	BorderAscii
	BorderNone
)

// ParseBorderStyle maps a CLI style name to a BorderStyle.
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch name {
	case "unicode":
		return BorderUnicode, nil
	case "ascii":
		return BorderAscii, nil
	case "none":
		return BorderNone, nil
	}
	return BorderNone, fmt.Errorf("unknown border style %q (expected unicode, ascii or none)", name)
}

type borderElements struct {
	leftCorner      rune
	horizontalLine  rune
	columnSeparator rune
	rightCorner     rune
}

func (s BorderStyle) headerElements() (borderElements, bool) {
	switch s {
	case BorderUnicode:
		return borderElements{'┌', '─', '┬', '┐'}, true
	case BorderAscii:
		return borderElements{'+', '-', '+', '+'}, true
	}
	return borderElements{}, false
}

func (s BorderStyle) footerElements() (borderElements, bool) {
	switch s {
	case BorderUnicode:
		return borderElements{'└', '─', '┴', '┘'}, true
	case BorderAscii:
		return borderElements{'+', '-', '+', '+'}, true
	}
	return borderElements{}, false
}

func (s BorderStyle) outerSep() rune {
	switch s {
	case BorderUnicode:
		return '│'
	case BorderAscii:
		return '|'
	}
	return ' '
}

func (s BorderStyle) innerSep() rune {
	switch s {
	case BorderUnicode:
		return '┊'
	case BorderAscii:
		return '|'
	}
	return ' '
}
