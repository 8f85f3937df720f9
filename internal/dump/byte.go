package dump

import "github.com/fatih/color"

// ByteCategory is the display class of a raw input byte. It decides both
// the character shown in the text panels and the color used for the byte's
// hex and text cells.
type ByteCategory int

const (
	CategoryNull ByteCategory = iota
	CategoryAsciiPrintable
	CategoryAsciiWhitespace
	CategoryAsciiOther
	CategoryNonAscii
)

var (
	colorNull            = color.New(color.FgHiBlack)
	colorOffset          = color.New(color.FgHiBlack)
	colorAsciiPrintable  = color.New(color.FgCyan)
	colorAsciiWhitespace = color.New(color.FgGreen)
	colorAsciiOther      = color.New(color.FgMagenta)
	colorNonAscii        = color.New(color.FgYellow)
)

// Category classifies b. Total over all 256 byte values.
func Category(b byte) ByteCategory {
	switch {
	case b == 0x00:
		return CategoryNull
	case b >= 0x21 && b <= 0x7e:
		return CategoryAsciiPrintable
	case isAsciiWhitespace(b):
		return CategoryAsciiWhitespace
	case b < 0x80:
		return CategoryAsciiOther
	default:
		return CategoryNonAscii
	}
}

// Vertical tab is deliberately absent: it renders as a control bullet.
func isAsciiWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// Glyph returns the single character shown for b in the text panels.
func Glyph(b byte) rune {
	switch Category(b) {
	case CategoryNull:
		return '0'
	case CategoryAsciiPrintable:
		return rune(b)
	case CategoryAsciiWhitespace:
		if b == 0x20 {
			return ' '
		}
		return '_'
	case CategoryAsciiOther:
		return '•'
	default:
		return '×'
	}
}

func byteColor(b byte) *color.Color {
	switch Category(b) {
	case CategoryNull:
		return colorNull
	case CategoryAsciiPrintable:
		return colorAsciiPrintable
	case CategoryAsciiWhitespace:
		return colorAsciiWhitespace
	case CategoryAsciiOther:
		return colorAsciiOther
	default:
		return colorNonAscii
	}
}
