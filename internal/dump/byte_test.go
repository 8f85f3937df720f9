package dump

import "testing"

func TestCategoryIsTotal(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch Category(b) {
		case CategoryNull, CategoryAsciiPrintable, CategoryAsciiWhitespace,
			CategoryAsciiOther, CategoryNonAscii:
		default:
			t.Fatalf("byte 0x%02x has no category", b)
		}
		if Glyph(b) == 0 {
			t.Fatalf("byte 0x%02x has no glyph", b)
		}
		if byteColor(b) == nil {
			t.Fatalf("byte 0x%02x has no color", b)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want ByteCategory
	}{
		{"null", 0x00, CategoryNull},
		{"lowercase letter", 'a', CategoryAsciiPrintable},
		{"digit", '7', CategoryAsciiPrintable},
		{"tilde", 0x7e, CategoryAsciiPrintable},
		{"space", ' ', CategoryAsciiWhitespace},
		{"tab", '\t', CategoryAsciiWhitespace},
		{"newline", '\n', CategoryAsciiWhitespace},
		{"form feed", '\f', CategoryAsciiWhitespace},
		{"carriage return", '\r', CategoryAsciiWhitespace},
		{"vertical tab is control, not whitespace", 0x0b, CategoryAsciiOther},
		{"bell", 0x07, CategoryAsciiOther},
		{"delete", 0x7f, CategoryAsciiOther},
		{"first non-ascii", 0x80, CategoryNonAscii},
		{"high byte", 0xff, CategoryNonAscii},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Category(tt.b); got != tt.want {
				t.Errorf("Category(0x%02x) = %d, want %d", tt.b, got, tt.want)
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want rune
	}{
		{"null shows zero", 0x00, '0'},
		{"printable shows itself", 'a', 'a'},
		{"space shows space", ' ', ' '},
		{"tab shows underscore", '\t', '_'},
		{"newline shows underscore", '\n', '_'},
		{"control shows bullet", 0x01, '•'},
		{"delete shows bullet", 0x7f, '•'},
		{"non-ascii shows cross", 0xc3, '×'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Glyph(tt.b); got != tt.want {
				t.Errorf("Glyph(0x%02x) = %q, want %q", tt.b, got, tt.want)
			}
		})
	}
}
