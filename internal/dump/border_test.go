package dump

import "testing"

func TestParseBorderStyle(t *testing.T) {
	tests := []struct {
		name    string
		want    BorderStyle
		wantErr bool
	}{
		{"unicode", BorderUnicode, false},
		{"ascii", BorderAscii, false},
		{"none", BorderNone, false},
		{"fancy", BorderNone, true},
		{"", BorderNone, true},
	}

	for _, tt := range tests {
		got, err := ParseBorderStyle(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBorderStyle(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseBorderStyle(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestBorderSeparators(t *testing.T) {
	if got := BorderUnicode.outerSep(); got != '│' {
		t.Errorf("unicode outer separator = %q", got)
	}
	if got := BorderUnicode.innerSep(); got != '┊' {
		t.Errorf("unicode inner separator = %q", got)
	}
	if got := BorderAscii.outerSep(); got != '|' {
		t.Errorf("ascii outer separator = %q", got)
	}
	if got := BorderNone.outerSep(); got != ' ' {
		t.Errorf("none outer separator = %q", got)
	}
	if got := BorderNone.innerSep(); got != ' ' {
		t.Errorf("none inner separator = %q", got)
	}
}

func TestBorderElements(t *testing.T) {
	if _, ok := BorderNone.headerElements(); ok {
		t.Error("none style should have no header")
	}
	if _, ok := BorderNone.footerElements(); ok {
		t.Error("none style should have no footer")
	}

	header, ok := BorderUnicode.headerElements()
	if !ok {
		t.Fatal("unicode style should have a header")
	}
	if header.leftCorner != '┌' || header.rightCorner != '┐' {
		t.Errorf("unexpected unicode header corners %q %q", header.leftCorner, header.rightCorner)
	}

	footer, ok := BorderUnicode.footerElements()
	if !ok {
		t.Fatal("unicode style should have a footer")
	}
	if footer.leftCorner != '└' || footer.rightCorner != '┘' {
		t.Errorf("unexpected unicode footer corners %q %q", footer.leftCorner, footer.rightCorner)
	}

	asciiHeader, _ := BorderAscii.headerElements()
	asciiFooter, _ := BorderAscii.footerElements()
	if asciiHeader != asciiFooter {
		t.Error("ascii header and footer should use the same glyphs")
	}
}
