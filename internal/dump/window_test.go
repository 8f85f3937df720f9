package dump

import (
	"errors"
	"testing"
)

func TestNewWindowSize(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr error
	}{
		{"default width", 16, nil},
		{"minimum width", 2, nil},
		{"wide", 256, nil},
		{"maximum width", 4096, nil},
		{"odd", 15, ErrInvalidWindowSize},
		{"one", 1, ErrInvalidWindowSize},
		{"zero", 0, ErrInvalidWindowSize},
		{"negative", -4, ErrInvalidWindowSize},
		{"too large", 4098, ErrWindowSizeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, err := NewWindowSize(tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewWindowSize(%d) error = %v, want %v", tt.n, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if ws.Full() != tt.n {
				t.Errorf("Full() = %d, want %d", ws.Full(), tt.n)
			}
			if ws.Half()*2 != ws.Full() {
				t.Errorf("Half()*2 = %d, want %d", ws.Half()*2, ws.Full())
			}
		})
	}
}
