// Package clipboard copies text to the system clipboard by piping it into
// whichever clipboard utility the platform provides.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrNoClipboard is returned when no known clipboard utility works.
var ErrNoClipboard = errors.New("no clipboard utility found (tried wl-copy, xclip, xsel, pbcopy, clip)")

var tools = [][]string{
	{"wl-copy"},                          // Wayland
	{"xclip", "-selection", "clipboard"}, // X11
	{"xsel", "--clipboard", "--input"},   // X11
	{"pbcopy"},                           // macOS
	{"clip"},                             // Windows
}

// CopyText pipes text into the first clipboard tool that accepts it.
func CopyText(text string) error {
	for _, tool := range tools {
		if pipeTo(tool, text) {
			return nil
		}
	}
	return ErrNoClipboard
}

func pipeTo(tool []string, text string) bool {
	cmd := exec.Command(tool[0], tool[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run() == nil
}
