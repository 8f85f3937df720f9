package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ErichDonGubler/hexyl/pkg/clipboard"
)

// handleInput is the global key handler. Arrow and page keys fall through
// to the text view's own scrolling.
func (v *Viewer) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.app.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			v.app.Stop()
			return nil
		case 'j':
			row, col := v.dumpView.GetScrollOffset()
			v.dumpView.ScrollTo(row+1, col)
			return nil
		case 'k':
			row, col := v.dumpView.GetScrollOffset()
			if row > 0 {
				v.dumpView.ScrollTo(row-1, col)
			}
			return nil
		case 'g':
			v.dumpView.ScrollToBeginning()
			return nil
		case 'G':
			v.dumpView.ScrollToEnd()
			return nil
		case 'y':
			if err := clipboard.CopyText(v.plainDump); err != nil {
				v.showStatusMessage("copy failed: " + err.Error())
			} else {
				v.showStatusMessage("dump copied to clipboard")
			}
			return nil
		}
	}
	return event
}
