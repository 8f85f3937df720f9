// Package ui is the interactive pager: a scrollable terminal view over a
// rendered dump, with clipboard copy and vim-style navigation.
package ui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

const statusMessageDurationSec = 5

// Viewer displays a finished dump. It never touches the input bytes; it
// only scrolls over text the printer already produced.
type Viewer struct {
	app *tview.Application

	filename  string
	byteCount int
	// ansiDump is the colored rendering shown on screen; plainDump is the
	// uncolored rendering handed to the clipboard.
	ansiDump  string
	plainDump string

	dumpView  *tview.TextView
	topBar    *tview.TextView
	bottomBar *tview.TextView
	layout    *tview.Flex

	statusMessage string
	statusEnd     time.Time
}

// NewViewer creates a pager over the two renderings of one dump.
func NewViewer(filename string, byteCount int, ansiDump, plainDump string) *Viewer {
	return &Viewer{
		app:       tview.NewApplication(),
		filename:  filename,
		byteCount: byteCount,
		ansiDump:  ansiDump,
		plainDump: plainDump,
	}
}

// Run starts the pager and blocks until the user quits.
func (v *Viewer) Run() error {
	v.setupUI()
	v.app.SetInputCapture(v.handleInput)
	return v.app.SetRoot(v.layout, true).Run()
}

// showStatusMessage shows a temporary message in the bottom bar.
func (v *Viewer) showStatusMessage(msg string) {
	v.statusMessage = msg
	v.statusEnd = time.Now().Add(statusMessageDurationSec * time.Second)
	v.updateBottomBar()

	go func() {
		time.Sleep(statusMessageDurationSec * time.Second)
		v.app.QueueUpdateDraw(v.updateBottomBar)
	}()
}

func (v *Viewer) updateBottomBar() {
	if v.statusMessage != "" && time.Now().Before(v.statusEnd) {
		v.bottomBar.SetText(fmt.Sprintf(" [green]%s[white]", v.statusMessage))
		return
	}
	v.bottomBar.SetText(" [yellow]j/k[white] scroll  [yellow]g/G[white] top/bottom  [yellow]y[white] copy  [yellow]q[white] quit")
}
