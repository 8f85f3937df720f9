package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// setupUI creates and arranges all pager components.
func (v *Viewer) setupUI() {
	// Keep the terminal's own background.
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorDefault
	tview.Styles.ContrastBackgroundColor = tcell.ColorDefault

	v.createComponents()
	v.createLayout()
}

func (v *Viewer) createComponents() {
	v.topBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(fmt.Sprintf("[::b] %s (%d bytes) [-:-:-]", v.filename, v.byteCount))

	v.dumpView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	// ANSIWriter translates the printer's escape sequences into tview
	// color tags, so the pager shows exactly what stdout would.
	fmt.Fprint(tview.ANSIWriter(v.dumpView), v.ansiDump)
	v.dumpView.ScrollToBeginning()

	v.bottomBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	v.updateBottomBar()
}

// createLayout stacks the bars around the dump view.
func (v *Viewer) createLayout() {
	v.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.topBar, 1, 0, false).
		AddItem(v.dumpView, 0, 1, true).
		AddItem(v.bottomBar, 1, 0, false)
}
