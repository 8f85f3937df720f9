// Package dump renders a byte stream as a bordered, optionally colored
// hex dump: one line per window of input, with an address column, two hex
// panels and two text panels.
package dump

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ErichDonGubler/hexyl/internal/squeeze"
)

// readBufferSize is the chunk size used by PrintAll. Reading in chunks is
// purely an I/O measure; processing stays strictly per byte.
const readBufferSize = 256

// Printer is the stateful line renderer. It consumes bytes one at a time,
// accumulates them into lines, pads the final short line, collapses
// duplicate lines through a Squeezer, and frames the output with a header
// and footer. A Printer is single-use: one instance per dump, one writer.
type Printer struct {
	// idx is the 1-based index of the next input byte. It only ever
	// increases; addresses derive from it plus displayOffset.
	idx uint64
	// rawLine holds the bytes of the line in progress, cleared in place
	// at every line boundary.
	rawLine []byte
	// bufferLine holds the rendered text of the line in progress.
	bufferLine    bytes.Buffer
	writer        io.Writer
	showColor     bool
	borderStyle   BorderStyle
	headerPrinted bool
	byteHexTable  [256]string
	byteCharTable [256]string
	squeezer      *squeeze.Squeezer
	displayOffset uint64
	windowSize    WindowSize
}

// NewPrinter builds a printer writing to w. The hex and text cell for
// every byte value is rendered (and colored, when showColor is set) once
// here so the per-byte path is a table lookup.
func NewPrinter(w io.Writer, showColor bool, style BorderStyle, useSqueeze bool) *Printer {
	p := &Printer{
		idx:         1,
		writer:      w,
		showColor:   showColor,
		borderStyle: style,
		squeezer:    squeeze.New(useSqueeze),
		windowSize:  WindowSize{n: 16},
	}
	for i := 0; i < 256; i++ {
		hexText := fmt.Sprintf("%02x ", i)
		charText := string(Glyph(byte(i)))
		if showColor {
			c := byteColor(byte(i))
			hexText = c.Sprint(hexText)
			charText = c.Sprint(charText)
		}
		p.byteHexTable[i] = hexText
		p.byteCharTable[i] = charText
	}
	return p
}

// SetDisplayOffset adds offset to every printed address. It does not
// affect which bytes are read or how lines are split.
func (p *Printer) SetDisplayOffset(offset uint64) *Printer {
	p.displayOffset = offset
	return p
}

// SetWindowSize changes the line width. Must be called before the first
// byte is fed.
func (p *Printer) SetWindowSize(ws WindowSize) *Printer {
	p.windowSize = ws
	return p
}

// Header writes the top border, if the style has one.
func (p *Printer) Header() {
	if elems, ok := p.borderStyle.headerElements(); ok {
		p.printBorderLine(elems)
	}
}

// Footer writes the bottom border, if the style has one.
func (p *Printer) Footer() {
	if elems, ok := p.borderStyle.footerElements(); ok {
		p.printBorderLine(elems)
	}
}

func (p *Printer) printBorderLine(elems borderElements) {
	half := p.windowSize.Half()
	h := string(elems.horizontalLine)
	side := strings.Repeat(h, half)
	// Each hex panel is three columns per byte plus one shared column for
	// the divider, hence half*3+1.
	main := strings.Repeat(h, half*3+1)
	fmt.Fprintf(p.writer, "%c%s%c%s%c%s%c%s%c%s%c\n",
		elems.leftCorner, side, elems.columnSeparator,
		main, elems.columnSeparator, main, elems.columnSeparator,
		side, elems.columnSeparator, side, elems.rightCorner)
}

// printPositionIndicator opens a line with its address column. The header
// fires lazily here so that empty input still gets one (forced later by
// PrintAll) without ever printing it twice.
func (p *Printer) printPositionIndicator() {
	if !p.headerPrinted {
		p.Header()
		p.headerPrinted = true
	}

	addr := fmt.Sprintf("%0*x", p.windowSize.Half(), p.idx-1+p.displayOffset)
	if p.showColor {
		addr = colorOffset.Sprint(addr)
	}
	outer := p.borderStyle.outerSep()
	fmt.Fprintf(&p.bufferLine, "%c%s%c ", outer, addr, outer)
}

// PrintByte feeds one input byte. It buffers the byte's hex cell, tracks
// half and full line boundaries, and flushes the line to the writer when
// it completes. A non-nil error means the writer rejected the flush; the
// caller should stop feeding bytes.
func (p *Printer) PrintByte(b byte) error {
	half := uint64(p.windowSize.Half())
	full := uint64(p.windowSize.Full())

	if p.idx%full == 1 {
		p.printPositionIndicator()
	}

	p.bufferLine.WriteString(p.byteHexTable[b])
	p.rawLine = append(p.rawLine, b)

	p.squeezer.Process(full, b, p.idx)

	switch p.idx % full {
	case half:
		fmt.Fprintf(&p.bufferLine, "%c ", p.borderStyle.innerSep())
	case 0:
		if err := p.PrintTextLine(); err != nil {
			return err
		}
	}

	p.idx++
	return nil
}

// PrintTextLine completes the line in progress: pads a short trailing
// line to full width, appends the text panels, applies the squeeze
// decision and flushes to the writer. Called once per full line by
// PrintByte and once more at end of input for the remainder.
//
// With no line in progress it normally writes nothing; but if a squeezed
// run is still open it emits one address-only line so the dump's last
// offset marks the true end of input.
func (p *Printer) PrintTextLine() error {
	half := p.windowSize.Half()
	length := len(p.rawLine)
	outer := p.borderStyle.outerSep()
	inner := p.borderStyle.innerSep()

	if length == 0 {
		if p.squeezer.Active() {
			p.printPositionIndicator()
			fmt.Fprintf(&p.bufferLine, "%*s%c%*s%c%*s%c%*s%c\n",
				half*3, "", inner, half*3+1, "", outer,
				half, "", inner, half, "", outer)
			if _, err := p.writer.Write(p.bufferLine.Bytes()); err != nil {
				return err
			}
		}
		return nil
	}

	action := p.squeezer.LineAction()

	if action != squeeze.ActionDelete {
		// Pad the hex area. The inner divider sits at a fixed column, so a
		// line shorter than one panel supplies the divider itself while a
		// longer line already wrote it at the half boundary.
		if length < half {
			fmt.Fprintf(&p.bufferLine, "%*s%c%*s%c",
				3*(half-length), "", inner, half*3+1, "", outer)
		} else {
			fmt.Fprintf(&p.bufferLine, "%*s%c", 3*(half*2-length), "", outer)
		}

		for i, b := range p.rawLine {
			p.bufferLine.WriteString(p.byteCharTable[b])
			if i+1 == half {
				p.bufferLine.WriteRune(inner)
			}
		}

		if length < half {
			fmt.Fprintf(&p.bufferLine, "%*s%c%*s%c\n",
				half-length, "", inner, half, "", outer)
		} else {
			fmt.Fprintf(&p.bufferLine, "%*s%c\n", half*2-length, "", outer)
		}
	}

	switch action {
	case squeeze.ActionPrint:
		// First line of a duplicate run: replace the rendered line with a
		// placeholder of identical total width.
		p.bufferLine.Reset()
		asterisk := "*"
		if p.showColor {
			asterisk = colorOffset.Sprint(asterisk)
		}
		fmt.Fprintf(&p.bufferLine, "%c%s%*s%c%*s%c%*s%c%*s%c%*s%c\n",
			outer, asterisk, half-1, "", outer,
			half*3+1, "", inner, half*3+1, "", outer,
			half, "", inner, half, "", outer)
	case squeeze.ActionDelete:
		p.bufferLine.Reset()
	}

	if _, err := p.writer.Write(p.bufferLine.Bytes()); err != nil {
		return err
	}

	p.rawLine = p.rawLine[:0]
	p.bufferLine.Reset()

	p.squeezer.Advance()

	return nil
}

// PrintAll drains r through the printer and closes out the dump. Writer
// failures (broken pipe) stop the feed quietly; the final line, header
// and footer are still attempted best effort. Reader failures propagate.
func (p *Printer) PrintAll(r io.Reader) error {
	buf := make([]byte, readBufferSize)
mainloop:
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if p.PrintByte(b) != nil {
				break mainloop
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	// Finish the last line.
	_ = p.PrintTextLine()
	if !p.headerPrinted {
		p.Header()
	}
	p.Footer()

	return nil
}
