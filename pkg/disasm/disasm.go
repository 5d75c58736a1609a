// Package disasm renders raw ROM images as instruction listings, reusing
// the decoder and mnemonic formatting of the machine's trace descriptors.
// The decode is sequential; data bytes interleaved with code simply come
// out as DB lines.
package disasm

import (
	"fmt"
	"io"

	"github.com/paulomarruda/ziggy8/pkg/chip8"
)

// Line is one decoded word (or trailing byte) of a ROM image.
type Line struct {
	Addr uint16
	Word chip8.Opcode
	Text string
}

func (l Line) String() string {
	return fmt.Sprintf("0x%04X: %04X  %s", l.Addr, uint16(l.Word), l.Text)
}

// Program decodes a ROM image into lines, addressed as the machine would
// see them after loading at the program base.
func Program(rom []byte) []Line {
	lines := make([]Line, 0, (len(rom)+1)/2)
	for off := 0; off < len(rom); off += 2 {
		addr := chip8.ProgramBase + uint16(off)
		if off+1 >= len(rom) {
			lines = append(lines, Line{
				Addr: addr,
				Word: chip8.Opcode(rom[off]) << 8,
				Text: fmt.Sprintf("DB 0x%02X", rom[off]),
			})
			break
		}
		word := chip8.Opcode(rom[off])<<8 | chip8.Opcode(rom[off+1])
		line := Line{Addr: addr, Word: word}
		if tr, ok := chip8.Describe(addr, word); ok {
			line.Text = tr.String()
		} else {
			line.Text = fmt.Sprintf("DB 0x%02X, 0x%02X", rom[off], rom[off+1])
		}
		lines = append(lines, line)
	}
	return lines
}

// Fprint writes the full listing for a ROM image to w.
func Fprint(w io.Writer, rom []byte) error {
	for _, line := range Program(rom) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
