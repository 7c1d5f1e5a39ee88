package export

import (
	"fmt"
	"strings"

	"github.com/packonce/packonce/internal/checklist"
)

// RenderText renders a pack's sections as a plain-text checklist:
// a "{name} Checklist" header, a blank line, then each section title
// followed by one "[x] {name} (x{qty})" line per item, with the note
// appended after an em dash when present, and a blank line after every
// section. This is also the fallback when richer export fails.
func RenderText(packName string, sections []checklist.Section) string {
	var b strings.Builder

	b.WriteString(packName + " Checklist\n\n")

	for _, sec := range sections {
		b.WriteString(sec.Title + "\n")
		for _, item := range sec.Items {
			b.WriteString(itemLine(item.Packed, item.Name, item.Quantity, item.Note) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func itemLine(packed bool, name string, quantity int, note string) string {
	box := "[ ]"
	if packed {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s (x%d)", box, name, quantity)
	if note != "" {
		line += " — " + note
	}
	return line
}
