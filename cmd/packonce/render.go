package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/packonce/packonce/internal/checklist"
	"github.com/packonce/packonce/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	packedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func renderPackList(packs []model.Pack) string {
	if len(packs) == 0 {
		return mutedStyle.Render("No packs yet. Try: packonce new \"Tokyo Trip\" --template Trip") + "\n"
	}

	var b strings.Builder
	for i := range packs {
		pack := &packs[i]
		line := fmt.Sprintf("%s %s  %s  %d/%d packed (%d%%)",
			titleStyle.Render(pack.Name),
			tagStyle.Render("["+pack.TagDisplayName()+"]"),
			mutedStyle.Render(pack.Subtitle),
			pack.PackedQuantity(), pack.TotalQuantity(),
			int(pack.Progress()*100),
		)
		if pack.Pinned {
			line += "  " + mutedStyle.Render("(pinned)")
		}
		if count, ok := pack.LastMinuteAdds(); ok {
			line += "  " + badgeStyle.Render(fmt.Sprintf("%d last-minute", count))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderSections(pack *model.Pack, sections []checklist.Section) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(pack.Name) + " " + tagStyle.Render("["+pack.TagDisplayName()+"]") + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d packed (%d%%)",
		pack.PackedQuantity(), pack.TotalQuantity(), int(pack.Progress()*100))) + "\n\n")

	if len(sections) == 0 {
		b.WriteString(mutedStyle.Render("Nothing to show.") + "\n")
		return b.String()
	}

	for _, sec := range sections {
		b.WriteString(sectionStyle.Render(sec.Title) + "\n")
		for _, item := range sec.Items {
			line := fmt.Sprintf("[ ] %s (x%d)", item.Name, item.Quantity)
			if item.Packed {
				line = packedStyle.Render(fmt.Sprintf("[x] %s (x%d)", item.Name, item.Quantity))
			}
			if item.Note != "" {
				line += " " + mutedStyle.Render("— "+item.Note)
			}
			b.WriteString("  " + line + "\n")
		}
		if sec.HiddenPacked > 0 {
			b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("%d packed items hidden", sec.HiddenPacked)) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
