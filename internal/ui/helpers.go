package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"writewise/internal/session"
)

// WrappedLineCount returns how many terminal rows value occupies when
// soft-wrapped at width columns.
func WrappedLineCount(value string, width int) int {
	if width <= 0 {
		return 1
	}
	lines := strings.Split(value, "\n")
	if len(lines) == 0 {
		return 1
	}
	count := 0
	for _, line := range lines {
		w := runewidth.StringWidth(line)
		if w == 0 {
			count++
			continue
		}
		count += (w-1)/width + 1
	}
	return count
}

func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// FormatStats renders input statistics for the status line.
func FormatStats(st session.Stats) string {
	unit := "words"
	if st.Words == 1 {
		unit = "word"
	}
	return fmt.Sprintf("%d %s · %d chars · %d min read", st.Words, unit, st.Chars, st.ReadTime)
}

func (m *Model) SyncToolViewportScroll() {
	const itemHeight = 1
	const headerHeight = 1

	var currentY int
	var lastCategory string
	for i, d := range m.Tools {
		itemStartY := currentY

		if d.Category != lastCategory {
			if lastCategory != "" {
				currentY++ // spacer
			}
			// the header belongs to the first item of its category
			itemStartY = currentY
			currentY += headerHeight
			lastCategory = d.Category
		}

		if i == m.SelectedToolIndex {
			if currentY+itemHeight > m.ToolViewport.YOffset+m.ToolViewport.Height {
				m.ToolViewport.SetYOffset(currentY + itemHeight - m.ToolViewport.Height)
			}
			if itemStartY < m.ToolViewport.YOffset {
				m.ToolViewport.SetYOffset(itemStartY)
			}
			break
		}
		currentY += itemHeight
	}
}
