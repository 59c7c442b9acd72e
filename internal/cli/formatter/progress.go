package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders part's share of whole as a bar like ████░░░░ 45%.
// A zero whole renders an empty bar.
func RenderShare(part, whole uint64, width int) string {
	if width < 2 {
		width = 2
	}

	var pct float64
	if whole > 0 {
		pct = float64(part) / float64(whole)
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	bar := StylePurple.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, pct*100)
}
