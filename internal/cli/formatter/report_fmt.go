package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tracker/internal/domain"
)

// NoTimeLoggedMessage is shown when the log holds no completed day.
const NoTimeLoggedMessage = "You have no time currently logged."

const reportFooter = "<==================================>"

// RenderReport renders the grand total followed by a section per week
// listing each day and the week's subtotal. Weeks and days are numbered
// from 1 in log order.
func RenderReport(agg domain.Aggregation) string {
	if agg.NoTimeLogged() {
		return NoTimeLoggedMessage
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("<====> Total time spent: %s <====>", DurationLabel(agg.Total))))
	b.WriteString("\n\n")

	for i, week := range agg.Weeks {
		b.WriteString("  ")
		b.WriteString(StyleBlue.Render(fmt.Sprintf("<===> Week %d Info <===>", i+1)))
		b.WriteString("\n")
		for j, day := range week {
			fmt.Fprintf(&b, "    Day %d ==> %s\n", j+1, StyleFg.Render(DurationLabel(day)))
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "    %s %s\n\n", Bold("Week Total ==>"), StyleGreen.Render(DurationLabel(week.Total())))
	}

	b.WriteString(StyleHeader.Render(reportFooter))
	return b.String()
}
