package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tracker/internal/domain"
)

const shareBarWidth = 10

// NoLedgerEntriesMessage is shown for an empty description ledger.
const NoLedgerEntriesMessage = "No ledger entries yet."

// RenderLedgerSummary renders per-description totals, each with its share
// of the grand total, followed by the grand total.
func RenderLedgerSummary(summary domain.LedgerSummary) string {
	if len(summary.Totals) == 0 {
		return NoLedgerEntriesMessage
	}

	rows := make([][]string, 0, len(summary.Totals))
	for _, dt := range summary.Totals {
		rows = append(rows, []string{
			dt.Description,
			DurationLabel(dt.SpentMs),
			strconv.Itoa(dt.Entries),
			RenderShare(dt.SpentMs, summary.Total, shareBarWidth),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"DESCRIPTION", "TIME SPENT", "ENTRIES", "SHARE"}, rows))
	b.WriteString("\n")
	b.WriteString(Bold("Total: ") + StyleGreen.Render(DurationLabel(summary.Total)))
	return RenderBox("Ledger", b.String())
}

// RenderLedgerEntries lists ledger entries oldest first.
func RenderLedgerEntries(entries []*domain.LedgerEntry, now time.Time) string {
	if len(entries) == 0 {
		return NoLedgerEntriesMessage
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			TruncID(e.ID),
			HumanDateFrom(e.EnteredAt().In(now.Location()), now),
			DurationLabel(e.SpentMs),
			SourceColor(string(e.Source)).Render(string(e.Source)),
			e.Description,
		})
	}
	return RenderTable([]string{"ID", "ENTERED", "SPENT", "SOURCE", "DESCRIPTION"}, rows)
}
