package formatter

import (
	"fmt"
)

// SizeEntry compares one input's original directive text against its
// converted rendering.
type SizeEntry struct {
	Path           string
	OriginalBytes  int
	ConvertedBytes int
}

// RenderSizeTable renders a byte-size comparison table with a per-file
// change percentage and a totals row.
func RenderSizeTable(entries []SizeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	headers := []string{"File", "Original", "Converted", "Change"}
	rows := make([][]string, 0, len(entries)+1)

	totalOrig, totalConv := 0, 0
	for _, e := range entries {
		totalOrig += e.OriginalBytes
		totalConv += e.ConvertedBytes
		rows = append(rows, []string{
			e.Path,
			fmt.Sprintf("%d B", e.OriginalBytes),
			fmt.Sprintf("%d B", e.ConvertedBytes),
			changePct(e.OriginalBytes, e.ConvertedBytes),
		})
	}

	if len(entries) > 1 {
		rows = append(rows, []string{
			StyleBold.Render("total"),
			fmt.Sprintf("%d B", totalOrig),
			fmt.Sprintf("%d B", totalConv),
			changePct(totalOrig, totalConv),
		})
	}

	return RenderTable(headers, rows)
}

func changePct(orig, conv int) string {
	if orig == 0 {
		return "n/a"
	}
	pct := float64(conv-orig) / float64(orig) * 100
	s := fmt.Sprintf("%+.1f%%", pct)
	if pct < 0 {
		return StyleGreen.Render(s)
	}
	if pct > 0 {
		return StyleYellow.Render(s)
	}
	return Dim(s)
}
