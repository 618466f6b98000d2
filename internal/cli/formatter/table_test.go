package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"Name", "Count"},
		[][]string{
			{"short", "1"},
			{"much longer name", "22"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "short")
	assert.Contains(t, lines[3], "much longer name")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderSizeTable_SingleEntryHasNoTotalsRow(t *testing.T) {
	out := RenderSizeTable([]SizeEntry{
		{Path: "a.txt", OriginalBytes: 200, ConvertedBytes: 100},
	})
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "200 B")
	assert.Contains(t, out, "-50.0%")
	assert.NotContains(t, out, "total")
}

func TestRenderSizeTable_TotalsRow(t *testing.T) {
	out := RenderSizeTable([]SizeEntry{
		{Path: "a.txt", OriginalBytes: 100, ConvertedBytes: 150},
		{Path: "b.txt", OriginalBytes: 100, ConvertedBytes: 50},
	})
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "+50.0%")
	assert.Contains(t, out, "+0.0%")
}

func TestRenderSizeTable_ZeroOriginal(t *testing.T) {
	out := RenderSizeTable([]SizeEntry{
		{Path: "empty.txt", OriginalBytes: 0, ConvertedBytes: 10},
	})
	assert.Contains(t, out, "n/a")
}

func TestRenderSizeTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderSizeTable(nil))
}
