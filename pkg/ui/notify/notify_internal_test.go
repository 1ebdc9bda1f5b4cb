package notify

import (
	"strings"
	"testing"
	"time"

	fcolor "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatKeepsColourCodesOnTheLine(t *testing.T) {
	t.Parallel()

	colour := fcolor.New(fcolor.FgGreen)
	colour.EnableColor()

	got := format(
		Message{Type: SuccessType, Content: "generated %d components", Args: []any{2}, Elapsed: time.Second},
		style{symbol: "✔ ", color: colour},
	)

	lines := strings.SplitAfter(got, "\n")
	assert.Len(t, lines, 3)
	assert.Empty(t, lines[2])

	for _, line := range lines[:2] {
		assert.True(t, strings.HasPrefix(line, "\x1b[32m"), "line %q starts with the colour code", line)
		assert.True(t, strings.HasSuffix(line, "m\n"), "line %q resets the colour before the newline", line)
	}

	assert.Contains(t, lines[0], "✔ generated 2 components")
	assert.Contains(t, lines[1], "⏲ 1s")
}
