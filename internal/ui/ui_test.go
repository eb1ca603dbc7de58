package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/shoplist/internal/model"
)

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "×", ThemeByName("classic").SymDelete)
	assert.Equal(t, "◆", ThemeByName("NEON").SymBullet)
	assert.Equal(t, "x", ThemeByName("mono").SymDelete)
	assert.Equal(t, ThemeByName("classic").SymBullet, ThemeByName("unknown").SymBullet)
}

func TestListLines(t *testing.T) {
	th := ThemeByName("mono")

	lines := ListLines(th, nil)
	assert.Contains(t, lines[0], "Total 0")
	assert.Equal(t, "no items", lines[len(lines)-1])

	lines = ListLines(th, []model.Item{{ID: 1, Title: "Milk"}, {ID: 7, Title: "Eggs"}})
	assert.Contains(t, lines[0], "Total 2")
	assert.Len(t, lines, 4)
	assert.Equal(t, "  1. - Milk  x", lines[2])
	assert.Equal(t, "  7. - Eggs  x", lines[3])
}

func TestPanel(t *testing.T) {
	out := Panel(ThemeByName("mono"), []string{"Milk", "Eggs"})
	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 4)
	assert.True(t, strings.HasPrefix(rows[0], "+"))
	assert.Contains(t, rows[1], "Milk")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Milk", 10, "Milk"},
		{"Semi-skimmed milk", 10, "Semi-sk..."},
		{"Crème fraîche", 8, "Crème..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
	}
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	th := ThemeByName("mono")
	OK(&buf, th, "added")
	Fail(&buf, th, "boom")
	assert.Equal(t, "ok added\nerror: boom\n", buf.String())
}
