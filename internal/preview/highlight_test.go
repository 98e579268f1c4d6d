package preview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightPreservesLineCountAndText(t *testing.T) {
	lines := []string{"package main", "", "func main() {}"}
	styled := Highlight("main.go", lines, tcell.StyleDefault)

	require.Len(t, styled, len(lines))
	for i, l := range styled {
		assert.Equal(t, lines[i], l.Text())
	}
}

func TestHighlightUnknownFileStaysPlain(t *testing.T) {
	lines := []string{"no recognizable structure here"}
	styled := Highlight("data.xyzzy", lines, tcell.StyleDefault)

	require.Len(t, styled, 1)
	assert.Equal(t, lines[0], styled[0].Text())
}

func TestPlain(t *testing.T) {
	styled := Plain([]string{"a", "b"}, tcell.StyleDefault)
	require.Len(t, styled, 2)
	assert.Equal(t, "a", styled[0].Text())
	assert.Equal(t, "b", styled[1].Text())
}
