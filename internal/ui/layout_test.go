package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLayoutContentHeight(t *testing.T) {
	assert.Equal(t, 22, NewLayout(80, 24).ContentHeight())
	assert.Equal(t, 0, NewLayout(80, 1).ContentHeight())
}

func TestRenderHeaderFillsWidth(t *testing.T) {
	l := NewLayout(60, 20)
	header := l.RenderHeader("Kronaut", "running")
	assert.Equal(t, 60, lipgloss.Width(header))
	assert.Contains(t, header, "Kronaut")
	assert.Contains(t, header, "running")
}

func TestRenderSteps(t *testing.T) {
	l := NewLayout(60, 20)
	out := l.RenderSteps([]string{"1 Time", "2 Task", "3 Review"}, 1)
	for _, label := range []string{"1 Time", "2 Task", "3 Review"} {
		assert.True(t, strings.Contains(out, label), label)
	}
}
