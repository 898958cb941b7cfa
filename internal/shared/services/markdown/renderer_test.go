package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis and lists",
			input:    "Use **waitForElementVisible**:\n\n- step one\n- step two",
			contains: []string{"<strong>waitForElementVisible</strong>", "<li>step one</li>"},
		},
		{
			name:     "fenced code keeps language class",
			input:    "```groovy\nWebUI.click(findTestObject('btn'))\n```",
			contains: []string{`<code class="language-groovy">`},
		},
		{
			name:     "gfm table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "script is stripped",
			input:    "hello <script>alert(1)</script>",
			contains: []string{"hello"},
			excludes: []string{"<script"},
		},
		{
			name:     "javascript links are dropped",
			input:    "[click](javascript:alert(1))",
			excludes: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.input)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, bad := range tt.excludes {
				assert.NotContains(t, out, bad)
			}
		})
	}
}

func TestRender_Empty(t *testing.T) {
	out, err := NewRenderer().Render("")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
