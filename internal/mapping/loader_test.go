package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoji-generator/internal/diagnostic"
	"emoji-generator/internal/source"
)

func TestParse(t *testing.T) {
	content := `
# upstream emoji map
😀 happy joyful

🍉 西瓜 -watermelon
😀 smile
`

	f, err := Parse(source.FromString("upstream", content))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "upstream", f.Source)
	require.Len(t, f.Entries, 3)

	assert.Equal(t, "😀", f.Entries[0].Emoji)
	assert.Equal(t, []Token{Add("happy"), Add("joyful")}, f.Entries[0].Tokens)
	assert.Equal(t, 3, f.Entries[0].Line)

	assert.Equal(t, "🍉", f.Entries[1].Emoji)
	assert.Equal(t, []Token{Add("西瓜"), Remove("watermelon")}, f.Entries[1].Tokens)
	assert.Equal(t, 5, f.Entries[1].Line)

	assert.Equal(t, 6, f.Entries[2].Line)
	assert.True(t, f.Diagnostics.IsValid())
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   []int
	}{
		{
			name:    "emoji without words",
			content: "😀 happy\n🍉\n",
			lines:   []int{2},
		},
		{
			name:    "bare removal marker",
			content: "😀 happy -\n",
			lines:   []int{1},
		},
		{
			name:    "every bad line reported",
			content: "😀\n🍉 xigua\n🍓\n",
			lines:   []int{1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(source.FromString("local", tt.content))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrMalformedLine)

			require.Len(t, f.Diagnostics.Errors, len(tt.lines))
			for i, line := range tt.lines {
				assert.Equal(t, line, f.Diagnostics.Errors[i].Line)
				assert.Equal(t, diagnostic.CodeMalformedLine, f.Diagnostics.Errors[i].Code)
				assert.Equal(t, "local", f.Diagnostics.Errors[i].Source)
			}
		})
	}
}

func TestParseWarnsOnDenormalizedLine(t *testing.T) {
	f, err := Parse(source.FromString("local", "☕ cafe\u0301\n"))
	require.NoError(t, err)

	require.Len(t, f.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeNotNormalized, f.Diagnostics.Warnings[0].Code)
	assert.Equal(t, 1, f.Diagnostics.Warnings[0].Line)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emoji-map.txt")
	require.NoError(t, os.WriteFile(path, []byte("😀 -joyful excited\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Entries, 1)
	assert.Equal(t, []Token{Remove("joyful"), Add("excited")}, f.Entries[0].Tokens)

	missing, err := LoadFile(filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.Empty(t, missing.Entries)
}
