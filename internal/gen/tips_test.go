package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"emoji-generator/internal/source"
)

func TestRenderTipsFromEmpty(t *testing.T) {
	we := wordTable(
		[]string{"xigua", "🍉"},
		[]string{"caomei", "🍓"},
	)

	res := RenderTips(we, source.FromString("tips", ""), DefaultTipPrefix)

	assert.Equal(t, "表情：🍉\txigua\n表情：🍓\tcaomei\n", string(res.Content))
	assert.Equal(t, 2, res.Generated)
	assert.Equal(t, 0, res.Preserved)
}

func TestRenderTipsPrecedence(t *testing.T) {
	we := wordTable(
		[]string{"xigua", "🍉"},
		[]string{"caomei", "🍓"},
	)

	existing := "水果：西瓜\txigua\n表情：🍓\tcaomei\n表情：🍌\told\n"

	res := RenderTips(we, source.FromString("tips", existing), DefaultTipPrefix)

	assert.Equal(t, "水果：西瓜\txigua\n表情：🍓\tcaomei\n", string(res.Content))
	assert.Equal(t, 1, res.Preserved)
	assert.Equal(t, 1, res.Generated)
}

func TestRenderTipsUsesPreferredEmoji(t *testing.T) {
	we := wordTable([]string{"fruit", "🍓", "🍉"})

	res := RenderTips(we, source.FromString("tips", ""), DefaultTipPrefix)

	assert.Equal(t, "表情：🍓\tfruit\n", string(res.Content))
}

func TestRenderTipsSortsWholeFile(t *testing.T) {
	we := wordTable([]string{"b", "🅱️"})

	existing := "z last\n\nA first\r\n   \n"

	res := RenderTips(we, source.FromString("tips", existing), DefaultTipPrefix)

	assert.Equal(t, "   \nA first\nz last\n表情：🅱️\tb\n", string(res.Content))
	assert.Equal(t, 3, res.Preserved)
}

func TestRenderTipsSortsTerminatedLines(t *testing.T) {
	we := wordTable([]string{"xigua", "🍉"})

	res := RenderTips(we, source.FromString("tips", "abc\nabc\tdef\n"), DefaultTipPrefix)

	assert.Equal(t, "abc\tdef\nabc\n表情：🍉\txigua\n", string(res.Content))
}

func TestRenderTipsCustomPrefix(t *testing.T) {
	we := wordTable([]string{"xigua", "🍉"})

	res := RenderTips(we, source.FromString("tips", "emoji:🍌\told\n"), "emoji:")

	assert.Equal(t, "emoji:🍉\txigua\n", string(res.Content))
}
