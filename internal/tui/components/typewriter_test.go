package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphemesKeepCombiningMarks(t *testing.T) {
	t.Parallel()

	// "دِل" carries a kasra on the first letter.
	g := Graphemes("دِل")
	require.Len(t, g, 2)
	assert.Equal(t, "دِ", g[0])
	assert.Equal(t, "ل", g[1])
}

func TestTypewriterAdvancesOnOwnTicks(t *testing.T) {
	t.Parallel()

	tw := NewTypewriter("abc", 10*time.Millisecond)
	tw.Cursor = ""
	require.NotNil(t, tw.Tick())
	assert.Equal(t, "", tw.View())

	other := NewTypewriter("xyz", 10*time.Millisecond)
	tw, cmd := tw.Update(TypewriterTickMsg{ID: other.ID()})
	assert.Nil(t, cmd)
	assert.Equal(t, "", tw.Visible())

	for i := 0; i < 3; i++ {
		tw, cmd = tw.Update(TypewriterTickMsg{ID: tw.ID(), tag: tw.tag})
	}
	assert.Equal(t, "abc", tw.View())
	assert.True(t, tw.Done())
	assert.Nil(t, cmd)
}

func TestTypewriterSetTextIgnoresStaleTicks(t *testing.T) {
	t.Parallel()

	tw := NewTypewriter("old", 10*time.Millisecond)
	stale := TypewriterTickMsg{ID: tw.ID(), tag: tw.tag}

	tw = tw.SetText("new text")
	tw, _ = tw.Update(stale)

	assert.Equal(t, "", tw.Visible())
	assert.Equal(t, "new text", tw.Text())

	for i := 0; i < 3; i++ {
		tw, _ = tw.Update(TypewriterTickMsg{ID: tw.ID(), tag: tw.tag})
	}
	assert.Equal(t, "new", tw.Visible())
}

func TestTypewriterWithoutSpeedShowsEverything(t *testing.T) {
	t.Parallel()

	tw := NewTypewriter("verse", 0)
	assert.True(t, tw.Done())
	assert.Nil(t, tw.Tick())
	assert.Equal(t, "verse", tw.Visible())

	tw = tw.SetText("another")
	assert.Equal(t, "another", tw.Visible())
}
