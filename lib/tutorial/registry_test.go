package tutorial

import (
	"bytes"
	"testing"

	"github.com/learnopengl-go/learnopengl/lib/config"
	"github.com/learnopengl-go/learnopengl/lib/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownIDs(t *testing.T) {
	for _, id := range IDs() {
		tut, err := Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, tut.ID)
		assert.NotNil(t, tut.Setup, id)
	}
}

func TestLookupByName(t *testing.T) {
	tut, err := Lookup("hello_window_clear")
	require.NoError(t, err)
	assert.Equal(t, "1_1_2", tut.ID)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("9_9_9")
	assert.ErrorContains(t, err, `unknown tutorial id "9_9_9"`)

	_, err = Lookup("")
	assert.Error(t, err)
}

func TestIDsInCurriculumOrder(t *testing.T) {
	assert.Equal(t, []string{"1_1_1", "1_1_2", "1_2_1", "1_2_2", "1_3_1", "1_3_2", "1_3_3", "1_4_1"}, IDs())
}

func TestOnlyFirstChapterSkipsClear(t *testing.T) {
	for _, tut := range All() {
		assert.Equal(t, tut.ID != "1_1_1", tut.Clear, tut.ID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0] = nil
	assert.NotNil(t, All()[0])
}

func TestUsage(t *testing.T) {
	var b bytes.Buffer
	Usage(&b, "learnopengl")

	out := b.String()
	assert.Contains(t, out, "Call with the number of the tutorial.")
	assert.Contains(t, out, "`learnopengl 1_1_2`")
	for _, id := range IDs() {
		assert.Contains(t, out, id)
	}
}

func TestBackground(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, rendering.DarkBlue, background(cfg))

	cfg.ClearColour = "#ff000080"
	assert.Equal(t, rendering.Color{R: 1, G: 0, B: 0, A: float32(0x80) / 255}, background(cfg))
}

func TestWatchShadersDisabled(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, watchShaders(cfg, emptyScene{}))

	cfg.Shaders.HotReload = true
	assert.Nil(t, watchShaders(cfg, emptyScene{}))
}
