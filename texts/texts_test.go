package texts

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_Default_Personas(t *testing.T) {
	personas, err := DefaultPersonas()
	require.Nil(t, err)
	require.Contains(t, personas, "joe")
	require.Contains(t, personas, "clippy")

	joe := personas["joe"]
	assert.Equal(t, "joe", joe.ID)
	assert.Equal(t, 40, joe.ReplyMaxTokens)
	assert.Len(t, joe.Topics, 10)
	assert.Contains(t, joe.SystemReply, "{{language}}")

	clippy := personas["clippy"]
	assert.Len(t, clippy.Scenes, 10)
	assert.Contains(t, clippy.ImagePrompt, "{{scene}}")
	assert.NotEmpty(t, clippy.ImageAlt)
}

func Test_With_Vals(t *testing.T) {
	txt := NewTexts()
	res := txt.WithVals("reply-user.txt", map[string]string{"original": "gm everyone"})
	assert.True(t, strings.HasPrefix(res, `Original post: "gm everyone"`))
	assert.Equal(t, "", txt.Get("no-such-snippet.txt"))
}

func Test_Fill(t *testing.T) {
	res := Fill("{{a}} and {{b}} and {{a}}", map[string]string{"a": "x", "b": "y"})
	assert.Equal(t, "x and y and x", res)
	assert.Equal(t, "{{c}}", Fill("{{c}}", nil))
}
