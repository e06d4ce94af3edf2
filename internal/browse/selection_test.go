package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	t.Run("no values", func(t *testing.T) {
		sel := ParseSelection(nil)
		assert.True(t, sel.Empty())
		assert.Equal(t, 0, sel.Len())
		assert.False(t, sel.Has(""))
		assert.Empty(t, sel.Names())
	})

	t.Run("duplicates collapse, order kept", func(t *testing.T) {
		sel := ParseSelection([]string{"Baker", "Adams", "Baker", "Cole"})
		assert.False(t, sel.Empty())
		assert.Equal(t, 3, sel.Len())
		assert.Equal(t, []string{"Baker", "Adams", "Cole"}, sel.Names())
	})

	t.Run("membership is exact", func(t *testing.T) {
		sel := ParseSelection([]string{"Baker"})
		assert.True(t, sel.Has("Baker"))
		assert.False(t, sel.Has("baker"))
	})

	t.Run("empty string is a valid author", func(t *testing.T) {
		sel := ParseSelection([]string{""})
		assert.False(t, sel.Empty())
		assert.True(t, sel.Has(""))
	})

	t.Run("names is a copy", func(t *testing.T) {
		sel := ParseSelection([]string{"Baker"})
		names := sel.Names()
		names[0] = "changed"
		assert.Equal(t, []string{"Baker"}, sel.Names())
	})
}
