package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []int{1, 4, 9}, MapSlice([]int{1, 2, 3}, func(i int) int { return i * i }))

	out := MapSlice[int, string](nil, strconv.Itoa)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestIndexBy_LastWriteWins(t *testing.T) {
	type fb struct{ msg, kind string }
	idx := IndexBy([]fb{{"M1", "good"}, {"", "bad"}, {"M1", "bad"}, {"M2", "good"}}, func(f fb) string { return f.msg })

	assert.Len(t, idx, 2)
	assert.Equal(t, "bad", idx["M1"].kind)
	assert.Equal(t, "good", idx["M2"].kind)
}
