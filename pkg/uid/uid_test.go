package uid

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LengthAndCharset(t *testing.T) {
	t.Parallel()

	id := New()
	require.Len(t, id, Length)
	assert.True(t, Validate(id), "生成的ID应当通过校验: %s", id)
}

func TestNew_Unique(t *testing.T) {
	t.Parallel()

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := New()
		_, dup := seen[id]
		require.False(t, dup, "出现重复ID: %s", id)
		seen[id] = struct{}{}
	}
}

func TestNew_SortableByCreationOrder(t *testing.T) {
	t.Parallel()

	const n = 1000
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, New())
	}
	assert.True(t, sort.StringsAreSorted(ids), "按生成顺序的ID应当非递减")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"合法ID", New(), true},
		{"空字符串", "", false},
		{"长度不足", "0123456789abcdef", false},
		{"含大写字母", "0123456789ABCDEF0123456789abcdef", false},
		{"含非十六进制字符", "0123456789abcdeg0123456789abcdef", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Validate(tc.in))
		})
	}
}
