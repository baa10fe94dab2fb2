package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash, "哈希结果不应等于明文")

	assert.True(t, Verify("s3cret-password", hash))
	assert.False(t, Verify("wrong-password", hash))
	assert.False(t, Verify("s3cret-password", "not-a-hash"))
}
