package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	data := []byte("asset payload")

	require.Equal(t, Sum(data), Sum([]byte("asset payload")))
	require.NotEqual(t, Sum(data), Sum([]byte("asset payloae")))
	require.NotEqual(t, uint64(0), Sum(data))
}
