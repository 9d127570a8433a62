package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/journal/pkg/cleanup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanUp(t *testing.T) {
	var order []string
	errRedis := errors.New("redis gone")
	cleanup.Register(&cleanup.Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "redis", F: func() error {
		order = append(order, "redis")
		return errRedis
	}})

	err := cleanup.CleanUp()
	require.Error(t, err)
	assert.ErrorIs(t, err, errRedis)
	assert.Equal(t, []string{"redis", "pool"}, order)

	assert.NoError(t, cleanup.CleanUp())
	assert.Len(t, order, 2)
}
