package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffProgression(t *testing.T) {
	assert.Equal(t, 2*time.Second, Backoff(1))
	assert.Equal(t, 4*time.Second, Backoff(2))
	assert.Equal(t, 8*time.Second, Backoff(3))
	assert.Equal(t, 256*time.Second, Backoff(8))
}

func TestBackoffCap(t *testing.T) {
	for _, attempts := range []int{10, 15, 20} {
		assert.Equal(t, 600*time.Second, Backoff(attempts))
	}
}
