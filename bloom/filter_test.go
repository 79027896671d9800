package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/docnav/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndSeen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("/guides/getting-started"))

	f.Add("/guides/getting-started")

	assert.True(t, f.Seen("/guides/getting-started"))
	assert.False(t, f.Seen("/guides/deployment"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("/guides/a")
	f.Add("/guides/b")
	f.Add("/guides/c")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	href := "/guides/getting-started"

	f.Add(href)
	countAfterFirst := f.EstimatedCount()

	f.Add(href)
	f.Add(href)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Seen(href))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("/docs/added-%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Seen(fmt.Sprintf("/docs/notadded-%d", i)) {
			falsePositives++
		}
	}

	// Allow 3x headroom over the configured rate.
	maxAllowed := int(float64(testProbes) * fpRate * 3)
	assert.LessOrEqual(t, falsePositives, maxAllowed)
}
