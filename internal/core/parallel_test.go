package core

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionCoversEveryIndexOnce(t *testing.T) {
	for _, tc := range []struct{ n, workers int }{
		{1, 1}, {64, 1}, {64, 4}, {64, 7}, {64, 64}, {64, 200}, {1024, 12}, {5, 0},
	} {
		t.Run(fmt.Sprintf("n=%d/workers=%d", tc.n, tc.workers), func(t *testing.T) {
			seen := make([]int, tc.n)
			var mu sync.Mutex
			var ranges [][2]int
			err := Partition(tc.n, tc.workers, func(lo, hi int) error {
				for i := lo; i < hi; i++ {
					seen[i]++
				}
				mu.Lock()
				ranges = append(ranges, [2]int{lo, hi})
				mu.Unlock()
				return nil
			})
			require.NoError(t, err)
			for i, c := range seen {
				assert.Equal(t, 1, c, "index %d", i)
			}

			want := tc.workers
			if want < 1 {
				want = 1
			}
			if want > tc.n {
				want = tc.n
			}
			assert.Len(t, ranges, want)
			for _, r := range ranges {
				assert.Less(t, r[0], r[1], "ranges are never empty")
			}
		})
	}
}

func TestPartitionIsStatic(t *testing.T) {
	collect := func() map[int]int {
		var mu sync.Mutex
		out := map[int]int{}
		_ = Partition(100, 6, func(lo, hi int) error {
			mu.Lock()
			out[lo] = hi
			mu.Unlock()
			return nil
		})
		return out
	}
	assert.Equal(t, collect(), collect())
	assert.Equal(t, map[int]int{0: 17, 17: 34, 34: 51, 51: 68, 68: 84, 84: 100}, collect())
}

func TestPartitionReturnsWorkerError(t *testing.T) {
	boom := errors.New("boom")
	err := Partition(10, 3, func(lo, hi int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	assert.True(t, errors.Is(err, boom))
	assert.NoError(t, Partition(0, 3, func(int, int) error { return boom }))
}
