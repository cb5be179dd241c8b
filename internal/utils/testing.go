package utils

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const preSleepDuration = 20 * time.Millisecond

// AssertNoMemoryLeak checks that at most maxAllocDelta bytes have been allocated since the passed
// memory stats have been collected. This function should be called at the end of a long test suite or test case.
func AssertNoMemoryLeak(t *testing.T, startStats *runtime.MemStats, maxAllocDelta uint64) {
	runtime.GC()
	time.Sleep(preSleepDuration)
	runtime.GC()

	memStats := new(runtime.MemStats)
	runtime.ReadMemStats(memStats)

	if startStats.Alloc > memStats.Alloc {
		return
	}

	delta := memStats.Alloc - startStats.Alloc
	if delta > maxAllocDelta {
		failureMsg := "memory leak"

		if delta > 1_000_000 {
			assert.FailNowf(t, failureMsg, "%d MB", delta/uint64(1_000_000))
		} else if delta > 1_000 {
			assert.FailNowf(t, failureMsg, "%d kB", delta/uint64(1_000))
		} else {
			assert.FailNowf(t, failureMsg, "%d B", delta)
		}
	}
}
