// Package idgen generates identifiers for issues and timeline events.
package idgen

import (
	"fmt"
	"sync"
	"time"
)

var (
	mu       sync.Mutex
	lastSec  int64
	lastNsec int64
)

// New returns a unique identifier derived from a clock reading. The string
// is the seconds and nanoseconds of the reading concatenated as decimal
// digits; this representation is load-bearing for stored collections and
// must not change. Readings are clamped to be strictly increasing
// process-wide, so rapid successive calls within one clock tick still
// produce distinct ids.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	sec, nsec := now.Unix(), int64(now.Nanosecond())
	if sec < lastSec || (sec == lastSec && nsec <= lastNsec) {
		sec, nsec = lastSec, lastNsec+1
		if nsec >= int64(time.Second/time.Nanosecond) {
			sec, nsec = sec+1, 0
		}
	}
	lastSec, lastNsec = sec, nsec
	return fmt.Sprintf("%d%d", sec, nsec)
}
