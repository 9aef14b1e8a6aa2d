package cache

import "fmt"

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Evictions     uint64
	Invalidations uint64
	Size          int
	Capacity      int
}

// Lookups is the total of hits and misses.
func (s Stats) Lookups() uint64 {
	return s.Hits + s.Misses
}

// HitRate returns hits over lookups, 0 when nothing was looked up.
func (s Stats) HitRate() float64 {
	total := s.Lookups()
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (s Stats) String() string {
	return fmt.Sprintf("hits=%d misses=%d hit_rate=%.1f%% evictions=%d invalidations=%d size=%d/%d",
		s.Hits, s.Misses, s.HitRate()*100, s.Evictions, s.Invalidations, s.Size, s.Capacity)
}
