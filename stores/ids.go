package stores

import "time"

// nextID picks a fresh id for a new record. Ids follow the creation clock
// (millisecond timestamps) and are bumped past the largest existing id, so
// two records created within the same millisecond still get distinct ids.
func nextID(existing []int64, now time.Time) int64 {
	id := now.UnixMilli()
	var max int64
	for _, v := range existing {
		if v > max {
			max = v
		}
	}
	if id <= max {
		id = max + 1
	}
	return id
}
