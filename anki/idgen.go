package anki

import "time"

// nextID returns the smallest id >= the current Unix time in milliseconds
// for which exists reports false. Ids allocated later in the same session
// therefore sort after earlier ones, matching the host format's convention
// of time-ordered identifiers.
//
// Termination relies on exists being backed by a finite id set; a
// pathological predicate that reports true for every id would loop forever.
func nextID(exists func(int64) bool) int64 {
	id := time.Now().UnixMilli()
	for exists(id) {
		id++
	}
	return id
}
