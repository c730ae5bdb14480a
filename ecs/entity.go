package ecs

import "strconv"

// Entity is a handle into a World. Ids start at 1 and are never recycled,
// so a stale handle can never alias a newer entity.
type Entity uint64

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}
