package domain

import "time"

// Resource represents a bookable capacity-limited resource (table, room, box)
type Resource struct {
	ID         int64
	BusinessID int64
	Name       string
	Capacity   int
	CreatedAt  time.Time
}

// CanFit returns true if the party fits into the resource capacity
func (r *Resource) CanFit(partySize int) bool {
	return partySize <= r.Capacity
}
