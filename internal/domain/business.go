package domain

import "time"

// Business represents a business owning bookable resources
type Business struct {
	ID        int64
	Name      string
	Type      string
	CreatedAt time.Time
}
