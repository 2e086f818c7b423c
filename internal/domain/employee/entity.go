package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	PIN       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
