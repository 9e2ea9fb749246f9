package child

import (
	"github.com/uptrace/bun"
)

type Child struct {
	bun.BaseModel `bun:"table:child,alias:ch"`

	ID          int    `bun:"id,pk,autoincrement" json:"id"`
	Name        string `bun:"name,notnull" json:"name"`
	DateOfBirth string `bun:"date_of_birth,type:date" json:"date_of_birth"`
	ClassroomID *int   `bun:"classroom_id" json:"classroom_id"`
	DaycareID   int    `bun:"daycare_id" json:"daycare_id"`
}

// ClassroomID stays optional: a child can be enrolled at a daycare without
// a classroom assignment, and removing a classroom detaches its children.
type UpdateRequest struct {
	Name        string `json:"name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	ClassroomID *int   `json:"classroom_id"`
	DaycareID   int    `json:"daycare_id" validate:"required"`
}
