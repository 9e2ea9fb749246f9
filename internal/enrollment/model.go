package enrollment

import (
	"github.com/uptrace/bun"
)

// Enrollment links a child to a parent. Duplicate (child_id, parent_id)
// pairs are allowed; no uniqueness constraint exists.
type Enrollment struct {
	bun.BaseModel `bun:"table:enrollment,alias:e"`

	ID       int `bun:"id,pk,autoincrement" json:"id"`
	ChildID  int `bun:"child_id" json:"child_id"`
	ParentID int `bun:"parent_id" json:"parent_id"`
}

type UpdateRequest struct {
	ChildID  int `json:"child_id" validate:"required"`
	ParentID int `json:"parent_id" validate:"required"`
}
