package classroom

import (
	"github.com/uptrace/bun"
)

type Classroom struct {
	bun.BaseModel `bun:"table:classroom,alias:c"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	Name      string `bun:"name,notnull" json:"name"`
	DaycareID int    `bun:"daycare_id" json:"daycare_id"`
}

type UpdateRequest struct {
	Name      string `json:"name" validate:"required"`
	DaycareID int    `json:"daycare_id" validate:"required"`
}
