package parent

import (
	"github.com/uptrace/bun"
)

type Parent struct {
	bun.BaseModel `bun:"table:parent,alias:p"`

	ID    int    `bun:"id,pk,autoincrement" json:"id"`
	Name  string `bun:"name,notnull" json:"name"`
	Phone string `bun:"phone" json:"phone"`
	Email string `bun:"email" json:"email"`
}

type UpdateRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required"`
}
