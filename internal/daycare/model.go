package daycare

import (
	"github.com/uptrace/bun"
)

type Daycare struct {
	bun.BaseModel `bun:"table:daycare,alias:d"`

	ID      int    `bun:"id,pk,autoincrement" json:"id"`
	Name    string `bun:"name,notnull" json:"name"`
	Address string `bun:"address" json:"address"`
	Phone   string `bun:"phone" json:"phone"`
	Email   string `bun:"email" json:"email"`
}

type UpdateRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required"`
}
