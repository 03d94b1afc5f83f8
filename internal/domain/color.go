package domain

import (
	"time"
)

// Color representa uma cor disponível para as peças.
type Color struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	HexCode   string    `json:"hex_code" validate:"omitempty,hexcolor"` // Ex: "#FF0000"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
