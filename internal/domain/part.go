package domain

import (
	"time"
)

// Part representa uma peça do catálogo (a Entidade principal).
// O estoque é controlado por combinação Peça x Cor (PartColorStock).
type Part struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku" validate:"required,max=64"` // Código único da peça
	Name        string    `json:"name" validate:"required,min=2,max=150"`
	Description string    `json:"description" validate:"max=1000"`
	Category    string    `json:"category" validate:"max=100"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PartFilter define os parâmetros de busca e paginação de peças.
type PartFilter struct {
	Page     int
	Limit    int
	Name     string
	SKU      string
	Category string
}

// Context é uma interface que encapsula o Go context.Context.
// É usado para propagar o timeout e sinais de cancelamento pelas camadas.
// Isso evita a dependência direta do pacote "context".
type Context interface{}
