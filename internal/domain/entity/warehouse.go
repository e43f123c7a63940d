package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
