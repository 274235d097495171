package domain

import "time"

type BrandStatus string

const (
	BrandStatusActive   BrandStatus = "active"
	BrandStatusInactive BrandStatus = "inactive"
)

// Brand representa uma marca da plataforma com integrações de anúncios
type Brand struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Status    BrandStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
