package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// StockSnapshotDTO un grupo (material, clave secundaria) con sus totales.
type StockSnapshotDTO struct {
	MaterialCode string          `json:"material_code"`
	MaterialName string          `json:"material_name"`
	Class        string          `json:"class"`
	Unit         string          `json:"unit"`
	SecondaryKey string          `json:"secondary_key,omitempty"`
	TotalIn      decimal.Decimal `json:"total_in"`
	TotalOut     decimal.Decimal `json:"total_out"`
	Remaining    decimal.Decimal `json:"remaining"`
}

// FromStockSnapshots mapea snapshots de dominio a DTOs preservando el orden.
func FromStockSnapshots(snaps []entity.StockSnapshot) []StockSnapshotDTO {
	out := make([]StockSnapshotDTO, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, StockSnapshotDTO{
			MaterialCode: s.MaterialCode,
			MaterialName: s.MaterialName,
			Class:        s.Class,
			Unit:         s.Unit,
			SecondaryKey: s.SecondaryKey,
			TotalIn:      s.TotalIn,
			TotalOut:     s.TotalOut,
			Remaining:    s.Remaining,
		})
	}
	return out
}
