package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// LedgerEntryDTO movimiento del libro en respuestas.
type LedgerEntryDTO struct {
	ID               string          `json:"id"`
	MaterialCode     string          `json:"material_code"`
	MaterialName     string          `json:"material_name"`
	Class            string          `json:"class"`
	Unit             string          `json:"unit"`
	Direction        string          `json:"direction"`
	Quantity         decimal.Decimal `json:"quantity"`
	SecondaryKey     string          `json:"secondary_key,omitempty"`
	SourceDocumentID string          `json:"source_document_id,omitempty"`
	Date             time.Time       `json:"date"`
	CreatedBy        string          `json:"created_by,omitempty"`
}

// FromLedgerEntries mapea movimientos de dominio a DTOs preservando el orden.
func FromLedgerEntries(entries []*entity.LedgerEntry) []LedgerEntryDTO {
	out := make([]LedgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, LedgerEntryDTO{
			ID:               e.ID,
			MaterialCode:     e.MaterialCode,
			MaterialName:     e.MaterialName,
			Class:            e.Class,
			Unit:             e.Unit,
			Direction:        e.Direction,
			Quantity:         e.Quantity,
			SecondaryKey:     e.SecondaryKey,
			SourceDocumentID: e.SourceDocumentID,
			Date:             e.Date,
			CreatedBy:        e.CreatedBy,
		})
	}
	return out
}
