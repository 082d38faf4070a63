package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// RecordShipmentRequest body para POST /api/shipments (una línea de lote).
// component_usage es opcional: si viene, sustituye la expansión automática de
// la receta para esta llamada (ajuste manual del operador).
type RecordShipmentRequest struct {
	ProductCode    string               `json:"product_code"`
	ProductName    string               `json:"product_name"`
	BatchNumber    string               `json:"batch_number"`
	Quantity       decimal.Decimal      `json:"quantity"`
	Unit           string               `json:"unit,omitempty"`
	OutboundDate   *time.Time           `json:"outbound_date,omitempty"`
	Destination    string               `json:"destination,omitempty"`
	Operator       string               `json:"operator,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	ComponentUsage []ComponentUsageLine `json:"component_usage,omitempty"`
}

// ComponentUsageLine línea de consumo ajustada a mano.
type ComponentUsageLine struct {
	MaterialCode     string          `json:"material_code"`
	MaterialName     string          `json:"material_name,omitempty"`
	Class            string          `json:"class"`
	Unit             string          `json:"unit,omitempty"`
	ConsumedQuantity decimal.Decimal `json:"consumed_quantity"`
}

// RecordShipmentResponse respuesta de creación. warnings describe las líneas
// de consumo descartadas cuando hubo override con líneas malformadas (éxito
// parcial: el despacho se registró).
type RecordShipmentResponse struct {
	ShipmentID     string   `json:"shipment_id"`
	DerivedEntries int      `json:"derived_entries"`
	Warnings       []string `json:"warnings,omitempty"`
}

// ShipmentDTO representación de lectura de un despacho.
type ShipmentDTO struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	BatchNumber string          `json:"batch_number"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	Destination string          `json:"destination,omitempty"`
	Operator    string          `json:"operator,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FromShipments mapea entidades a DTOs.
func FromShipments(shipments []*entity.Shipment) []ShipmentDTO {
	out := make([]ShipmentDTO, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, ShipmentDTO{
			ID:          s.ID,
			ProductCode: s.ProductCode,
			ProductName: s.ProductName,
			BatchNumber: s.BatchNumber,
			Quantity:    s.Quantity,
			Unit:        s.Unit,
			Destination: s.Destination,
			Operator:    s.Operator,
			Notes:       s.Notes,
			Date:        s.Date,
			CreatedAt:   s.CreatedAt,
		})
	}
	return out
}

// RecordMovementRequest body para POST /api/ledger (movimiento directo).
type RecordMovementRequest struct {
	MaterialCode string          `json:"material_code"`
	MaterialName string          `json:"material_name"`
	Class        string          `json:"class"`
	Unit         string          `json:"unit,omitempty"`
	Direction    string          `json:"direction"`
	Quantity     decimal.Decimal `json:"quantity"`
	SecondaryKey string          `json:"secondary_key,omitempty"`
	Operator     string          `json:"operator,omitempty"`
	Date         *time.Time      `json:"date,omitempty"`
}
