package repository

import "github.com/jhoicas/Planta-api/internal/domain/entity"

// ShipmentRepository define el puerto de persistencia de despachos.
// Un despacho se crea una vez y nunca se actualiza.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	List(limit, offset int) ([]*entity.Shipment, error)
}
