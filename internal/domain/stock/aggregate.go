package stock

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// Agregación de stock sobre el libro de movimientos (servicio de dominio).
//
// El grupo es la clave compuesta (material, clave secundaria): contenedores
// distintos del mismo material nunca se fusionan. El resultado es
// determinista: mismo libro, mismo snapshot, bit a bit.

// Aggregate agrupa movimientos por (MaterialCode, SecondaryKey) y suma
// entradas y salidas. Remaining = TotalIn - TotalOut (ley de conservación).
// Devuelve los grupos en orden canónico ascendente por clave compuesta.
func Aggregate(entries []*entity.LedgerEntry) []entity.StockSnapshot {
	type key struct{ code, secondary string }
	groups := make(map[key]*entity.StockSnapshot)
	for _, e := range entries {
		k := key{e.MaterialCode, e.SecondaryKey}
		s, ok := groups[k]
		if !ok {
			s = &entity.StockSnapshot{
				MaterialCode: e.MaterialCode,
				MaterialName: e.MaterialName,
				Class:        e.Class,
				Unit:         e.Unit,
				SecondaryKey: e.SecondaryKey,
				TotalIn:      decimal.Zero,
				TotalOut:     decimal.Zero,
			}
			groups[k] = s
		}
		switch e.Direction {
		case entity.DirectionIn:
			s.TotalIn = s.TotalIn.Add(e.Quantity)
		case entity.DirectionOut:
			s.TotalOut = s.TotalOut.Add(e.Quantity)
		}
	}

	snaps := make([]entity.StockSnapshot, 0, len(groups))
	for _, s := range groups {
		s.Remaining = s.TotalIn.Sub(s.TotalOut)
		snaps = append(snaps, *s)
	}
	sort.Slice(snaps, func(i, j int) bool { return keyLess(snaps[i], snaps[j]) })
	return snaps
}

// SortDefault ordena in place para presentación: Remaining descendente,
// empates por clave compuesta ascendente (nunca orden de inserción).
func SortDefault(snaps []entity.StockSnapshot) {
	sort.SliceStable(snaps, func(i, j int) bool {
		if !snaps[i].Remaining.Equal(snaps[j].Remaining) {
			return snaps[i].Remaining.GreaterThan(snaps[j].Remaining)
		}
		return keyLess(snaps[i], snaps[j])
	})
}

// WithoutExhausted descarta los grupos con Remaining <= 0 (modo por defecto).
// El modo "incluir agotados" para auditoría consiste en no llamar este filtro.
func WithoutExhausted(snaps []entity.StockSnapshot) []entity.StockSnapshot {
	out := make([]entity.StockSnapshot, 0, len(snaps))
	for _, s := range snaps {
		if s.Remaining.GreaterThan(decimal.Zero) {
			out = append(out, s)
		}
	}
	return out
}

// LowStock aplica la política de alertas: grupos con Remaining < threshold
// (desigualdad estricta: Remaining == threshold no alerta), ordenados
// ascendente por Remaining (más urgente primero) y acotados a limit.
// El umbral es un número global compartido entre clases y unidades.
func LowStock(snaps []entity.StockSnapshot, threshold decimal.Decimal, limit int) []entity.StockSnapshot {
	flagged := make([]entity.StockSnapshot, 0, len(snaps))
	for _, s := range snaps {
		if s.Remaining.LessThan(threshold) {
			flagged = append(flagged, s)
		}
	}
	sort.SliceStable(flagged, func(i, j int) bool {
		if !flagged[i].Remaining.Equal(flagged[j].Remaining) {
			return flagged[i].Remaining.LessThan(flagged[j].Remaining)
		}
		return keyLess(flagged[i], flagged[j])
	})
	if limit > 0 && len(flagged) > limit {
		flagged = flagged[:limit]
	}
	return flagged
}

func keyLess(a, b entity.StockSnapshot) bool {
	if a.MaterialCode != b.MaterialCode {
		return a.MaterialCode < b.MaterialCode
	}
	return a.SecondaryKey < b.SecondaryKey
}
