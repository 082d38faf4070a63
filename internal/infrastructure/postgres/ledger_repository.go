package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implementación del libro sobre PostgreSQL (usable con pool o tx).
// La tabla ledger_entries está particionada por lista sobre material_class
// (raw/auxiliary/finished); las consultas del adaptador no dependen de eso,
// Postgres enruta por la clave de partición.
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

const ledgerColumns = `id, material_code, material_name, material_class, unit, direction, quantity, secondary_key, source_document_id, date, created_at, created_by`

// Create persiste un movimiento del libro. No existe Update: el libro es append-only.
func (r *LedgerEntryRepo) Create(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	sourceDoc := (*string)(nil)
	if entry.SourceDocumentID != "" {
		sourceDoc = &entry.SourceDocumentID
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.MaterialCode, entry.MaterialName, entry.Class, entry.Unit,
		entry.Direction, entry.Quantity, entry.SecondaryKey, sourceDoc,
		entry.Date, entry.CreatedAt, entry.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *LedgerEntryRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`
	entry, err := scanEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return entry, nil
}

// ListByMaterial lista los movimientos de un material, fecha descendente.
func (r *LedgerEntryRepo) ListByMaterial(materialCode string, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries WHERE material_code = $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, materialCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list by material: %w", err)
	}
	return collectEntries(rows)
}

// List lista movimientos según filtro, fecha descendente.
func (r *LedgerEntryRepo) List(filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.MaterialCode != "" {
		query += fmt.Sprintf(" AND material_code = $%d", pos)
		args = append(args, filter.MaterialCode)
		pos++
	}
	if filter.Class != "" {
		query += fmt.Sprintf(" AND material_class = $%d", pos)
		args = append(args, filter.Class)
		pos++
	}
	if filter.Direction != "" {
		query += fmt.Sprintf(" AND direction = $%d", pos)
		args = append(args, filter.Direction)
		pos++
	}
	if filter.SourceDocumentID != "" {
		query += fmt.Sprintf(" AND source_document_id = $%d", pos)
		args = append(args, filter.SourceDocumentID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return collectEntries(rows)
}

// AggregateStock agrupa el libro por (material, clave secundaria) en una sola
// consulta agregada: la memoria no crece con el tamaño del libro. Incluye
// grupos agotados; filtrado y orden de presentación son del dominio.
func (r *LedgerEntryRepo) AggregateStock(ctx context.Context, class string) ([]entity.StockSnapshot, error) {
	const query = `
	SELECT
	    material_code,
	    MAX(material_name)                                                    AS material_name,
	    material_class,
	    unit,
	    secondary_key,
	    COALESCE(SUM(CASE WHEN direction = 'in'  THEN quantity ELSE 0 END), 0) AS total_in,
	    COALESCE(SUM(CASE WHEN direction = 'out' THEN quantity ELSE 0 END), 0) AS total_out
	FROM ledger_entries
	WHERE ($1 = '' OR material_class = $1)
	GROUP BY material_code, material_class, unit, secondary_key
	ORDER BY material_code, secondary_key`

	rows, err := r.q.Query(ctx, query, class)
	if err != nil {
		return nil, fmt.Errorf("aggregate stock: %w", err)
	}
	defer rows.Close()

	var snaps []entity.StockSnapshot
	for rows.Next() {
		var s entity.StockSnapshot
		if err := rows.Scan(&s.MaterialCode, &s.MaterialName, &s.Class, &s.Unit,
			&s.SecondaryKey, &s.TotalIn, &s.TotalOut); err != nil {
			return nil, fmt.Errorf("aggregate stock scan: %w", err)
		}
		s.Remaining = s.TotalIn.Sub(s.TotalOut)
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// Delete elimina un movimiento (corrección administrativa, fuera del
// invariante contable). Llamar siempre junto a RecordDeletion en la misma tx.
func (r *LedgerEntryRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete ledger entry: no rows")
	}
	return nil
}

// RecordDeletion persiste el rastro de auditoría de una eliminación.
func (r *LedgerEntryRepo) RecordDeletion(del *entity.LedgerDeletion) error {
	if del.ID == "" {
		del.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ledger_deletions (id, entry_id, material_code, direction, quantity, secondary_key, reason, deleted_by, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		del.ID, del.EntryID, del.MaterialCode, del.Direction, del.Quantity,
		del.SecondaryKey, del.Reason, del.DeletedBy, del.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("record ledger deletion: %w", err)
	}
	return nil
}

func scanEntry(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	var sourceDoc *string
	err := row.Scan(&e.ID, &e.MaterialCode, &e.MaterialName, &e.Class, &e.Unit,
		&e.Direction, &e.Quantity, &e.SecondaryKey, &sourceDoc,
		&e.Date, &e.CreatedAt, &e.CreatedBy)
	if err != nil {
		return nil, err
	}
	if sourceDoc != nil {
		e.SourceDocumentID = *sourceDoc
	}
	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]*entity.LedgerEntry, error) {
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}
