package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx; los repos aceptan cualquiera de los dos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation 23503: la fila referenciada no existe.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// lineTables tabla de líneas por origen de documento. Orden fijo para que el SQL generado sea estable.
var lineTables = []struct {
	source entity.MovementSource
	table  string
}{
	{entity.SourceReceiptPermanent, "receipt_permanent_lines"},
	{entity.SourceReceiptConsignment, "receipt_consignment_lines"},
	{entity.SourceIssuePermanent, "issue_permanent_lines"},
	{entity.SourceIssueConsumption, "issue_consumption_lines"},
	{entity.SourceIssueConsignment, "issue_consignment_lines"},
	{entity.SourceStocktakingSurplus, "stocktaking_surplus_lines"},
	{entity.SourceStocktakingDeficit, "stocktaking_deficit_lines"},
}
