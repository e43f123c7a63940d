package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// ReportPDFGenerator representación gráfica del reporte por bodega.
type ReportPDFGenerator interface {
	GenerateWarehouseReportPDF(ctx context.Context, report *entity.WarehouseReport) ([]byte, error)
}

// ReportXMLExporter exportación XML del reporte con su huella sobre la forma canónica.
type ReportXMLExporter interface {
	ExportWarehouseReport(report *entity.WarehouseReport) (doc []byte, digest string, err error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(edges repository.UnitConversionRepository) error) error
}

// Clock fuente de la fecha actual; se inyecta para poder fijar "hoy" en pruebas.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
