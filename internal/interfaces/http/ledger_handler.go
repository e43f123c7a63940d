package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// HeaderReportDigest cabecera con la huella del XML exportado.
const HeaderReportDigest = "X-Report-Digest"

// NormalizeService lo implementa *ledger.NormalizeUseCase.
type NormalizeService interface {
	Normalize(ctx context.Context, in entity.LineEntry) (*entity.NormalizedLine, error)
	Factor(ctx context.Context, companyID, itemID, unit string) (*inventory.Resolution, error)
	CanonicalUnit(ctx context.Context, companyID, itemID string) (string, error)
}

// BalanceService lo implementa *ledger.BalanceReconstructor.
type BalanceService interface {
	Compute(ctx context.Context, q ledger.BalanceQuery) (*entity.Balance, error)
	Detail(ctx context.Context, q ledger.BalanceQuery) (*entity.BalanceDetail, error)
}

// ReportService lo implementa *ledger.WarehouseBalanceReport.
type ReportService interface {
	Generate(ctx context.Context, q ledger.WarehouseReportQuery) (*entity.WarehouseReport, error)
	LowStock(ctx context.Context, q ledger.LowStockQuery) ([]entity.LowStockRow, error)
}

// LedgerHandler maneja normalización de cantidades, saldos y reportes por bodega (protegido).
type LedgerHandler struct {
	normalize NormalizeService
	balances  BalanceService
	reports   ReportService
	pdf       ledger.ReportPDFGenerator
	xml       ledger.ReportXMLExporter
}

// NewLedgerHandler construye el handler. pdf y xml pueden ser nil; el formato correspondiente responde 501.
func NewLedgerHandler(
	normalize NormalizeService,
	balances BalanceService,
	reports ReportService,
	pdf ledger.ReportPDFGenerator,
	xml ledger.ReportXMLExporter,
) *LedgerHandler {
	return &LedgerHandler{normalize: normalize, balances: balances, reports: reports, pdf: pdf, xml: xml}
}

// Normalize godoc
// @Summary      Normalizar línea a unidad canónica
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NormalizeLineRequest  true  "item_id, unit, quantity, unit_price, price_unit"
// @Success      200   {object}  dto.NormalizedLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/ledger/normalize [post]
func (h *LedgerHandler) Normalize(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.NormalizeLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.normalize.Normalize(c.Context(), entity.LineEntry{
		CompanyID:        companyID,
		ItemID:           in.ItemID,
		EnteredUnit:      inventory.NormalizeUnit(in.Unit),
		EnteredQuantity:  in.Quantity,
		EnteredUnitPrice: in.UnitPrice,
		EnteredPriceUnit: inventory.NormalizeUnit(in.PriceUnit),
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.NewNormalizedLineResponse(line))
}

// Factor godoc
// @Summary      Factor de conversión hacia la unidad canónica
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        item_id  path   string  true   "ID del ítem"
// @Param        unit     query  string  false  "Unidad origen (vacío = canónica)"
// @Success      200  {object}  dto.FactorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/ledger/items/{item_id}/factor [get]
func (h *LedgerHandler) Factor(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	itemID := c.Params("item_id")
	res, err := h.normalize.Factor(c.Context(), companyID, itemID, inventory.NormalizeUnit(c.Query("unit")))
	if err != nil {
		return ledgerError(c, err)
	}
	canonical, err := h.normalize.CanonicalUnit(c.Context(), companyID, itemID)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.FactorResponse{Unit: res.Unit, CanonicalUnit: canonical, Factor: res.Factor, Fallback: res.Fallback})
}

// Balance godoc
// @Summary      Saldo de un ítem en una bodega a una fecha
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        item_id       query  string  true   "ID del ítem"
// @Param        warehouse_id  query  string  true   "ID de la bodega"
// @Param        as_of_date    query  string  false  "Fecha de corte YYYY-MM-DD (vacío = hoy)"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/balance [get]
func (h *LedgerHandler) Balance(c *fiber.Ctx) error {
	q, ok, err := balanceQuery(c)
	if !ok {
		return err
	}
	b, err := h.balances.Compute(c.Context(), q)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.NewBalanceResponse(b))
}

// BalanceDetail godoc
// @Summary      Saldo con kárdex desde la base
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        item_id       query  string  true   "ID del ítem"
// @Param        warehouse_id  query  string  true   "ID de la bodega"
// @Param        as_of_date    query  string  false  "Fecha de corte YYYY-MM-DD (vacío = hoy)"
// @Success      200  {object}  dto.BalanceDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/balance/details [get]
func (h *LedgerHandler) BalanceDetail(c *fiber.Ctx) error {
	q, ok, err := balanceQuery(c)
	if !ok {
		return err
	}
	d, err := h.balances.Detail(c.Context(), q)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.NewBalanceDetailResponse(d))
}

// WarehouseReport godoc
// @Summary      Reporte de saldos por bodega
// @Description  format=json (defecto), pdf o xml. El XML trae la huella en X-Report-Digest.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Produce      application/pdf
// @Produce      application/xml
// @Param        warehouse_id  path   string  true   "ID de la bodega"
// @Param        as_of_date    query  string  false  "Fecha de corte YYYY-MM-DD (vacío = hoy)"
// @Param        item_type_id  query  string  false  "Filtrar por tipo de ítem"
// @Param        category_id   query  string  false  "Filtrar por categoría"
// @Param        format        query  string  false  "json | pdf | xml"
// @Success      200  {object}  dto.WarehouseReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/ledger/warehouses/{warehouse_id}/report [get]
func (h *LedgerHandler) WarehouseReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	asOf, err := parseAsOf(c.Query("as_of_date"))
	if err != nil {
		return invalidDate(c)
	}
	format := strings.ToLower(c.Query("format", "json"))
	if format != "json" && format != "pdf" && format != "xml" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser json, pdf o xml"})
	}
	if (format == "pdf" && h.pdf == nil) || (format == "xml" && h.xml == nil) {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "formato no disponible"})
	}

	report, err := h.reports.Generate(c.Context(), ledger.WarehouseReportQuery{
		CompanyID:   companyID,
		WarehouseID: c.Params("warehouse_id"),
		AsOf:        asOf,
		ItemTypeID:  c.Query("item_type_id"),
		CategoryID:  c.Query("category_id"),
	})
	if err != nil {
		return ledgerError(c, err)
	}

	switch format {
	case "pdf":
		out, err := h.pdf.GenerateWarehouseReportPDF(c.Context(), report)
		if err != nil {
			return ledgerError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="saldos-`+report.WarehouseCode+`-`+report.AsOfDate.Format(dto.DateLayout)+`.pdf"`)
		return c.Send(out)
	case "xml":
		out, digest, err := h.xml.ExportWarehouseReport(report)
		if err != nil {
			return ledgerError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
		c.Set(HeaderReportDigest, digest)
		return c.Send(out)
	}
	return c.JSON(dto.NewWarehouseReportResponse(report))
}

// LowStock godoc
// @Summary      Ítems por debajo del umbral de stock
// @Description  Umbral efectivo = max(stock mínimo del ítem, threshold). Incluye ítems sin movimiento.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  path   string  true   "ID de la bodega"
// @Param        threshold     query  string  false  "Umbral en unidad canónica (defecto 0)"
// @Param        as_of_date    query  string  false  "Fecha de corte YYYY-MM-DD (vacío = hoy)"
// @Success      200  {array}   dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/warehouses/{warehouse_id}/low-stock [get]
func (h *LedgerHandler) LowStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	asOf, err := parseAsOf(c.Query("as_of_date"))
	if err != nil {
		return invalidDate(c)
	}
	threshold := decimal.Zero
	if raw := c.Query("threshold"); raw != "" {
		threshold, err = decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold inválido"})
		}
	}
	rows, err := h.reports.LowStock(c.Context(), ledger.LowStockQuery{
		CompanyID:   companyID,
		WarehouseID: c.Params("warehouse_id"),
		AsOf:        asOf,
		Threshold:   threshold,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.NewLowStockResponse(rows))
}

// balanceQuery arma la consulta de saldo; si ok es false la respuesta de error ya fue escrita.
func balanceQuery(c *fiber.Ctx) (ledger.BalanceQuery, bool, error) {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return ledger.BalanceQuery{}, false, unauthorized(c)
	}
	asOf, err := parseAsOf(c.Query("as_of_date"))
	if err != nil {
		return ledger.BalanceQuery{}, false, invalidDate(c)
	}
	return ledger.BalanceQuery{
		CompanyID:   companyID,
		WarehouseID: c.Query("warehouse_id"),
		ItemID:      c.Query("item_id"),
		AsOf:        asOf,
	}, true, nil
}

func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dto.DateLayout, raw, time.UTC)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
}

func invalidDate(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "as_of_date debe tener formato YYYY-MM-DD"})
}

// ledgerError traduce errores de dominio a respuestas HTTP.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnitNotConfigured):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNIT_NOT_CONFIGURED", Message: err.Error()})
	case errors.Is(err, domain.ErrConversionPathNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CONVERSION_PATH_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "CANCELED", Message: "la consulta fue cancelada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
