// Package xmlreport exporta el reporte de saldos por bodega a XML.
// La huella (SHA-256 sobre la forma canónica C14N) solo cubre los datos del libro: dos reportes
// del mismo estado y fecha de corte producen la misma huella aunque se generen en momentos distintos.
package xmlreport

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// Namespace del documento exportado.
const Namespace = "urn:inventario-ledger:warehouse-report:1"

const dateLayout = "2006-01-02"

var _ ledger.ReportXMLExporter = (*Exporter)(nil)

// Exporter implementa ledger.ReportXMLExporter con etree.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportWarehouseReport devuelve el XML indentado y la huella hex de su contenido canónico.
func (e *Exporter) ExportWarehouseReport(report *entity.WarehouseReport) ([]byte, string, error) {
	doc := build(report)

	digest, err := Digest(doc)
	if err != nil {
		return nil, "", err
	}

	root := doc.Root()
	if !report.GeneratedAt.IsZero() {
		root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))
	}
	root.CreateAttr("digest", digest)
	doc.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`))

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, "", fmt.Errorf("xmlreport: serializar: %w", err)
	}
	return out.Bytes(), digest, nil
}

// Digest SHA-256 (hex) de la forma canónica del documento.
func Digest(doc *etree.Document) (string, error) {
	raw, err := doc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("xmlreport: serializar: %w", err)
	}
	canonical, err := canonicalize(raw)
	if err != nil {
		return "", fmt.Errorf("xmlreport: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

func build(report *entity.WarehouseReport) *etree.Document {
	doc := etree.NewDocument()
	root := doc.CreateElement("WarehouseBalanceReport")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("companyId", report.CompanyID)
	root.CreateAttr("warehouseId", report.WarehouseID)
	root.CreateAttr("warehouseCode", report.WarehouseCode)
	root.CreateAttr("asOfDate", report.AsOfDate.Format(dateLayout))
	if report.WarehouseName != "" {
		root.CreateElement("WarehouseName").SetText(report.WarehouseName)
	}

	rows := root.CreateElement("Rows")
	for _, b := range report.Rows {
		r := rows.CreateElement("Row")
		r.CreateAttr("itemId", b.ItemID)
		r.CreateAttr("itemCode", b.ItemCode)
		r.CreateAttr("unit", b.CanonicalUnit)
		r.CreateElement("ItemName").SetText(b.ItemName)
		base := r.CreateElement("Baseline")
		if b.HasBaseline {
			base.CreateAttr("date", b.BaselineDate.Format(dateLayout))
		}
		base.SetText(b.BaselineQuantity.String())
		r.CreateElement("Receipts").SetText(b.ReceiptsTotal.String())
		r.CreateElement("Issues").SetText(b.IssuesTotal.String())
		r.CreateElement("Surplus").SetText(b.SurplusTotal.String())
		r.CreateElement("Deficit").SetText(b.DeficitTotal.String())
		r.CreateElement("Balance").SetText(b.CurrentBalance.String())
	}

	if len(report.Failures) > 0 {
		failures := root.CreateElement("Failures")
		for _, f := range report.Failures {
			fe := failures.CreateElement("Failure")
			fe.CreateAttr("itemId", f.ItemID)
			fe.CreateAttr("itemCode", f.ItemCode)
			fe.SetText(f.Error)
		}
	}

	root.CreateElement("Total").SetText(report.TotalBalance.String())
	return doc
}
