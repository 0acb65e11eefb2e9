// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización  │  Fecha de emisión                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total ítems / Stock bajo / Por vencer              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Modelo | Categoría | Cant | Mín | Valor | Venc│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/application/reports"
	"github.com/laqus/deskguard-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorAlert   = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ reports.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	org *entity.Organization,
	rows []dto.DashboardProductDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(org.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(org))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rows))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la organización (izq) y fecha de emisión (der).
func headerRow(org *entity.Organization) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(org.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: contadores agregados del inventario.
func summaryRow(rows []dto.DashboardProductDTO) core.Row {
	var lowStock, expiring int
	for _, r := range rows {
		if r.LowStock {
			lowStock++
		}
		if r.ExpiringSoon {
			expiring++
		}
	}
	counter := func(label string, value int, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 6,
			}),
		)
	}
	return row.New(15).Add(
		counter("Total de ítems", len(rows), colorPrimary),
		counter("Stock bajo", lowStock, colorAlert),
		counter("Por vencer (30 días)", expiring, colorAlert),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 3, align.Left),
		h("Modelo", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Valor", 1, align.Right),
		h("Vence", 1, align.Center),
	)
}

// tableDetailRows: una fila por producto; cantidad en rojo si hay stock bajo.
func tableDetailRows(items []dto.DashboardProductDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, p := range items {
		qtyColor := (*props.Color)(nil)
		if p.LowStock {
			qtyColor = colorAlert
		}
		valor := "—"
		if p.Value != nil {
			valor = p.Value.StringFixed(2)
		}
		vence := "—"
		if p.ExpiryDate != nil {
			vence = p.ExpiryDate.Format("02/01/2006")
		}
		modelo := p.ModelName
		if p.ModelBrand != "" {
			modelo = p.ModelBrand + " " + p.ModelName
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(p.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(modelo, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.CategoryName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: qtyColor,
				Style: boldIf(p.LowStock),
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.MinQuantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(valor, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(vence, props.Text{Size: 7, Align: align.Center, Top: 1.5})),
		))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado por Deskguard. Los contadores de stock bajo y vencimiento "+
				"se calculan al momento de la emisión.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func boldIf(b bool) fontstyle.Type {
	if b {
		return fontstyle.Bold
	}
	return fontstyle.Normal
}
