// Package pdf genera el reporte imprimible de un spot check.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ubicación + Fecha  │  Operador                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ítems actualizados / alarmas creadas              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Amenidad | Cantidad | Recompra | Tolerancia | Estado│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de uso interno                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/Amenidades-api/internal/application/spotcheck"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
)

var _ spotcheck.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorWarn    = &props.Color{Red: 180, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa spotcheck.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSpotCheckPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSpotCheckPDF(
	_ context.Context,
	check *entity.SpotCheck,
	items []*entity.InventoryItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Spot Check", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(check))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(check))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
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

// headerRow: ubicación + fecha (izq) y operador (der).
func headerRow(check *entity.SpotCheck) core.Row {
	fecha := check.Timestamp.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE SPOT CHECK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ubicación: "+check.Location, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Operador: "+check.OperatorName, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

// summaryRow: contadores de la ejecución.
func summaryRow(check *entity.SpotCheck) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN DE LA EJECUCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ítems actualizados: %d   |   Alarmas creadas: %d",
				check.ItemsUpdated, check.AlarmsCreated,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de inventario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Amenidad", 5, align.Left),
		h("Cantidad", 2, align.Right),
		h("Recompra", 2, align.Right),
		h("Tolerancia", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableItemRows: una fila por amenidad de la ubicación.
func tableItemRows(items []*entity.InventoryItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(it.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(it.RebuyQuantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(it.Tolerance),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				string(it.Status),
				props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Center,
					Top: 1, Color: statusColor(it.Status),
				},
			)),
		))
	}
	return result
}

// footerRow: leyenda de uso interno.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento de uso interno. El estado de cada amenidad corresponde al "+
				"último conteo físico verificado durante el spot check.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(s entity.ItemStatus) *props.Color {
	switch s {
	case entity.StatusReorder:
		return colorAlert
	case entity.StatusLowStock:
		return colorWarn
	default:
		return colorPrimary
	}
}
