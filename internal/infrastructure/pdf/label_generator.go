// Package pdf genera la guía de envío (etiqueta) que viaja pegada a la caja.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: JBG Logística  │  N° Guía + Fecha    │
//	│  ───────────────────────────────────────────  │
//	│  DESTINATARIO: nombre + dirección + teléfono  │
//	│  ZONA DE ENTREGA + peso + valor del flete     │
//	│  ───────────────────────────────────────────  │
//	│  DETALLE: Cant | Caja                         │
//	│  ───────────────────────────────────────────  │
//	│  CÓDIGO DE BARRAS con la guía                 │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jbglogistica/logistica-api/internal/application/shipping"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ shipping.LabelGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa shipping.LabelGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabel genera la etiqueta del envío y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateLabel(
	_ context.Context,
	shipment *entity.Shipment,
	order *entity.Order,
	customer *entity.Customer,
	zone *entity.Zone,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Guía de envío "+shipment.TrackingCode, true).
		WithAuthor("JBG Logística", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(shipment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(destinatarioRow(shipment, customer))
	m.AddRows(entregaRow(shipment, zone))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(detailHeaderRow())
	for _, r := range detailRows(order) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(barcodeRow(shipment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: marca (izq) y número de guía + fecha (der).
func headerRow(shipment *entity.Shipment) core.Row {
	fecha := shipment.CreatedAt.Format("02/01/2006")
	return row.New(16).Add(
		col.New(6).Add(
			text.New("JBG Logística", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Guía de envío", props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(6).Add(
			text.New(shipment.TrackingCode, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// destinatarioRow: a quién y dónde se entrega.
func destinatarioRow(shipment *entity.Shipment, customer *entity.Customer) core.Row {
	name, phone := "—", "—"
	if customer != nil {
		name = customer.Name
		if customer.Phone != "" {
			phone = customer.Phone
		}
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("DESTINATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("%s   |   Tel: %s", shipment.Address, phone),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// entregaRow: zona, peso y valor del flete.
func entregaRow(shipment *entity.Shipment, zone *entity.Zone) core.Row {
	zoneName := "—"
	if zone != nil {
		zoneName = fmt.Sprintf("%s (%s)", zone.Name, zone.Code)
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Zona: %s   |   Peso: %s kg   |   Flete: $%s",
				zoneName,
				shipment.WeightKg.StringFixed(1),
				shipment.Price.StringFixed(0),
			), props.Text{Size: 9, Top: 2}),
		),
	)
}

// detailHeaderRow: cabecera de la tabla de contenido.
func detailHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Cant.", 2, align.Center),
		h("Contenido", 10, align.Left),
	)
}

// detailRows: una fila por línea del pedido.
func detailRows(order *entity.Order) []core.Row {
	if order == nil {
		return nil
	}
	result := make([]core.Row, 0, len(order.Lines))
	for _, l := range order.Lines {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(10).Add(text.New(
				"Caja "+l.BoxID,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
		))
	}
	return result
}

// barcodeRow: código de barras con la guía, escaneable en bodega y en ruta.
func barcodeRow(shipment *entity.Shipment) core.Row {
	return row.New(24).Add(
		col.New(12).Add(
			code.NewBar(shipment.TrackingCode, props.Barcode{
				Percent: 90,
				Center:  true,
				Proportion: props.Proportion{
					Width:  16,
					Height: 3,
				},
			}),
		),
	)
}
