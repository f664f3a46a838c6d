// Package pdf genera la tarjeta imprimible de un distribuidor con su código QR.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Nombre del distribuidor + ciudad  │
//	│  ───────────────────────────────────────  │
//	│  QR (datos JSON)  │  GST / Email / ID     │
//	│  ───────────────────────────────────────  │
//	│  FOOTER: leyenda                           │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/json"
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

	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
)

var _ ports.QRCardGenerator = (*QRCardGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// QRCardGenerator implementa ports.QRCardGenerator usando Maroto v2.
type QRCardGenerator struct{}

// NewQRCardGenerator construye el generador.
func NewQRCardGenerator() *QRCardGenerator { return &QRCardGenerator{} }

// QRPayload contenido codificado en el QR: los mismos datos que expone GET /qrcode.
func QRPayload(card ports.DistributorCard) (string, error) {
	b, err := json.Marshal(struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		City  string `json:"city"`
		Email string `json:"email"`
		GST   string `json:"gst"`
	}{card.ID, card.Name, card.City, card.Email, card.GST})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GenerateDistributorCard genera el PDF y devuelve sus bytes.
func (g *QRCardGenerator) GenerateDistributorCard(_ context.Context, card ports.DistributorCard) ([]byte, error) {
	payload, err := QRPayload(card)
	if err != nil {
		return nil, fmt.Errorf("pdf: codificar QR: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Distributor "+card.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(line.NewRow(4))
	m.AddRows(bodyRow(card, payload))
	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(card ports.DistributorCard) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(card.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(card.City, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
	)
}

// bodyRow: QR a la izquierda, datos de contacto a la derecha.
func bodyRow(card ports.DistributorCard, payload string) core.Row {
	field := func(label, value string, top float64) []core.Component {
		return []core.Component{
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: top, Left: 3}),
			text.New(nonEmpty(value, "-"), props.Text{Size: 9, Top: top + 5, Left: 3}),
		}
	}
	info := col.New(7)
	info.Add(field("GST", card.GST, 2)...)
	info.Add(field("EMAIL", card.Email, 16)...)
	info.Add(field("ID", fmt.Sprintf("%d", card.ID), 30)...)

	return row.New(55).Add(
		col.New(5).Add(code.NewQr(payload, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		info,
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Escanee el código para registrar lecturas de refrigerante de este distribuidor.", props.Text{
			Size: 7, Align: align.Center, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
