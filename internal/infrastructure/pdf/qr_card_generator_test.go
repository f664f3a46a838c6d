package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/infrastructure/pdf"
)

var card = ports.DistributorCard{ID: 12, Name: "Norte Lubricantes", City: "Pune", Email: "ventas@norte.in", GST: "27ABCDE1234F1Z5"}

func TestQRPayload_MismosDatosQueElEndpoint(t *testing.T) {
	payload, err := pdf.QRPayload(card)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":12,"name":"Norte Lubricantes","city":"Pune","email":"ventas@norte.in","gst":"27ABCDE1234F1Z5"}`, payload)
}

func TestGenerateDistributorCard_DevuelvePDF(t *testing.T) {
	doc, err := pdf.NewQRCardGenerator().GenerateDistributorCard(context.Background(), card)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "el documento debe empezar con la cabecera PDF")
}

func TestGenerateDistributorCard_CamposVacios(t *testing.T) {
	doc, err := pdf.NewQRCardGenerator().GenerateDistributorCard(context.Background(), ports.DistributorCard{ID: 1})
	require.NoError(t, err)

	assert.NotEmpty(t, doc)
}
