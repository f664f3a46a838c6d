package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoApp devuelve el formulario leído y, si vino, nombre y contenido del archivo "logo".
func echoApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		form, err := readForm(c)
		if err != nil {
			return writeError(c, err)
		}
		up, err := formFile(c, "logo")
		if err != nil {
			return writeError(c, err)
		}
		defer closeUpload(up)
		out := fiber.Map{"form": form}
		if up != nil {
			content, _ := io.ReadAll(up.Content)
			out["file"] = up.Filename
			out["content"] = string(content)
		}
		return c.JSON(out)
	})
	return app
}

type echoBody struct {
	Form    map[string]string `json:"form"`
	File    string            `json:"file"`
	Content string            `json:"content"`
}

func send(t *testing.T, app *fiber.App, contentType string, body io.Reader) echoBody {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var out echoBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestReadForm_JSON(t *testing.T) {
	out := send(t, echoApp(t), fiber.MIMEApplicationJSON,
		strings.NewReader(`{"client_name":"Acme","distributor_id":12,"email":"","oil_ph":7.25}`))

	assert.Equal(t, "Acme", out.Form["client_name"])
	assert.Equal(t, "12", out.Form["distributor_id"])
	assert.Equal(t, "7.25", out.Form["oil_ph"])
	v, ok := out.Form["email"]
	assert.True(t, ok, "las claves vacías se conservan")
	assert.Empty(t, v)
	assert.Empty(t, out.File)
}

func TestReadForm_URLEncoded(t *testing.T) {
	out := send(t, echoApp(t), fiber.MIMEApplicationForm, strings.NewReader("address=Calle+1&mobile_number=9876543210"))

	assert.Equal(t, map[string]string{"address": "Calle 1", "mobile_number": "9876543210"}, out.Form)
}

func TestReadForm_MultipartConArchivo(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("distributor_name", "Norte"))
	fw, err := w.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("PNGDATA"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out := send(t, echoApp(t), w.FormDataContentType(), &buf)

	assert.Equal(t, "Norte", out.Form["distributor_name"])
	assert.Equal(t, "logo.png", out.File)
	assert.Equal(t, "PNGDATA", out.Content)
}

func TestReadForm_JSONInvalido_Retorna400(t *testing.T) {
	req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(`{"a":`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := echoApp(t).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestPathID(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/items/42", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/items/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
