package http

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
)

// readForm lee el cuerpo (multipart, urlencoded o JSON) como dto.Form.
// Solo quedan las claves enviadas, para distinguir "ausente" de "vacío".
func readForm(c *fiber.Ctx) (dto.Form, error) {
	form := dto.Form{}
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "formulario multipart inválido")
		}
		for k, vs := range mf.Value {
			if len(vs) > 0 {
				form[k] = vs[0]
			}
		}
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		if len(c.Body()) == 0 {
			return form, nil
		}
		var raw map[string]any
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "cuerpo JSON inválido")
		}
		for k, v := range raw {
			form[k] = jsonText(v)
		}
	default:
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			form[string(k)] = string(v)
		})
	}
	return form, nil
}

func jsonText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// formFile devuelve el archivo del campo o nil si no vino (o el request no es multipart).
// El caller debe cerrar el contenido con closeUpload.
func formFile(c *fiber.Ctx, field string) (*ports.Upload, error) {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	if !strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		return nil, nil
	}
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "formulario multipart inválido")
	}
	files := mf.File[field]
	if len(files) == 0 || files[0].Filename == "" {
		return nil, nil
	}
	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "no se pudo leer el archivo "+field)
	}
	return &ports.Upload{Filename: fh.Filename, Size: fh.Size, Content: f}, nil
}

func closeUpload(up *ports.Upload) {
	if up == nil {
		return
	}
	if cl, ok := up.Content.(io.Closer); ok {
		_ = cl.Close()
	}
}

// pathID lee el parámetro :id como entero positivo.
func pathID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.NewInvalidField("id", "debe ser un id numérico positivo")
	}
	return n, nil
}

// requestIdentity devuelve la identidad del request o 401 si el middleware no corrió.
func requestIdentity(c *fiber.Ctx) (entity.Identity, error) {
	id, ok := GetIdentity(c)
	if !ok {
		return entity.Identity{}, fiber.NewError(fiber.StatusUnauthorized, "identidad no encontrada")
	}
	return id, nil
}
