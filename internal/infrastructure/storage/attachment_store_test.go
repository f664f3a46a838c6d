package storage_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/infrastructure/storage"
)

func newStore(t *testing.T) (*storage.AttachmentStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := storage.NewAttachmentStore(fs, storage.Config{PublicPath: "/static"}, zerolog.Nop())
	require.NoError(t, err)
	return s, fs
}

func upload(name string, size int) ports.Upload {
	return ports.Upload{Filename: name, Size: int64(size), Content: bytes.NewReader(bytes.Repeat([]byte{'x'}, size))}
}

// ──────────────────────────────────────────────────────────────────────────────
// Store
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_GuardaConNombreUnico(t *testing.T) {
	s, fs := newStore(t)
	ctx := context.Background()

	a, err := s.Store(ctx, ports.AssetClientLogo, upload("Logo.PNG", 10))
	require.NoError(t, err)
	b, err := s.Store(ctx, ports.AssetClientLogo, upload("Logo.PNG", 10))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "client_logos/client_"), a)
	assert.True(t, strings.HasSuffix(a, ".png"), "la extensión se normaliza a minúsculas")

	content, err := afero.ReadFile(fs, a)
	require.NoError(t, err)
	assert.Len(t, content, 10)
}

func TestStore_TopeInclusivo(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Store(ctx, ports.AssetDistributorLogo, upload("a.jpg", int(storage.DefaultMaxBytes)))
	assert.NoError(t, err, "exactamente 2 MiB se acepta")

	_, err = s.Store(ctx, ports.AssetDistributorLogo, upload("a.jpg", int(storage.DefaultMaxBytes)+1))
	assert.ErrorIs(t, err, domain.ErrTooLarge)
}

func TestStore_DetectaTamañoRealMayorAlDeclarado(t *testing.T) {
	s, _ := newStore(t)
	up := upload("a.jpeg", int(storage.DefaultMaxBytes)+1)
	up.Size = 1

	_, err := s.Store(context.Background(), ports.AssetUserProfile, up)
	assert.ErrorIs(t, err, domain.ErrTooLarge)
}

func TestStore_TipoNoSoportado(t *testing.T) {
	s, _ := newStore(t)
	for _, name := range []string{"logo.gif", "logo", "logo.", "logo.png.exe"} {
		_, err := s.Store(context.Background(), ports.AssetClientLogo, upload(name, 5))
		assert.ErrorIs(t, err, domain.ErrUnsupportedType, name)
	}
}

func TestStore_TipoDeAdjuntoDesconocido(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Store(context.Background(), ports.AssetKind("../etc"), upload("a.png", 5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Replace / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestReplace_BorraElAnteriorSoloSiBindTieneExito(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	old, err := s.Store(ctx, ports.AssetClientLogo, upload("old.png", 5))
	require.NoError(t, err)

	var bound string
	newRef, err := s.Replace(ctx, old, ports.AssetClientLogo, upload("new.png", 6), func(ref string) error {
		bound = ref
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, newRef, bound)

	exists, err := s.Exists(ctx, old)
	require.NoError(t, err)
	assert.False(t, exists, "el logo anterior se elimina")
	exists, err = s.Exists(ctx, newRef)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReplace_BindFallaConservaElAnterior(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	old, err := s.Store(ctx, ports.AssetDistributorLogo, upload("old.png", 5))
	require.NoError(t, err)

	boom := errors.New("update falló")
	_, err = s.Replace(ctx, old, ports.AssetDistributorLogo, upload("new.png", 5), func(string) error { return boom })
	assert.ErrorIs(t, err, boom)

	exists, err := s.Exists(ctx, old)
	require.NoError(t, err)
	assert.True(t, exists, "la fila sigue apuntando al logo anterior")
}

func TestReplace_ArchivoInvalidoNoTocaElAnterior(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	old, err := s.Store(ctx, ports.AssetUserProfile, upload("me.png", 5))
	require.NoError(t, err)

	called := false
	_, err = s.Replace(ctx, old, ports.AssetUserProfile, upload("me.bmp", 5), func(string) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.False(t, called)

	exists, _ := s.Exists(ctx, old)
	assert.True(t, exists)
}

func TestDelete_Idempotente(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	ref, err := s.Store(ctx, ports.AssetClientLogo, upload("a.png", 5))
	require.NoError(t, err)

	assert.NoError(t, s.Delete(ctx, ref))
	assert.NoError(t, s.Delete(ctx, ref), "borrar dos veces no es error")
	assert.NoError(t, s.Delete(ctx, ""))
}

func TestDelete_ReferenciaHeredadaYFueraDelAlmacen(t *testing.T) {
	s, fs := newStore(t)
	ctx := context.Background()

	ref, err := s.Store(ctx, ports.AssetClientLogo, upload("a.png", 5))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "/static/"+ref), "acepta la ruta pública heredada")
	exists, _ := afero.Exists(fs, ref)
	assert.False(t, exists)

	assert.ErrorIs(t, s.Delete(ctx, "../../etc/passwd"), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// URL / Normalize
// ──────────────────────────────────────────────────────────────────────────────

func TestURL(t *testing.T) {
	s, _ := newStore(t)

	assert.Equal(t, "", s.URL(""))
	assert.Equal(t, "/static/client_logos/client_x.png", s.URL("client_logos/client_x.png"))
	assert.Equal(t, "/static/client_logos/client_x.png", s.URL("/static/client_logos/client_x.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", s.URL("https://cdn.example.com/a.png"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "distributor_logos/d.png", storage.Normalize("/static/distributor_logos/d.png", "/static"))
	assert.Equal(t, "distributor_logos/d.png", storage.Normalize("distributor_logos/d.png", "/static/"))
	assert.Equal(t, "etc/passwd", storage.Normalize("../../etc/passwd", ""), "no escapa de la raíz")
}

func TestNormalize_PrefijoParcialNoSeRecorta(t *testing.T) {
	assert.Equal(t, "staticfoo/x.png", storage.Normalize("/staticfoo/x.png", "/static"))
}
