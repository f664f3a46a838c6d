// Package storage implementa el almacén de adjuntos (logos y fotos de perfil) sobre afero.Fs.
// En producción el Fs es un BasePathFs sobre disco; en tests, un MemMapFs.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
)

var _ ports.AttachmentStore = (*AttachmentStore)(nil)

// AllowedExtensions extensiones aceptadas para cualquier tipo de adjunto.
var AllowedExtensions = []string{"png", "jpg", "jpeg"}

// DefaultMaxBytes tope por archivo (inclusivo): 2 MiB.
const DefaultMaxBytes int64 = 2 * 1024 * 1024

var kinds = []ports.AssetKind{ports.AssetDistributorLogo, ports.AssetClientLogo, ports.AssetUserProfile}

// Config opciones del almacén.
type Config struct {
	PublicPath string // prefijo URL, p. ej. "/static"
	MaxBytes   int64  // 0 = DefaultMaxBytes
}

// AttachmentStore implementación de ports.AttachmentStore.
type AttachmentStore struct {
	fs       afero.Fs
	public   string
	maxBytes int64
	log      zerolog.Logger
}

// NewAttachmentStore construye el almacén sobre fs y crea los subdirectorios de cada tipo.
func NewAttachmentStore(fs afero.Fs, cfg Config, log zerolog.Logger) (*AttachmentStore, error) {
	limit := cfg.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	for _, k := range kinds {
		if err := fs.MkdirAll(string(k), 0o755); err != nil {
			return nil, fmt.Errorf("storage: crear %s: %w", k, err)
		}
	}
	return &AttachmentStore{
		fs:       fs,
		public:   strings.TrimRight(cfg.PublicPath, "/"),
		maxBytes: limit,
		log:      log,
	}, nil
}

// NewDiskFs devuelve un Fs restringido a root (se crea si no existe).
func NewDiskFs(root string) (afero.Fs, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear raíz %s: %w", root, err)
	}
	return afero.NewBasePathFs(afero.NewOsFs(), root), nil
}

// Store valida y guarda el archivo. UnsupportedType si la extensión no es png/jpg/jpeg,
// TooLarge si supera el tope. El nombre es <prefijo>_<uuid>.<ext>.
func (s *AttachmentStore) Store(_ context.Context, kind ports.AssetKind, up ports.Upload) (string, error) {
	if !isKnownKind(kind) {
		return "", fmt.Errorf("storage: tipo de adjunto desconocido %q: %w", kind, domain.ErrInvalidInput)
	}
	ext, ok := allowedExt(up.Filename)
	if !ok {
		return "", domain.ErrUnsupportedType
	}
	if up.Size > s.maxBytes {
		return "", domain.ErrTooLarge
	}
	if up.Content == nil {
		return "", fmt.Errorf("storage: archivo vacío: %w", domain.ErrInvalidInput)
	}
	// Lee como máximo maxBytes+1 para detectar el exceso sin cargar archivos enormes.
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(up.Content, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("storage: leer archivo: %w", err)
	}
	if n > s.maxBytes {
		return "", domain.ErrTooLarge
	}

	ref := path.Join(string(kind), fmt.Sprintf("%s_%s.%s", kind.Prefix(), uuid.New().String(), ext))
	f, err := s.fs.OpenFile(ref, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: crear %s: %w", ref, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(ref)
		return "", fmt.Errorf("storage: escribir %s: %w", ref, err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(ref)
		return "", fmt.Errorf("storage: cerrar %s: %w", ref, err)
	}
	return ref, nil
}

// Replace guarda el nuevo adjunto antes de tocar el anterior; el viejo solo se borra si bind tuvo éxito.
func (s *AttachmentStore) Replace(ctx context.Context, oldRef string, kind ports.AssetKind, up ports.Upload, bind func(newRef string) error) (string, error) {
	newRef, err := s.Store(ctx, kind, up)
	if err != nil {
		return "", err
	}
	if bind != nil {
		if err := bind(newRef); err != nil {
			s.log.Warn().Err(err).Str("ref", newRef).Msg("adjunto huérfano: falló la actualización de la entidad")
			return "", err
		}
	}
	if oldRef != "" && Normalize(oldRef, s.public) != newRef {
		_ = s.Delete(ctx, oldRef)
	}
	return newRef, nil
}

// Delete borra el adjunto. Archivo ausente = éxito; errores de I/O se registran y no se propagan.
// Solo devuelve error si ref apunta fuera del almacén.
func (s *AttachmentStore) Delete(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	p, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		s.log.Warn().Err(err).Str("ref", p).Msg("no se pudo borrar el adjunto, se continúa")
	}
	return nil
}

// Exists informa si el adjunto existe.
func (s *AttachmentStore) Exists(_ context.Context, ref string) (bool, error) {
	p, err := s.resolve(ref)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, p)
}

// URL devuelve la ruta pública del adjunto. Las URLs absolutas heredadas se devuelven tal cual.
func (s *AttachmentStore) URL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return s.public + "/" + Normalize(ref, s.public)
}

// resolve normaliza ref y verifica que caiga dentro de un subdirectorio conocido.
func (s *AttachmentStore) resolve(ref string) (string, error) {
	p := Normalize(ref, s.public)
	dir, name := path.Split(p)
	if name == "" || !isKnownKind(ports.AssetKind(strings.TrimSuffix(dir, "/"))) {
		return "", fmt.Errorf("storage: referencia inválida %q: %w", ref, domain.ErrInvalidInput)
	}
	return p, nil
}

// Normalize convierte referencias heredadas ("/static/distributor_logos/x.png") al formato relativo.
func Normalize(ref, publicPath string) string {
	p := path.Clean("/" + ref)
	if pp := strings.TrimRight(publicPath, "/"); pp != "" && strings.HasPrefix(p, pp+"/") {
		p = strings.TrimPrefix(p, pp)
	}
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

func allowedExt(filename string) (string, bool) {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[i+1:])
	for _, a := range AllowedExtensions {
		if ext == a {
			return ext, true
		}
	}
	return "", false
}

func isKnownKind(k ports.AssetKind) bool {
	for _, x := range kinds {
		if k == x {
			return true
		}
	}
	return false
}
