package ports

import (
	"context"
	"io"
)

// AssetKind tipo de adjunto; determina el subdirectorio y el prefijo del nombre.
type AssetKind string

const (
	AssetDistributorLogo AssetKind = "distributor_logos"
	AssetClientLogo      AssetKind = "client_logos"
	AssetUserProfile     AssetKind = "user_profiles"
)

// Prefix prefijo del nombre de archivo generado para el tipo.
func (k AssetKind) Prefix() string {
	switch k {
	case AssetDistributorLogo:
		return "distributor"
	case AssetClientLogo:
		return "client"
	case AssetUserProfile:
		return "user"
	}
	return "asset"
}

// Upload archivo recibido del cliente. Size es el declarado; el almacén verifica el real.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// AttachmentStore define el puerto de salida para logos e imágenes de perfil.
// Las referencias devueltas son relativas a la raíz del almacén ("client_logos/client_<hex>.png").
type AttachmentStore interface {
	// Store valida extensión y tamaño y guarda con un nombre único. Devuelve la referencia.
	Store(ctx context.Context, kind AssetKind, up Upload) (string, error)
	// Replace guarda el nuevo archivo, ejecuta bind(newRef) y solo si bind tiene éxito borra oldRef.
	// Si bind falla el nuevo archivo queda huérfano y se devuelve el error de bind.
	Replace(ctx context.Context, oldRef string, kind AssetKind, up Upload, bind func(newRef string) error) (string, error)
	// Delete es idempotente y best-effort: archivo ausente o error de I/O no bloquean al caller.
	Delete(ctx context.Context, ref string) error
	Exists(ctx context.Context, ref string) (bool, error)
	// URL devuelve la ruta pública del adjunto, vacía si ref es vacío.
	URL(ref string) string
}

// QRCardGenerator genera la tarjeta PDF con QR de un distribuidor.
type QRCardGenerator interface {
	GenerateDistributorCard(ctx context.Context, card DistributorCard) ([]byte, error)
}

// DistributorCard datos impresos (y codificados en el QR) de la tarjeta del distribuidor.
type DistributorCard struct {
	ID    int64
	Name  string
	City  string
	Email string
	GST   string
}
