package ports

import (
	"context"
	"io"
)

// FileStorage almacenamiento de blobs compatible con S3. Upload sube el objeto bajo
// key y devuelve su URL pública. El handle es compartido y seguro para uso concurrente.
type FileStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}
