package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/serviya/serviya-api/internal/application/ports"
	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/pkg/config"
)

// Verificar en tiempo de compilación que S3Uploader implementa FileStorage.
var _ ports.FileStorage = (*S3Uploader)(nil)

// S3Uploader adaptador de blob storage sobre cualquier endpoint compatible con S3
// (iDrive e2 en producción, MinIO en local). Los objetos quedan públicos y la URL
// resultante es endpoint/bucket/key.
type S3Uploader struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewS3Uploader construye el cliente. El handle es compartido y seguro para uso
// concurrente entre requests.
func NewS3Uploader(cfg config.StorageConfig) (*S3Uploader, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.EndpointURL, "https://"), "http://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente de storage: %w", err)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return &S3Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket),
	}, nil
}

// Upload sube el objeto bajo key y devuelve su URL pública. Cualquier fallo se
// envuelve como domain.ErrUploadFailed para que el caller lo traduzca sin exponer
// el detalle del proveedor.
func (s *S3Uploader) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if opts.ContentType == "" {
		opts.ContentType = "application/octet-stream"
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, body, size, opts); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return s.baseURL + "/" + key, nil
}
