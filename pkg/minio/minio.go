package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/iliodor1/own-array-list/pkg/config"
)

var repo *MinioRepository

type MinioRepository struct {
	client     *minio.Client
	bucketName string

	// no need for any locks - see https://github.com/minio/minio-go/issues/1125, which seems to have fixed any issues related to goroutine-safety
}

// Setup creates the client used by GetRepository. No connection is made until the first request.
func Setup(cfg config.Minio) error {
	if missing := cfg.Missing(); len(missing) > 0 {
		return &MissingConfigErrorWithDetails{
			Details: fmt.Sprintf("missing MinIO environment variables: %s", strings.Join(missing, ", ")),
			Missing: missing,
		}
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return err
	}

	repo = newMinioRepository(client, cfg.BucketName)
	return nil
}

func newMinioRepository(client *minio.Client, bucketName string) *MinioRepository {
	return &MinioRepository{
		client:     client,
		bucketName: bucketName,
	}
}

func GetRepository() *MinioRepository {
	return repo
}

func (r *MinioRepository) BucketName() string {
	return r.bucketName
}

// NewObjectKey returns a fresh key of the form prefix/<uuid>.ext.
func NewObjectKey(prefix string, ext string) string {
	return fmt.Sprintf("%s/%s.%s", strings.TrimSuffix(prefix, "/"), uuid.New().String(), ext)
}

func (r *MinioRepository) CreateFile(ctx context.Context, path string, contents []byte, contentType string) error {
	_, err := r.client.PutObject(
		ctx,
		r.bucketName,
		path,
		bytes.NewReader(contents),
		int64(len(contents)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	return err
}

func (r *MinioRepository) ReadFile(ctx context.Context, path string) ([]byte, error) {
	object, err := r.client.GetObject(ctx, r.bucketName, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, r.translate(path, err)
	}
	defer object.Close()
	contents, err := io.ReadAll(object)
	if err != nil {
		return nil, r.translate(path, err)
	}
	return contents, nil
}

func (r *MinioRepository) DeleteFile(ctx context.Context, path string) error {
	return r.client.RemoveObject(ctx, r.bucketName, path, minio.RemoveObjectOptions{})
}

func (r *MinioRepository) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	var files []string
	objectCh := r.client.ListObjects(ctx, r.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for object := range objectCh {
		if object.Err != nil {
			return nil, object.Err
		}
		files = append(files, object.Key)
	}
	return files, nil
}

// translate maps minio's NoSuchKey response onto NoSuchKeyError.
func (r *MinioRepository) translate(path string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return &NoSuchKeyErrorWithDetails{Details: fmt.Sprintf("no object %s in bucket %s", path, r.bucketName)}
	}
	return err
}
