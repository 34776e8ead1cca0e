package minio

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"github.com/iliodor1/own-array-list/pkg/config"
)

func TestSetup_MissingConfig(t *testing.T) {
	assert := assert.New(t)

	err := Setup(config.Minio{Endpoint: "localhost:9000"})

	assert.ErrorIs(err, MissingConfigError)
	var details *MissingConfigErrorWithDetails
	if assert.True(errors.As(err, &details)) {
		assert.Equal([]string{config.EnvMinioAccessKey, config.EnvMinioSecretKey, config.EnvMinioBucketName}, details.Missing)
	}
}

func TestSetup(t *testing.T) {
	assert := assert.New(t)

	err := Setup(config.Minio{
		Endpoint:   "localhost:9000",
		AccessKey:  "access",
		SecretKey:  "secret",
		BucketName: "lists",
	})

	assert.NoError(err)
	if assert.NotNil(GetRepository()) {
		assert.Equal("lists", GetRepository().BucketName())
	}
}

func TestNewObjectKey(t *testing.T) {
	assert := assert.New(t)

	key := NewObjectKey("listsort/", "json")

	assert.True(strings.HasPrefix(key, "listsort/"))
	assert.True(strings.HasSuffix(key, ".json"))
	_, err := uuid.Parse(strings.TrimSuffix(strings.TrimPrefix(key, "listsort/"), ".json"))
	assert.NoError(err)
	assert.NotEqual(key, NewObjectKey("listsort", "json"))
}

func TestTranslate(t *testing.T) {
	assert := assert.New(t)
	r := &MinioRepository{bucketName: "lists"}

	err := r.translate("a/b.txt", minio.ErrorResponse{Code: "NoSuchKey"})
	assert.ErrorIs(err, NoSuchKeyError)
	assert.Equal("no object a/b.txt in bucket lists", err.Error())

	other := errors.New("boom")
	assert.Equal(other, r.translate("a/b.txt", other))
}
