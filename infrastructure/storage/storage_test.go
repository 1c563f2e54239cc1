package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/internal/config"
)

func newTestStorage(t *testing.T, handler http.HandlerFunc) *Storage {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Storage{
		Endpoint: server.URL,
		Region:   "us-east-1",
		Bucket:   "product-images",
	}

	client := s3.New(s3.Options{
		Region:                     cfg.Region,
		Credentials:                credentials.NewStaticCredentialsProvider("key", "secret", ""),
		BaseEndpoint:               aws.String(server.URL),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})

	storage := NewWithClient(client, cfg)
	storage.now = func() time.Time { return time.UnixMilli(1717243200000) }

	return storage
}

func TestStorage_UploadImage(t *testing.T) {
	var gotPath, gotBody, gotContentType string

	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	})

	uploaded, err := storage.UploadImage(context.Background(), "Tenis.JPG", "image/jpeg", strings.NewReader("conteudo"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^1717243200000-[0-9a-z]{11}\.jpg$`), uploaded.Path)
	assert.Equal(t, "/product-images/"+uploaded.Path, gotPath)
	assert.Equal(t, "conteudo", gotBody)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.True(t, strings.HasSuffix(uploaded.PublicURL, "/product-images/"+uploaded.Path))
}

func TestStorage_UploadImage_Error(t *testing.T) {
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`))
	})

	uploaded, err := storage.UploadImage(context.Background(), "a.png", "image/png", strings.NewReader("x"))
	assert.Nil(t, uploaded)
	assert.Error(t, err)
}

func TestStorage_DeleteImage(t *testing.T) {
	var gotMethod, gotPath string

	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, storage.DeleteImage(context.Background(), "123-abc.png"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/product-images/123-abc.png", gotPath)
}

func TestStorage_PublicURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Storage
		want string
	}{
		{
			name: "base pública configurada",
			cfg:  config.Storage{PublicBaseURL: "https://cdn.example.com/", Endpoint: "http://minio:9000", Bucket: "product-images"},
			want: "https://cdn.example.com/product-images/k.png",
		},
		{
			name: "endpoint compatível",
			cfg:  config.Storage{Endpoint: "http://minio:9000", Bucket: "product-images"},
			want: "http://minio:9000/product-images/k.png",
		},
		{
			name: "aws padrão",
			cfg:  config.Storage{Region: "sa-east-1", Bucket: "product-images"},
			want: "https://product-images.s3.sa-east-1.amazonaws.com/k.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &Storage{cfg: tt.cfg}
			assert.Equal(t, tt.want, storage.PublicURL("k.png"))
		})
	}
}

func TestStorage_objectKey_DefaultExtension(t *testing.T) {
	storage := &Storage{now: time.Now}

	key, err := storage.objectKey("sem-extensao")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))
}
