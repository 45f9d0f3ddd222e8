package s3_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/config"
	"atlas/infras/otel/mocks"
	"atlas/infras/s3"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (s3.S3, *config.Config) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = server.URL
	cfg.External.S3.BucketName = "test-bucket"
	cfg.External.S3.AccessKeyID = "test-key"
	cfg.External.S3.SecretAccessKey = "test-secret"
	cfg.External.S3.PublicDomain = "https://cdn.example.com"

	return s3.New(cfg, mocks.NewOtel()), cfg
}

// The public URL returned by an upload must resolve back to the exact
// object key the upload wrote, so a later delete hits the same path.
func TestS3_UploadedURLRoundTripsToDelete(t *testing.T) {
	var paths []string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		w.WriteHeader(http.StatusOK)
	})

	ctx := context.Background()

	url, err := client.UploadFileBytes(ctx, "test-bucket", "media", "photo.png", "image/png", []byte("fake-png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/photo.png", url)

	objectName := client.GetObjectNameFromURL("test-bucket", url)
	assert.Equal(t, "media/photo.png", objectName)

	err = client.DeleteFile(ctx, "test-bucket", "", objectName)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "PUT /test-bucket/media/photo.png", paths[0])
	assert.Equal(t, "DELETE /test-bucket/media/photo.png", paths[1])
}

func TestS3_GetObjectNameFromURL(t *testing.T) {
	client, cfg := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "public domain URL",
			url:  "https://cdn.example.com/media/photo.png",
			want: "media/photo.png",
		},
		{
			name: "api endpoint URL",
			url:  cfg.External.S3.APIEndpoint + "/test-bucket/media/photo.png",
			want: "media/photo.png",
		},
		{
			name: "foreign URL yields nothing",
			url:  "https://elsewhere.example.com/media/photo.png",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.GetObjectNameFromURL("test-bucket", tt.url))
		})
	}
}
