package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/figyaml/figyaml"
	fighttp "github.com/figyaml/figyaml/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fileJSON = `{"name": "My App", "document": {"id": "0:0", "name": "Document", "type": "DOCUMENT"}}`

func TestClient_FetchFile(t *testing.T) {
	t.Parallel()

	t.Run("sends token and decodes the file", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/files/abc123", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("X-Figma-Token"))
			_, _ = w.Write([]byte(fileJSON))
		}))
		defer server.Close()

		client := fighttp.NewClient("secret", fighttp.WithBaseURL(server.URL))

		file, err := client.FetchFile(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, "My App", file.Name)
		require.NotNil(t, file.Document)
		assert.Equal(t, figyaml.NodeTypeDocument, file.Document.Type)
	})

	t.Run("scopes the request to node ids", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1:2,3:4", r.URL.Query().Get("ids"))
			_, _ = w.Write([]byte(fileJSON))
		}))
		defer server.Close()

		client := fighttp.NewClient("secret", fighttp.WithBaseURL(server.URL))

		_, err := client.FetchFile(context.Background(), "abc123", "1:2", "3:4")
		require.NoError(t, err)
	})

	t.Run("401 and 403 map to EUNAUTHORIZED", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			client := fighttp.NewClient("bad", fighttp.WithBaseURL(server.URL))
			_, err := client.FetchFile(context.Background(), "abc123")
			require.Error(t, err)
			assert.Equal(t, figyaml.EUNAUTHORIZED, figyaml.ErrorCode(err))

			server.Close()
		}
	})

	t.Run("404 maps to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := fighttp.NewClient("secret", fighttp.WithBaseURL(server.URL))
		_, err := client.FetchFile(context.Background(), "abc123")
		require.Error(t, err)
		assert.Equal(t, figyaml.ENOTFOUND, figyaml.ErrorCode(err))
	})

	t.Run("other statuses map to EINTERNAL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := fighttp.NewClient("secret", fighttp.WithBaseURL(server.URL))
		_, err := client.FetchFile(context.Background(), "abc123")
		require.Error(t, err)
		assert.Equal(t, figyaml.EINTERNAL, figyaml.ErrorCode(err))
	})

	t.Run("empty key is invalid", func(t *testing.T) {
		t.Parallel()

		client := fighttp.NewClient("secret")
		_, err := client.FetchFile(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, figyaml.EINVALID, figyaml.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(fileJSON))
		}))
		defer server.Close()

		client := fighttp.NewClient("secret", fighttp.WithBaseURL(server.URL))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchFile(ctx, "abc123")
		require.Error(t, err)
	})

	t.Run("rate limit option still completes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(fileJSON))
		}))
		defer server.Close()

		client := fighttp.NewClient("secret",
			fighttp.WithBaseURL(server.URL),
			fighttp.WithRateLimit(100),
		)

		for range 3 {
			_, err := client.FetchFile(context.Background(), "abc123")
			require.NoError(t, err)
		}
	})
}

func TestParseFileKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"design URL", "https://www.figma.com/design/ABC123xyz/My-App?node-id=1-2", "ABC123xyz", false},
		{"file URL", "https://www.figma.com/file/ABC123xyz/My-App", "ABC123xyz", false},
		{"bare key", "ABC123xyz", "ABC123xyz", false},
		{"unrecognized figma URL", "https://www.figma.com/community/ABC", "", true},
		{"garbage", "not a key!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fighttp.ParseFileKey(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, figyaml.EINVALID, figyaml.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNodeID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1:2", fighttp.ParseNodeID("https://www.figma.com/design/ABC/App?node-id=1-2"))
	assert.Equal(t, "1:2", fighttp.ParseNodeID("https://www.figma.com/design/ABC/App?node-id=1-2&t=xyz"))
	assert.Empty(t, fighttp.ParseNodeID("https://www.figma.com/design/ABC/App"))
}
