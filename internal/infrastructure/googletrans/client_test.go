package googletrans

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "안녕", r.PostForm.Get("q"))
		assert.Equal(t, "ko", r.PostForm.Get("source"))
		assert.Equal(t, "en", r.PostForm.Get("target"))
		assert.Equal(t, "text", r.PostForm.Get("format"))
		assert.Equal(t, "test-key", r.PostForm.Get("key"))

		fmt.Fprint(w, `{"data":{"translations":[{"translatedText":"hello"}]}}`)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	out, err := c.Translate(context.Background(), "안녕", "ko", "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestTranslateNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"quota"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Translate(context.Background(), "hi", "en", "ko")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestTranslateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data":{"translations":[]}}`)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Translate(context.Background(), "hi", "en", "ko")
	require.Error(t, err)
}

func TestTranslateTransportError(t *testing.T) {
	c := NewClient("test-key")
	c.baseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := c.Translate(context.Background(), "hi", "en", "ko")
	require.Error(t, err)
}
