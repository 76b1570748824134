package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeolens/archeolens-server/internal/model"
)

func TestClient_Signin_SetsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/signin", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"accessToken": "tok-abc",
			"user":        map[string]any{"id": "u-1", "email": "ana@example.com", "name": "Ana"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, user, err := c.Signin(context.Background(), "ana@example.com", "senha")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
	assert.Equal(t, "tok-abc", c.Token())
	assert.Equal(t, "Ana", user.Name)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"sites": []any{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-abc")

	_, err := c.ListSites(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "Você não tem permissão para editar este sítio"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.UpdateSite(context.Background(), "s-1", model.SiteParams{Name: "x"})
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Você não tem permissão para editar este sítio", apiErr.Message)
}

func TestClient_ServerError_NoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Health(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClient_SearchSites_EncodesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"sites": []any{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SearchSites(context.Background(), "são raimundo", "city")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "q=s%C3%A3o+raimundo")
	assert.Contains(t, gotQuery, "type=city")
}

func TestClient_UploadPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload-photo", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "foto.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"photoUrl": "https://photos.test/abc.png",
			"fileName": "abc.png",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.UploadPhoto(context.Background(), "foto.png", "image/png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "abc.png", result.FileName)
	assert.Equal(t, "https://photos.test/abc.png", result.PhotoURL)
}
