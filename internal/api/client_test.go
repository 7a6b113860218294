package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "test-session", time.Second)
	require.NoError(t, err)

	return client, server
}

func TestNewClientRequiresServer(t *testing.T) {
	_, err := NewClient("", "", 0)
	assert.ErrorIs(t, err, ErrServerRequired)

	_, err = NewClient("   ", "", 0)
	assert.ErrorIs(t, err, ErrServerRequired)
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diaries/search", r.URL.Path)
		w.Write([]byte(`{"data": []}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL+"/", "", time.Second)
	require.NoError(t, err)

	_, err = client.SearchPage(context.Background(), CollectionDiaries, SearchOptions{Size: 12})
	require.NoError(t, err)
}

func TestSearchPagePagedEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		cookie, err := r.Cookie("SESSION")
		require.NoError(t, err)
		assert.Equal(t, "test-session", cookie.Value)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 2, body["page"])
		assert.EqualValues(t, 12, body["size"])
		assert.Equal(t, "vault", body["keyword"])
		assert.Equal(t, true, body["escaped"])
		assert.Equal(t, "2026-03-01", body["from"])

		w.Write([]byte(`{"data": {
			"content": [{"id": 1, "title": "a"}, {"id": 2, "title": "b"}],
			"last": true,
			"totalElements": 26
		}}`))
	})

	escaped := true
	page, err := client.SearchPage(context.Background(), CollectionDiaries, SearchOptions{
		Page:    2,
		Size:    12,
		Keyword: "vault",
		Escaped: &escaped,
		From:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.Last)
	assert.Equal(t, int64(26), page.Total)
	assert.Equal(t, int64(1), page.Items[0].ID)
}

func TestSearchPageBareArray(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"id": 7, "title": "x"}]}`))
	})

	page, err := client.SearchPage(context.Background(), CollectionParties, SearchOptions{Size: 12})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.False(t, page.Last, "a bare array carries no last-page marker")
	assert.Equal(t, int64(-1), page.Total)
}

func TestSearchPageMissingDataField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "ok"}`))
	})

	page, err := client.SearchPage(context.Background(), CollectionDiaries, SearchOptions{Size: 12})

	require.NoError(t, err, "a malformed envelope must not surface as an error")
	assert.Empty(t, page.Items)
	assert.True(t, page.Last)
}

func TestSearchPageNullData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	})

	page, err := client.SearchPage(context.Background(), CollectionDiaries, SearchOptions{Size: 12})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.True(t, page.Last)
}

func TestSearchPageServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "database on fire"}`))
	})

	_, err := client.SearchPage(context.Background(), CollectionDiaries, SearchOptions{Size: 12})
	require.Error(t, err)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	assert.Contains(t, serverErr.Error(), "database on fire")
	assert.True(t, IsServer(err))
	assert.False(t, IsTransport(err))
}

func TestSearchPageTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	client, err := NewClient(server.URL, "", time.Second)
	require.NoError(t, err)

	server.Close()

	_, err = client.SearchPage(context.Background(), CollectionDiaries, SearchOptions{Size: 12})
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsServer(err))
}

func TestCreate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/diaries", r.URL.Path)

		var item Item
		require.NoError(t, json.NewDecoder(r.Body).Decode(&item))
		assert.Equal(t, "Midnight heist", item.Title)

		item.ID = 42
		payload, _ := json.Marshal(map[string]interface{}{"data": item})
		w.WriteHeader(http.StatusCreated)
		w.Write(payload)
	})

	created, err := client.Create(context.Background(), CollectionDiaries, Item{Title: "Midnight heist"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Midnight heist", created.Title)
}

func TestDelete(t *testing.T) {
	var gotPath string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), CollectionParties, 17))
	assert.Equal(t, "/parties/17", gotPath)
}

func TestDeleteNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "no such record"}`))
	})

	err := client.Delete(context.Background(), CollectionDiaries, 999)
	require.Error(t, err)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusNotFound, serverErr.StatusCode)
}
