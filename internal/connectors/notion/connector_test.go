package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notemill/notemill/internal/core/domain"
)

const testDataSourceID = "0123456789abcdef0123456789abcdef"

func testConnector(t *testing.T, handler http.Handler) *Connector {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conn, err := New(context.Background(), &Config{
		Token:        "secret-token",
		DataSourceID: testDataSourceID,
		BaseURL:      server.URL,
	})
	require.NoError(t, err)
	return conn
}

func pageJSON(id, title string) map[string]any {
	return map[string]any{
		"object": "page",
		"id":     id,
		"url":    "https://www.notion.so/" + title + "-" + testDataSourceID,
		"parent": map[string]any{"type": "data_source_id", "data_source_id": "ds", "database_id": "db"},
		"properties": map[string]any{
			"Status":      map[string]any{"id": "s", "type": "select", "select": map[string]any{"id": "1", "name": "Publish", "color": "green"}},
			"Tags":        map[string]any{"id": "t", "type": "multi_select", "multi_select": []any{}},
			"Slug":        map[string]any{"id": "sl", "type": "rich_text", "rich_text": []any{}},
			"Description": map[string]any{"id": "d", "type": "rich_text", "rich_text": []any{}},
			"Type":        map[string]any{"id": "ty", "type": "select"},
			"Name": map[string]any{"id": "n", "type": "title", "title": []any{
				map[string]any{"type": "text", "text": map[string]any{"content": title}, "plain_text": title,
					"annotations": map[string]any{"color": "default"}},
			}},
		},
	}
}

func TestPages_MergesPagination(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.URL.Path, "/v1/data_sources/")
		require.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		require.Equal(t, APIVersion, r.Header.Get("Notion-Version"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		calls++
		switch calls {
		case 1:
			assert.NotContains(t, body, "start_cursor")
			writeJSON(w, map[string]any{
				"object":      "list",
				"results":     []any{pageJSON("p1", "One")},
				"next_cursor": "cur-2",
				"has_more":    true,
			})
		case 2:
			assert.Equal(t, "cur-2", body["start_cursor"])
			writeJSON(w, map[string]any{
				"object":   "list",
				"results":  []any{pageJSON("p2", "Two")},
				"has_more": false,
			})
		default:
			t.Fatalf("unexpected call %d", calls)
		}
	})

	conn := testConnector(t, handler)
	pages, err := conn.Pages(context.Background())
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, "One", pages[0].Title())
	assert.Equal(t, "Two", pages[1].Title())
	assert.Equal(t, 2, calls)
}

func TestBlocks_MergesPagination(t *testing.T) {
	pageID := "11111111222233334444555555555555"
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/blocks/11111111-2222-3333-4444-555555555555/children", r.URL.Path)

		calls++
		switch calls {
		case 1:
			assert.Empty(t, r.URL.Query().Get("start_cursor"))
			writeJSON(w, map[string]any{
				"results": []any{
					map[string]any{"id": "b1", "type": "divider"},
				},
				"next_cursor": "cur-2",
				"has_more":    true,
			})
		case 2:
			assert.Equal(t, "cur-2", r.URL.Query().Get("start_cursor"))
			writeJSON(w, map[string]any{
				"results": []any{
					map[string]any{"id": "b2", "type": "breadcrumb"},
				},
				"has_more": false,
			})
		default:
			t.Fatalf("unexpected call %d", calls)
		}
	})

	conn := testConnector(t, handler)
	blocks, err := conn.Blocks(context.Background(), pageID)
	require.NoError(t, err)

	require.Len(t, blocks, 2)
	assert.Equal(t, domain.BlockDivider, blocks[0].Type)
	assert.Equal(t, domain.BlockBreadcrumb, blocks[1].Type)
}

func TestBlocks_RetriesRateLimit(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set(HeaderRetryAfter, "0")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"object":"error","code":"rate_limited","message":"slow down"}`)
			return
		}
		writeJSON(w, map[string]any{"results": []any{}, "has_more": false})
	})

	conn := testConnector(t, handler)
	blocks, err := conn.Blocks(context.Background(), testDataSourceID)
	require.NoError(t, err)
	assert.Empty(t, blocks)
	assert.Equal(t, 2, calls)
}

func TestValidate_MapsUnauthorized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/users/me", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"object":"error","code":"unauthorized","message":"API token is invalid."}`)
	})

	conn := testConnector(t, handler)
	err := conn.Validate(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
}

func TestValidate_OK(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"object": "user", "id": "bot"})
	})

	conn := testConnector(t, handler)
	assert.NoError(t, conn.Validate(context.Background()))
}

func TestValidateToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/users/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"object":"error","code":"unauthorized","message":"API token is invalid."}`)
			return
		}
		writeJSON(w, map[string]any{"object": "user", "id": "bot"})
	}))
	defer server.Close()

	ctx := context.Background()
	assert.NoError(t, ValidateToken(ctx, "good-token", server.URL))
	assert.ErrorIs(t, ValidateToken(ctx, "bad-token", server.URL), domain.ErrAuthInvalid)
	assert.ErrorIs(t, ValidateToken(ctx, "", server.URL), ErrTokenRequired)
}

func TestPages_APIError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"object":"error","code":"object_not_found","message":"Could not find data source."}`)
	})

	conn := testConnector(t, handler)
	_, err := conn.Pages(context.Background())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "object_not_found", apiErr.Code)
}

func TestNormalizeID(t *testing.T) {
	dashed := "01234567-89ab-cdef-0123-456789abcdef"

	got, err := NormalizeID("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, dashed, got)

	got, err = NormalizeID(dashed)
	require.NoError(t, err)
	assert.Equal(t, dashed, got)

	_, err = NormalizeID("not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Token: "t", DataSourceID: testDataSourceID}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", cfg.DataSourceID)

	assert.ErrorIs(t, (&Config{DataSourceID: "x"}).Validate(), ErrTokenRequired)
	assert.ErrorIs(t, (&Config{Token: "t"}).Validate(), ErrDataSourceRequired)
	assert.ErrorIs(t, (&Config{Token: "t", DataSourceID: "nope"}).Validate(), ErrInvalidID)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
