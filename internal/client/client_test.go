package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/domain"
)

func TestQuerySendsProjectedTranscript(t *testing.T) {
	var got domain.ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.ChatResponse{
			Answer: "Here is the spend by commodity.",
			Chart:  &domain.ChartPayload{Type: "bar", Labels: []string{"Sugar"}, Data: []float64{100}},
		})
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	messages := []domain.ChatMessage{
		{Sender: "user", Text: "Plot spend by commodity"},
	}

	resp, err := c.Query(context.Background(), messages)
	require.NoError(t, err)

	assert.Equal(t, messages, got.Messages)
	assert.Equal(t, "Here is the spend by commodity.", resp.Answer)
	require.NotNil(t, resp.Chart)
	assert.Equal(t, "bar", resp.Chart.Type)
}

func TestQueryNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	_, err := c.Query(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestQueryMalformedBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	_, err := c.Query(context.Background(), nil)
	require.Error(t, err)
}

func TestQueryNetworkFailureIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New(server.URL, 0, nil)
	_, err := c.Query(context.Background(), nil)
	require.Error(t, err)
}

func TestFetchDatasetInfersSchemaOnce(t *testing.T) {
	rows := []domain.Row{
		{"Supplier": "SweetCo", "Commodity": "Sugar", "Region": "NA", "Month": "2024-01", "Spend (USD)": 100.0},
		{"Supplier": "AgriGold", "Commodity": "Corn", "Region": "NA", "Month": "2024-01", "Spend (USD)": 50.0},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data", r.URL.Path)
		json.NewEncoder(w).Encode(rows)
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	got, schema, err := c.FetchDataset(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, domain.SpendSchema(), schema)
}

func TestFetchDatasetRejectsDivergingRows(t *testing.T) {
	rows := []domain.Row{
		{"Supplier": "SweetCo", "Commodity": "Sugar", "Region": "NA", "Month": "2024-01", "Spend (USD)": 100.0},
		{"Supplier": "AgriGold"},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(rows)
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	_, _, err := c.FetchDataset(context.Background())
	require.ErrorIs(t, err, domain.ErrSchemaMismatch)
}

func TestFetchDatasetEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	rows, schema, err := c.FetchDataset(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Nil(t, schema)
}
