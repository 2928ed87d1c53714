package session_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/api"
	"github.com/spendlens/spendlens/internal/client"
	"github.com/spendlens/spendlens/internal/domain"
	"github.com/spendlens/spendlens/internal/repository"
	"github.com/spendlens/spendlens/internal/service"
	"github.com/spendlens/spendlens/internal/session"
)

// startServer runs the real API over a seeded dataset so the store,
// client, and service are exercised end to end.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	spendRepo := repository.NewSpendRepository(db)
	require.NoError(t, spendRepo.InsertBatch([]domain.SpendRecord{
		{Supplier: "SweetCo", Commodity: "Sugar", Region: "North America", Month: "2024-01", SpendUSD: 100},
		{Supplier: "AgriGold", Commodity: "Corn", Region: "North America", Month: "2024-01", SpendUSD: 50},
	}))
	queryLogRepo := repository.NewQueryLogRepository(db)

	analysis := service.NewAnalysisService(spendRepo, nil)
	chatSvc := service.NewChatService(analysis, queryLogRepo, nil)
	datasetSvc := service.NewDatasetService(spendRepo, queryLogRepo)

	server := httptest.NewServer(api.SetupRouter(chatSvc, datasetSvc, api.RouterConfig{
		AllowOrigins: []string{"*"},
	}))
	t.Cleanup(server.Close)
	return server
}

func TestPipelineTextAnswer(t *testing.T) {
	server := startServer(t)
	store := session.NewStore(client.New(server.URL, 0, nil), nil)

	require.NoError(t, store.Submit(context.Background(), "What is the total spend?"))

	transcript := store.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, "The total spend is $150.", transcript[2].Text)
	assert.Nil(t, transcript[2].Chart)
}

func TestPipelineChartAnswer(t *testing.T) {
	server := startServer(t)
	store := session.NewStore(client.New(server.URL, 0, nil), nil)

	require.NoError(t, store.Submit(context.Background(), "Plot spend by commodity"))

	transcript := store.Transcript()
	require.Len(t, transcript, 3)
	require.NotNil(t, transcript[2].Chart)
	assert.Equal(t, domain.ChartBar, transcript[2].Chart.Type)
	assert.Equal(t, []string{"Sugar", "Corn"}, transcript[2].Chart.Labels)
	assert.Equal(t, []float64{100, 50}, transcript[2].Chart.Data)
}

func TestPipelineServerDown(t *testing.T) {
	server := startServer(t)
	c := client.New(server.URL, 0, nil)
	server.Close()

	store := session.NewStore(c, nil)
	require.NoError(t, store.Submit(context.Background(), "anything"))

	transcript := store.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, session.ErrorText, transcript[2].Text)
	assert.Nil(t, transcript[2].Chart)
	assert.False(t, store.Pending())
}

func TestPipelineDatasetFetch(t *testing.T) {
	server := startServer(t)
	c := client.New(server.URL, 0, nil)

	rows, schema, err := c.FetchDataset(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.SpendSchema(), schema)
	assert.Equal(t, "Sugar", rows[0][domain.ColCommodity])
}
