package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/procurement_app/internal/core/services"
	"github.com/SscSPs/procurement_app/internal/dto"
	"github.com/SscSPs/procurement_app/internal/handlers"
	"github.com/SscSPs/procurement_app/internal/platform/config"
	"github.com/SscSPs/procurement_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/procurement_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the real services over a temporary SQLite store.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLiteDB(context.Background(), filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseSQLiteDB(db) })
	require.NoError(t, database.MigrateSQLite(db))

	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, services.NewServiceContainer(sqlite.NewRepositoryProvider(db)))
	return r
}

func do(r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_AcmeSupplierRoundTrip(t *testing.T) {
	r := newTestServer(t)
	payload := `{"Supplier":"Acme","SupplierNameOriginal":"Acme AS","SupplierCountry":"NO","VatID":"NO123","NACE":"4611"}`

	w := do(r, http.MethodPost, "/suppliers", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var created dto.SupplierResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, dto.SupplierResponse{
		ID: created.ID, Supplier: "Acme", SupplierNameOriginal: "Acme AS", SupplierCountry: "NO", VatID: "NO123", NACE: "4611",
	}, created)

	w = do(r, http.MethodGet, "/suppliers/"+jsonNumber(created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.SupplierResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	w = do(r, http.MethodGet, "/suppliers/total_suppliers", "")
	assert.Equal(t, "1", w.Body.String())
}

func TestRoutes_TransactionsAndTotals(t *testing.T) {
	r := newTestServer(t)

	w := do(r, http.MethodGet, "/transactions/total_spent", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Body.String())

	for _, v := range []string{"100", "200", "50.5"} {
		w = do(r, http.MethodPost, "/transactions", newTransactionBody(`"TransactionValueNOK":`+v))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = do(r, http.MethodPost, "/transactions", newTransactionBody(`"InvoiceDate":"2024-03-01T10:00:00+01:00","TransactionValueNOK":0`))
	require.Equal(t, http.StatusOK, w.Code)
	var created dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.InvoiceDate)
	assert.Equal(t, "2024-03-01T10:00:00+01:00", *created.InvoiceDate)
	assert.Nil(t, created.DueDate)

	w = do(r, http.MethodGet, "/transactions/"+jsonNumber(created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	w = do(r, http.MethodGet, "/transactions/total_spent", "")
	assert.Equal(t, "350.5", w.Body.String())

	w = do(r, http.MethodGet, "/transactions", "")
	var list []dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 4)

	w = do(r, http.MethodGet, "/transactions/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_IncompletePayloadsCreateNothing(t *testing.T) {
	r := newTestServer(t)

	w := do(r, http.MethodPost, "/suppliers", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/transactions", `{"Supplier":null}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/suppliers/total_suppliers", "")
	assert.Equal(t, "0", w.Body.String())

	w = do(r, http.MethodGet, "/transactions", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRoutes_HealthAndReady(t *testing.T) {
	r := newTestServer(t)

	w := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = do(r, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

// newTransactionBody completes a transaction payload around the given value and date fields.
func newTransactionBody(fields string) string {
	return `{"InvoiceNumber":"INV","Supplier":"Acme","SpendCategoryL1":"IT","SpendCategoryL2":"Software",` +
		`"SpendCategoryL3":"SaaS","SpendCategoryL4":"CRM",` + fields + `}`
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
