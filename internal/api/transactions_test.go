package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionGetAllIsUserScoped(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"id":1,"date":"2025-03-16","amount":755,"type":"INCOME","category":"Business"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{token: "jwt"})
	svc := NewTransactionService(client, staticIdentity{id: 7})

	txs, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/transactions/7", gotPath)
	require.Len(t, txs, 1)
	assert.Equal(t, model.KindIncome, txs[0].Kind)
	assert.Equal(t, 755.0, txs[0].Amount)
}

func TestTransactionGetAllFailsBeforeNetworkWithoutSession(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{})
	svc := NewTransactionService(client, staticIdentity{err: common.ErrNoSession})

	_, err := svc.GetAll(context.Background())
	assert.True(t, errors.Is(err, common.ErrNoSession))
	assert.Zero(t, hits, "no network call may be attempted without a session")

	_, err = svc.Create(context.Background(), model.CreateTransaction{Amount: 10, Kind: model.KindExpense})
	assert.True(t, errors.Is(err, common.ErrNoSession))
	assert.Zero(t, hits)
}

func TestTransactionCreateStampsUserID(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":"9","date":"2025-03-16","amount":400,"type":"EXPENSE"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{token: "jwt"})
	svc := NewTransactionService(client, staticIdentity{id: 42})

	created, err := svc.Create(context.Background(), model.CreateTransaction{
		Date:   model.NewDate(2025, 3, 16),
		Amount: 400,
		Kind:   model.KindExpense,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(42), gotBody["user_id"])
	assert.Equal(t, "EXPENSE", gotBody["type"], "kind goes out in canonical uppercase")
	assert.Equal(t, "9", created.ID.String())
}

func TestTransactionListQueryFilters(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{token: "jwt"})
	svc := NewTransactionService(client, staticIdentity{id: 7})

	_, err := svc.GetByKind(context.Background(), model.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, "type=EXPENSE", gotQuery)

	_, err = svc.GetByDateRange(context.Background(), model.NewDate(2025, 3, 1), model.NewDate(2025, 3, 31))
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "startDate=2025-03-01")
	assert.Contains(t, gotQuery, "endDate=2025-03-31")
}

func TestTransactionGetAllNullBodyBecomesEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{token: "jwt"})
	svc := NewTransactionService(client, staticIdentity{id: 7})

	txs, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}
