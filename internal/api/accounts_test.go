package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountUpdateRoutesBalanceOnlyChanges(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"id":"3","name":"Savings","type":"Bank","balance":1200}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{token: "jwt"})
	svc := NewAccountService(client, staticIdentity{id: 7})

	balance := 1200.0
	acc, err := svc.Update(context.Background(), "3", model.UpdateAccount{Balance: &balance})
	require.NoError(t, err)

	assert.Equal(t, "/accounts/balance", gotPath, "balance-only updates use the dedicated route")
	assert.Equal(t, "3", gotBody["account_id"])
	assert.Equal(t, 1200.0, gotBody["new_balance"])
	assert.Equal(t, 1200.0, acc.Balance)

	// Renames go through the standard route.
	name := "Emergency Fund"
	_, err = svc.Update(context.Background(), "3", model.UpdateAccount{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "/accounts/3", gotPath)
}

func TestAccountGetAllParsesTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"1","name":"Cash","type":"Cash","balance":8346.94},
			{"id":"2","name":"Card","type":"Card","balance":9500}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{token: "jwt"})
	svc := NewAccountService(client, staticIdentity{id: 7})

	accounts, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, model.AccountCash, accounts[0].Type)
	assert.Equal(t, 8346.94, accounts[0].Balance)
}
