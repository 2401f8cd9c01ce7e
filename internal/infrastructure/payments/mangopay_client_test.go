package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"mangopay_billable/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mangoPayStub serves the OAuth token endpoint and hands every API call to
// the handler under test.
func mangoPayStub(t *testing.T, api http.HandlerFunc) (*MangoPayClient, *int32) {
	t.Helper()
	var tokenCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v2.01/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-1" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"tok-1","token_type":"bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		api(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewMangoPayClient(MangoPayConfig{ClientID: "client-1", APIKey: "secret", BaseURL: srv.URL + "/", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client, &tokenCalls
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewMangoPayClient_MissingCredentials(t *testing.T) {
	_, err := NewMangoPayClient(MangoPayConfig{ClientID: "client-1"})
	require.ErrorIs(t, err, ErrMissingMangoPayCredentials)
}

func TestMangoPayClient_CreateUser(t *testing.T) {
	client, tokenCalls := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2.01/client-1/users/legal", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme", body["Name"])
		writeJSON(w, http.StatusOK, map[string]any{
			"Id": "user_1", "PersonType": "LEGAL", "Email": "billing@acme.test",
			"KYCLevel": "LIGHT", "UserCategory": "OWNER", "TermsAndConditionsAccepted": true,
		})
	})

	remote, err := client.CreateUser(context.Background(), entities.PersonTypeLegal, json.RawMessage(`{"Name":"Acme"}`))
	require.NoError(t, err)
	assert.Equal(t, "user_1", remote.ID)
	assert.Equal(t, entities.PersonTypeLegal, remote.PersonType)
	assert.Equal(t, entities.RemoteStatus{KYCLevel: "LIGHT", UserCategory: "OWNER", TermsAccepted: true}, remote.Status)
	assert.NotEmpty(t, remote.Raw)

	_, err = client.CreateUser(context.Background(), entities.PersonTypeLegal, json.RawMessage(`{"Name":"Acme"}`))
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(tokenCalls), "token must be cached")
}

func TestMangoPayClient_UpdateUser(t *testing.T) {
	client, _ := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v2.01/client-1/users/natural/user_9", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"Id": "user_9", "PersonType": "NATURAL", "KYCLevel": "REGULAR"})
	})

	remote, err := client.UpdateUser(context.Background(), entities.PersonTypeNatural, json.RawMessage(`{"Id":"user_9","FirstName":"Ada"}`))
	require.NoError(t, err)
	assert.Equal(t, "REGULAR", remote.Status.KYCLevel)

	_, err = client.UpdateUser(context.Background(), entities.PersonTypeNatural, json.RawMessage(`{"FirstName":"Ada"}`))
	require.ErrorIs(t, err, ErrMissingRemoteUserID)
}

func TestMangoPayClient_APIError(t *testing.T) {
	client, _ := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"Message": "One or several required parameters are missing or incorrect.",
			"Type":    "param_error",
			"Id":      "err-1",
			"errors":  map[string]string{"Email": "The Email field is required."},
		})
	})

	_, err := client.CreateUser(context.Background(), entities.PersonTypeLegal, json.RawMessage(`{}`))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "param_error", apiErr.Type)
	assert.Equal(t, "The Email field is required.", apiErr.Errors["Email"])
	assert.Contains(t, apiErr.Error(), "status=400")
}

func TestMangoPayClient_NonJSONError(t *testing.T) {
	client, _ := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream unavailable")
	})

	_, err := client.GetMandate(context.Background(), "m_1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestMangoPayClient_ListPaginates(t *testing.T) {
	client, _ := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.01/client-1/users/user_1/wallets", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		n := mangoPayPageSize
		if page == 2 {
			n = 3
		}
		wallets := make([]entities.Wallet, n)
		for i := range wallets {
			wallets[i] = entities.Wallet{ID: fmt.Sprintf("w_%d_%d", page, i), Currency: "EUR"}
		}
		writeJSON(w, http.StatusOK, wallets)
	})

	wallets, err := client.ListWallets(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Len(t, wallets, mangoPayPageSize+3)
}

func TestMangoPayClient_ListPageLimit(t *testing.T) {
	var calls int32
	client, _ := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, make([]entities.Wallet, mangoPayPageSize))
	})
	client.maxPages = 2

	_, err := client.ListWallets(context.Background(), "user_1")
	require.ErrorIs(t, err, ErrListTruncated)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestMangoPayClient_KYC(t *testing.T) {
	client, _ := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2.01/client-1/users/user_1/kyc/documents/":
			writeJSON(w, http.StatusOK, entities.KYCDocument{ID: "doc_1", Type: entities.KYCIdentityProof, Status: entities.KYCDocumentStatusCreated})
		case r.Method == http.MethodPost && r.URL.Path == "/v2.01/client-1/users/user_1/kyc/documents/doc_1/pages":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")), body["File"])
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPut && r.URL.Path == "/v2.01/client-1/users/user_1/kyc/documents/doc_1":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "VALIDATION_ASKED", body["Status"])
			writeJSON(w, http.StatusOK, entities.KYCDocument{ID: "doc_1", Status: entities.KYCDocumentStatusValidationAsked})
		case r.Method == http.MethodGet && r.URL.Path == "/v2.01/client-1/users/user_1/kyc/documents/":
			assert.Equal(t, "VALIDATED", r.URL.Query().Get("Status"))
			writeJSON(w, http.StatusOK, []entities.KYCDocument{{ID: "doc_0", Status: entities.KYCDocumentStatusValidated}})
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	doc, err := client.CreateKYCDocument(ctx, "user_1", entities.KYCIdentityProof)
	require.NoError(t, err)
	assert.Equal(t, "doc_1", doc.ID)

	require.NoError(t, client.CreateKYCPage(ctx, "user_1", "doc_1", []byte("%PDF-1.4")))

	submitted, err := client.SubmitKYCDocument(ctx, "user_1", "doc_1")
	require.NoError(t, err)
	assert.Equal(t, entities.KYCDocumentStatusValidationAsked, submitted.Status)

	docs, err := client.ListKYCDocuments(ctx, "user_1", entities.KYCDocumentFilter{Status: entities.KYCDocumentStatusValidated})
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestMangoPayClient_Mandates(t *testing.T) {
	client, _ := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2.01/client-1/mandates/directdebit/web":
			var m entities.Mandate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
			assert.Equal(t, "ba_1", m.BankAccountID)
			m.ID = "m_1"
			m.RedirectURL = "https://mangopay.test/m_1"
			writeJSON(w, http.StatusOK, m)
		case r.Method == http.MethodPut && r.URL.Path == "/v2.01/client-1/mandates/m_1/cancel":
			writeJSON(w, http.StatusOK, entities.Mandate{ID: "m_1", Status: "FAILED"})
		case r.Method == http.MethodGet && r.URL.Path == "/v2.01/client-1/users/user_1/bankaccounts/ba_1/mandates":
			writeJSON(w, http.StatusOK, []entities.Mandate{{ID: "m_1"}})
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	m, err := client.CreateMandate(ctx, entities.Mandate{BankAccountID: "ba_1", Culture: "EN", ReturnURL: "https://app.test/return"})
	require.NoError(t, err)
	assert.Equal(t, "https://mangopay.test/m_1", m.RedirectURL)

	cancelled, err := client.CancelMandate(ctx, "m_1")
	require.NoError(t, err)
	assert.Equal(t, "FAILED", cancelled.Status)

	ms, err := client.ListBankAccountMandates(ctx, "user_1", "ba_1")
	require.NoError(t, err)
	assert.Len(t, ms, 1)
}

type countingObserver struct{ calls int32 }

func (o *countingObserver) ObserveProviderRequest(string, string, time.Time) {
	atomic.AddInt32(&o.calls, 1)
}

func TestMangoPayClient_RequestObserver(t *testing.T) {
	client, _ := mangoPayStub(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, entities.Mandate{ID: "m_1"})
	})
	obs := &countingObserver{}
	WithRequestObserver(obs)(client)

	_, err := client.GetMandate(context.Background(), "m_1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&obs.calls))
}
