package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MockGateway answers every provider port from memory (PAYMENT_GATEWAY_MOCK).
// Users start at KYC level LIGHT and move to REGULAR once an identity proof
// is submitted, which the mock validates on the spot.

type MockGateway struct {
	mu        sync.Mutex
	users     map[string]entities.RemoteIdentity
	wallets   map[string][]entities.Wallet
	accounts  map[string][]entities.BankAccount
	documents map[string][]entities.KYCDocument
	mandates  map[string]entities.Mandate
}

var (
	_ interfaces.IIdentityProvider   = (*MockGateway)(nil)
	_ interfaces.ICapabilityProvider = (*MockGateway)(nil)
)

func NewMockGateway() *MockGateway {
	log.Printf("[link][gateway] mock mode enabled")
	return &MockGateway{
		users:     make(map[string]entities.RemoteIdentity),
		wallets:   make(map[string][]entities.Wallet),
		accounts:  make(map[string][]entities.BankAccount),
		documents: make(map[string][]entities.KYCDocument),
		mandates:  make(map[string]entities.Mandate),
	}
}

func mockID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func (g *MockGateway) CreateUser(_ context.Context, personType entities.PersonType, requestPayload json.RawMessage) (entities.RemoteIdentity, error) {
	var body map[string]any
	if err := json.Unmarshal(requestPayload, &body); err != nil {
		return entities.RemoteIdentity{}, err
	}
	email, _ := body["Email"].(string)

	g.mu.Lock()
	defer g.mu.Unlock()
	u := entities.RemoteIdentity{
		ID:         mockID("user"),
		PersonType: personType,
		Email:      email,
		Status:     entities.RemoteStatus{KYCLevel: "LIGHT", UserCategory: "OWNER", TermsAccepted: true},
	}
	u.Raw = mockRaw(u, body)
	g.users[u.ID] = u
	log.Printf("[link][gateway] mock create user remote_user_id=%s", u.ID)
	return u, nil
}

func (g *MockGateway) UpdateUser(_ context.Context, _ entities.PersonType, requestPayload json.RawMessage) (entities.RemoteIdentity, error) {
	var body map[string]any
	if err := json.Unmarshal(requestPayload, &body); err != nil {
		return entities.RemoteIdentity{}, err
	}
	id, _ := body["Id"].(string)

	g.mu.Lock()
	defer g.mu.Unlock()
	u, ok := g.users[id]
	if !ok {
		return entities.RemoteIdentity{}, &APIError{StatusCode: 404, Type: "ressource_not_found", Message: fmt.Sprintf("user %s not found", id)}
	}
	if email, ok := body["Email"].(string); ok && email != "" {
		u.Email = email
	}
	u.Raw = mockRaw(u, body)
	g.users[id] = u
	return u, nil
}

func (g *MockGateway) GetUser(_ context.Context, remoteUserID string) (entities.RemoteIdentity, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	u, ok := g.users[remoteUserID]
	if !ok {
		return entities.RemoteIdentity{}, &APIError{StatusCode: 404, Type: "ressource_not_found", Message: fmt.Sprintf("user %s not found", remoteUserID)}
	}
	return u, nil
}

func mockRaw(u entities.RemoteIdentity, body map[string]any) json.RawMessage {
	out := make(map[string]any, len(body)+4)
	for k, v := range body {
		out[k] = v
	}
	out["Id"] = u.ID
	out["PersonType"] = u.PersonType
	out["KYCLevel"] = u.Status.KYCLevel
	out["CreationDate"] = time.Now().UTC().Unix()
	b, _ := json.Marshal(out)
	return b
}

func (g *MockGateway) CreateWallet(_ context.Context, w entities.Wallet) (entities.Wallet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	w.ID = mockID("wallet")
	w.Balance = &entities.Money{Currency: w.Currency}
	for _, owner := range w.Owners {
		g.wallets[owner] = append(g.wallets[owner], w)
	}
	return w, nil
}

func (g *MockGateway) ListWallets(_ context.Context, remoteUserID string) ([]entities.Wallet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]entities.Wallet(nil), g.wallets[remoteUserID]...), nil
}

func (g *MockGateway) CreateBankAccount(_ context.Context, remoteUserID string, account entities.BankAccount) (entities.BankAccount, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	account.ID = mockID("ba")
	account.UserID = remoteUserID
	account.Active = true
	g.accounts[remoteUserID] = append(g.accounts[remoteUserID], account)
	return account, nil
}

func (g *MockGateway) ListBankAccounts(_ context.Context, remoteUserID string) ([]entities.BankAccount, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]entities.BankAccount(nil), g.accounts[remoteUserID]...), nil
}

func (g *MockGateway) CreateKYCDocument(_ context.Context, remoteUserID, docType string) (entities.KYCDocument, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	doc := entities.KYCDocument{
		ID:           mockID("kyc"),
		UserID:       remoteUserID,
		Type:         docType,
		Status:       entities.KYCDocumentStatusCreated,
		CreationDate: time.Now().UTC().Unix(),
	}
	g.documents[remoteUserID] = append(g.documents[remoteUserID], doc)
	return doc, nil
}

func (g *MockGateway) CreateKYCPage(_ context.Context, remoteUserID, documentID string, _ []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.findDocument(remoteUserID, documentID); !ok {
		return &APIError{StatusCode: 404, Type: "ressource_not_found", Message: "document not found"}
	}
	return nil
}

func (g *MockGateway) SubmitKYCDocument(_ context.Context, remoteUserID, documentID string) (entities.KYCDocument, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.findDocument(remoteUserID, documentID)
	if !ok {
		return entities.KYCDocument{}, &APIError{StatusCode: 404, Type: "ressource_not_found", Message: "document not found"}
	}
	doc := &g.documents[remoteUserID][i]
	doc.Status = entities.KYCDocumentStatusValidated
	if doc.Type == entities.KYCIdentityProof {
		if u, ok := g.users[remoteUserID]; ok {
			u.Status.KYCLevel = "REGULAR"
			g.users[remoteUserID] = u
		}
	}
	return *doc, nil
}

func (g *MockGateway) findDocument(remoteUserID, documentID string) (int, bool) {
	for i, d := range g.documents[remoteUserID] {
		if d.ID == documentID {
			return i, true
		}
	}
	return 0, false
}

func (g *MockGateway) ListKYCDocuments(_ context.Context, remoteUserID string, filter entities.KYCDocumentFilter) ([]entities.KYCDocument, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []entities.KYCDocument
	for _, d := range g.documents[remoteUserID] {
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (g *MockGateway) CreateMandate(_ context.Context, m entities.Mandate) (entities.Mandate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	owner := ""
	for userID, accounts := range g.accounts {
		for _, a := range accounts {
			if a.ID == m.BankAccountID {
				owner = userID
			}
		}
	}
	if owner == "" {
		return entities.Mandate{}, &APIError{StatusCode: 404, Type: "ressource_not_found", Message: "bank account not found"}
	}
	m.ID = mockID("mandate")
	m.UserID = owner
	m.Status = "CREATED"
	m.RedirectURL = "https://mock.mangopay.local/mandates/" + m.ID + "?returnURL=" + m.ReturnURL
	g.mandates[m.ID] = m
	return m, nil
}

func (g *MockGateway) GetMandate(_ context.Context, mandateID string) (entities.Mandate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m, ok := g.mandates[mandateID]
	if !ok {
		return entities.Mandate{}, &APIError{StatusCode: 404, Type: "ressource_not_found", Message: "mandate not found"}
	}
	return m, nil
}

func (g *MockGateway) CancelMandate(_ context.Context, mandateID string) (entities.Mandate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m, ok := g.mandates[mandateID]
	if !ok {
		return entities.Mandate{}, &APIError{StatusCode: 404, Type: "ressource_not_found", Message: "mandate not found"}
	}
	m.Status = "FAILED"
	g.mandates[mandateID] = m
	return m, nil
}

func (g *MockGateway) ListMandates(_ context.Context, remoteUserID string) ([]entities.Mandate, error) {
	return g.filterMandates(func(m entities.Mandate) bool { return m.UserID == remoteUserID }), nil
}

func (g *MockGateway) ListBankAccountMandates(_ context.Context, remoteUserID, bankAccountID string) ([]entities.Mandate, error) {
	return g.filterMandates(func(m entities.Mandate) bool {
		return m.UserID == remoteUserID && m.BankAccountID == bankAccountID
	}), nil
}

func (g *MockGateway) filterMandates(keep func(entities.Mandate) bool) []entities.Mandate {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []entities.Mandate
	for _, m := range g.mandates {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
