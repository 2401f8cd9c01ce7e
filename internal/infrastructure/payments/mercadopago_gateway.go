package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// customerAPI is the part of the SDK customer client the gateway uses.
type customerAPI interface {
	Create(ctx context.Context, request customer.Request) (*customer.Response, error)
	Get(ctx context.Context, id string) (*customer.Response, error)
	Update(ctx context.Context, id string, request customer.Request) (*customer.Response, error)
}

// MercadoPagoGateway keeps billables as Mercado Pago customers. Customers
// carry no KYC data, so the cached status stays empty; the person type is
// kept in the customer description.

type MercadoPagoGateway struct {
	customers customerAPI
}

var _ interfaces.IIdentityProvider = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[link][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[link][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[link][mercadopago] customer client initialized")

	return &MercadoPagoGateway{customers: customer.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateUser(ctx context.Context, personType entities.PersonType, requestPayload json.RawMessage) (entities.RemoteIdentity, error) {
	if g == nil || g.customers == nil {
		return entities.RemoteIdentity{}, ErrMercadoPagoGatewayNotConfigured
	}
	_, req, err := customerRequest(personType, requestPayload)
	if err != nil {
		return entities.RemoteIdentity{}, err
	}
	log.Printf("[link][mercadopago] create customer start person_type=%s", personType)

	resp, err := g.customers.Create(ctx, req)
	if err != nil {
		log.Printf("[link][mercadopago] sdk create failed err=%v", err)
		return entities.RemoteIdentity{}, err
	}
	log.Printf("[link][mercadopago] create customer success customer_id=%s", resp.ID)
	return customerIdentity(resp)
}

func (g *MercadoPagoGateway) UpdateUser(ctx context.Context, personType entities.PersonType, requestPayload json.RawMessage) (entities.RemoteIdentity, error) {
	if g == nil || g.customers == nil {
		return entities.RemoteIdentity{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, req, err := customerRequest(personType, requestPayload)
	if err != nil {
		return entities.RemoteIdentity{}, err
	}
	if id == "" {
		return entities.RemoteIdentity{}, ErrMissingRemoteUserID
	}
	log.Printf("[link][mercadopago] update customer start customer_id=%s", id)

	resp, err := g.customers.Update(ctx, id, req)
	if err != nil {
		log.Printf("[link][mercadopago] sdk update failed customer_id=%s err=%v", id, err)
		return entities.RemoteIdentity{}, err
	}
	return customerIdentity(resp)
}

func (g *MercadoPagoGateway) GetUser(ctx context.Context, remoteUserID string) (entities.RemoteIdentity, error) {
	if g == nil || g.customers == nil {
		return entities.RemoteIdentity{}, ErrMercadoPagoGatewayNotConfigured
	}
	resp, err := g.customers.Get(ctx, remoteUserID)
	if err != nil {
		log.Printf("[link][mercadopago] sdk get failed customer_id=%s err=%v", remoteUserID, err)
		return entities.RemoteIdentity{}, err
	}
	return customerIdentity(resp)
}

// customerRequest maps the MangoPay-shaped payload onto a customer: legal
// users become a customer named after the company.
func customerRequest(personType entities.PersonType, payload json.RawMessage) (string, customer.Request, error) {
	var body struct {
		ID        string `json:"Id"`
		Email     string `json:"Email"`
		FirstName string `json:"FirstName"`
		LastName  string `json:"LastName"`
		Name      string `json:"Name"`
		Tag       string `json:"Tag"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		log.Printf("[link][mercadopago] payload unmarshal failed err=%v", err)
		return "", customer.Request{}, err
	}

	req := customer.Request{
		Email:       body.Email,
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Description: customerDescription(personType, body.Tag),
	}
	if personType != entities.PersonTypeNatural {
		req.FirstName = body.Name
		req.LastName = ""
	}
	return body.ID, req, nil
}

func customerDescription(personType entities.PersonType, tag string) string {
	if tag == "" {
		return string(personType)
	}
	return fmt.Sprintf("%s:%s", personType, tag)
}

func customerIdentity(resp *customer.Response) (entities.RemoteIdentity, error) {
	if resp == nil {
		return entities.RemoteIdentity{}, errors.New("empty customer response")
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[link][mercadopago] response marshal failed err=%v", err)
		return entities.RemoteIdentity{}, err
	}
	personType, _, _ := strings.Cut(resp.Description, ":")
	pt, ok := entities.ParsePersonType(personType)
	if !ok {
		pt = entities.PersonTypeLegal
	}
	return entities.RemoteIdentity{
		ID:         resp.ID,
		PersonType: pt,
		Email:      resp.Email,
		Raw:        raw,
	}, nil
}
