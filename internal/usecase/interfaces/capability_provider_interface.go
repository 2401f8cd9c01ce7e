package interfaces

import (
	"context"

	"mangopay_billable/internal/domain/entities"
)

type IWalletProvider interface {
	CreateWallet(ctx context.Context, w entities.Wallet) (entities.Wallet, error)
	ListWallets(ctx context.Context, remoteUserID string) ([]entities.Wallet, error)
}

type IBankAccountProvider interface {
	CreateBankAccount(ctx context.Context, remoteUserID string, account entities.BankAccount) (entities.BankAccount, error)
	ListBankAccounts(ctx context.Context, remoteUserID string) ([]entities.BankAccount, error)
}

type IKYCProvider interface {
	CreateKYCDocument(ctx context.Context, remoteUserID string, docType string) (entities.KYCDocument, error)
	CreateKYCPage(ctx context.Context, remoteUserID, documentID string, file []byte) error
	SubmitKYCDocument(ctx context.Context, remoteUserID, documentID string) (entities.KYCDocument, error)
	ListKYCDocuments(ctx context.Context, remoteUserID string, filter entities.KYCDocumentFilter) ([]entities.KYCDocument, error)
}

type IMandateProvider interface {
	CreateMandate(ctx context.Context, mandate entities.Mandate) (entities.Mandate, error)
	GetMandate(ctx context.Context, mandateID string) (entities.Mandate, error)
	CancelMandate(ctx context.Context, mandateID string) (entities.Mandate, error)
	ListMandates(ctx context.Context, remoteUserID string) ([]entities.Mandate, error)
	ListBankAccountMandates(ctx context.Context, remoteUserID, bankAccountID string) ([]entities.Mandate, error)
}

// ICapabilityProvider groups the pass-through resource APIs of a remote user.
type ICapabilityProvider interface {
	IWalletProvider
	IBankAccountProvider
	IKYCProvider
	IMandateProvider
}
