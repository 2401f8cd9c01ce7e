package routes

import (
	"log"

	"github.com/gin-gonic/gin"
)

const (
	PathBillables = "/billables/:type/:id"
	PathLinks     = "/links"
)

func addBillableRoutes(rg *gin.RouterGroup, h billableHandlers) {
	billables := rg.Group(PathBillables)
	{
		billables.PUT("/remote-user", h.remoteUser.CreateOrUpdate)
		billables.POST("/remote-user", h.remoteUser.Create)
		billables.PATCH("/remote-user", h.remoteUser.Update)
		billables.GET("/remote-user", h.remoteUser.GetRemoteUser)
		billables.GET("/link", h.remoteUser.GetLink)
	}

	links := rg.Group(PathLinks)
	{
		links.GET("/remote/:remote_id", h.remoteUser.GetLinkByRemoteID)
	}

	if h.wallets == nil {
		log.Printf("[link][routes] capability routes disabled: provider has no capability API")
		return
	}

	{
		billables.POST("/wallets", h.wallets.CreateWallet)
		billables.GET("/wallets", h.wallets.ListWallets)

		billables.POST("/bank-accounts", h.bankAccounts.CreateBankAccount)
		billables.GET("/bank-accounts", h.bankAccounts.ListBankAccounts)
		billables.GET("/bank-accounts/:bank_account_id/mandates", h.mandates.ListBankAccountMandates)

		billables.POST("/kyc-documents", h.kyc.CreateDocument)
		billables.GET("/kyc-documents", h.kyc.ListDocuments)
		billables.POST("/kyc-documents/:document_id/pages", h.kyc.AddPage)
		billables.PUT("/kyc-documents/:document_id/submit", h.kyc.SubmitDocument)

		billables.POST("/mandates", h.mandates.CreateMandate)
		billables.GET("/mandates", h.mandates.ListMandates)
		billables.GET("/mandates/:mandate_id", h.mandates.GetMandate)
		billables.PUT("/mandates/:mandate_id/cancel", h.mandates.CancelMandate)
	}
}
