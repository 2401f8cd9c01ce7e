package routes

import (
	"context"
	"fmt"
	"log"

	_ "mangopay_billable/docs"
	"mangopay_billable/internal/adapter/http/handlers"
	"mangopay_billable/internal/adapter/persistence/repository"
	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/infrastructure/config"
	"mangopay_billable/internal/infrastructure/database"
	"mangopay_billable/internal/infrastructure/metrics"
	"mangopay_billable/internal/infrastructure/payments"
	"mangopay_billable/internal/usecase"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	err = router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) error {
	m := metrics.New(prometheus.DefaultRegisterer)

	store, err := newLinkStore(ctx, cfg)
	if err != nil {
		return err
	}
	identity, capabilities := newProviders(cfg, m)

	h, err := newBillableHandlers(cfg, store, identity, capabilities, m)
	if err != nil {
		return err
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillableRoutes(v1, h)
	return nil
}

// newLinkStore opens the configured identity link store and, with
// DB_AUTOMIGRATE, creates its table or schema.
func newLinkStore(ctx context.Context, cfg config.Config) (interfaces.IIdentityLinkRepository, error) {
	switch cfg.LinkStore {
	case config.StoreMemory:
		log.Printf("[link][routes] using in-memory link store")
		return repository.NewIdentityLinkMemoryRepository(), nil
	case config.StorePostgres:
		db, err := database.NewPostgresDB(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := repository.NewIdentityLinkPostgresRepository(db)
		if cfg.AutoMigrate {
			if err := repo.EnsureSchema(ctx); err != nil {
				return nil, fmt.Errorf("ensure postgres schema: %w", err)
			}
		}
		log.Printf("[link][routes] using postgres link store")
		return repo, nil
	default:
		client, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return nil, err
		}
		repo := repository.NewIdentityLinkDynamoRepository(client, cfg.IdentityLinksTable)
		if cfg.AutoMigrate {
			if err := database.EnsureIdentityLinksTable(ctx, client, repo.TableName(), repository.IdentityLinksRemoteUserIndex); err != nil {
				return nil, fmt.Errorf("ensure dynamodb table: %w", err)
			}
		}
		log.Printf("[link][routes] using dynamodb link store table=%s", repo.TableName())
		return repo, nil
	}
}

// newProviders returns nil ports when the provider cannot be configured; the
// use cases then answer ErrProviderNotConfigured instead of failing startup.
func newProviders(cfg config.Config, m *metrics.Metrics) (interfaces.IIdentityProvider, interfaces.ICapabilityProvider) {
	if cfg.MockProvider {
		gateway := payments.NewMockGateway()
		return gateway, gateway
	}

	switch cfg.IdentityProvider {
	case config.ProviderMercadoPago:
		gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
			return nil, nil
		}
		return gateway, nil
	default:
		client, err := payments.NewMangoPayClient(payments.MangoPayConfig{
			ClientID: cfg.MangoPayClientID,
			APIKey:   cfg.MangoPayKey,
			BaseURL:  cfg.MangoPayBaseURL,
			Timeout:  cfg.MangoPayTimeout,
		}, payments.WithRequestObserver(m))
		if err != nil {
			log.Printf("MangoPay client not configured: %v", err)
			return nil, nil
		}
		return client, client
	}
}

// billableHandlers holds the /billables handlers. Capability handlers are nil
// when the provider has no capability API.

type billableHandlers struct {
	remoteUser   *handlers.RemoteUserHandler
	wallets      *handlers.WalletHandler
	bankAccounts *handlers.BankAccountHandler
	kyc          *handlers.KYCHandler
	mandates     *handlers.MandateHandler
}

func newBillableHandlers(
	cfg config.Config,
	store interfaces.IIdentityLinkRepository,
	identity interfaces.IIdentityProvider,
	capabilities interfaces.ICapabilityProvider,
	m interfaces.IReconciliationMetrics,
) (billableHandlers, error) {
	byType, err := usecase.ParsePersonTypes(cfg.BillablePersonTypes)
	if err != nil {
		return billableHandlers{}, err
	}
	defaultType, ok := entities.ParsePersonType(cfg.DefaultPersonType)
	if !ok {
		return billableHandlers{}, fmt.Errorf("invalid DEFAULT_PERSON_TYPE %q", cfg.DefaultPersonType)
	}

	reconciliation := usecase.NewReconciliationUseCase(store, identity,
		usecase.WithPersonTypes(usecase.PersonTypes{Default: defaultType, ByType: byType}),
		usecase.WithMetrics(m),
	)
	h := billableHandlers{remoteUser: handlers.NewRemoteUserHandler(reconciliation)}
	if capabilities == nil {
		return h, nil
	}

	defaults := usecase.DefaultCapabilityDefaults()
	if cfg.DefaultCurrency != "" {
		defaults.Currency = cfg.DefaultCurrency
	}
	defaults.MandateReturnURL = cfg.MandateReturnURL

	h.wallets = handlers.NewWalletHandler(usecase.NewWalletUseCase(store, capabilities, defaults))
	h.bankAccounts = handlers.NewBankAccountHandler(usecase.NewBankAccountUseCase(store, capabilities))
	h.kyc = handlers.NewKYCHandler(usecase.NewKYCUseCase(store, capabilities))
	h.mandates = handlers.NewMandateHandler(usecase.NewMandateUseCase(store, capabilities, defaults))
	return h, nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
