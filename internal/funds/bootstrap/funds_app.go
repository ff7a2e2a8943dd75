package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Lexv0lk/funds-service/internal/funds/application"
	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	httpwrap "github.com/Lexv0lk/funds-service/internal/funds/infrastructure/http"
	"github.com/Lexv0lk/funds-service/internal/funds/infrastructure/kafka"
	"github.com/Lexv0lk/funds-service/internal/funds/infrastructure/memory"
	"github.com/Lexv0lk/funds-service/internal/funds/infrastructure/policy"
	"github.com/Lexv0lk/funds-service/internal/funds/infrastructure/postgres"
	"github.com/Lexv0lk/funds-service/internal/pkg/database"
	"github.com/Lexv0lk/funds-service/internal/pkg/jwt"
	"github.com/Lexv0lk/funds-service/internal/pkg/logging"
	"github.com/Lexv0lk/funds-service/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout = 5 * time.Second
)

type storage struct {
	ledger           domain.Ledger
	accountOpener    domain.AccountOpener
	holderAuthorizer domain.Authorizer
}

type FundsApp struct {
	cfg    FundsConfig
	logger logging.Logger

	// mu guards the fields below; Shutdown may run while Run is still wiring.
	mu        sync.Mutex
	stopped   bool
	server    *http.Server
	dbpool    *pgxpool.Pool
	publisher *kafka.Publisher
}

func NewFundsApp(cfg FundsConfig, logger logging.Logger) *FundsApp {
	return &FundsApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *FundsApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	store, dbpool, err := a.openStorage(ctx)
	if err != nil {
		return err
	}

	var authorizer domain.Authorizer = policy.NewOwnershipAuthorizer()
	if cfg.AuthorizationSource == AuthorizationFromDatabase {
		authorizer = store.holderAuthorizer
	}

	var publisher domain.EventPublisher = domain.NopEventPublisher{}
	var kafkaPublisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher = kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		publisher = kafkaPublisher
	}

	moneyMovementCase := application.NewMoneyMovementCase(store.ledger, authorizer, publisher, logger)
	accountsCase := application.NewAccountsCase(store.ledger, store.accountOpener)

	fundsHandler := httpwrap.NewFundsHandler(moneyMovementCase, accountsCase)
	authMiddleware := httpwrap.NewAuthMiddleware(jwt.NewJWTTokenParser(), []byte(cfg.JwtSecret))

	server := &http.Server{
		Addr:    cfg.HttpPort,
		Handler: NewRouter(fundsHandler, authMiddleware),
	}

	a.mu.Lock()
	if a.stopped || ctx.Err() != nil {
		a.mu.Unlock()
		closeResources(dbpool, kafkaPublisher, logger)
		return nil
	}
	a.server = server
	a.dbpool = dbpool
	a.publisher = kafkaPublisher
	a.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", cfg.HttpPort, "ledger", cfg.LedgerStorage)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *FundsApp) openStorage(ctx context.Context) (storage, *pgxpool.Pool, error) {
	if a.cfg.LedgerStorage == LedgerStorageMemory {
		ledger := memory.NewLedger()
		return storage{
			ledger:           ledger,
			accountOpener:    ledger,
			holderAuthorizer: ledger,
		}, nil, nil
	}

	dbURL := a.cfg.DbSettings.GetURL()

	err := database.MigrateDatabase(dbURL, migrations.FS, migrations.Dir, database.PgxDriverName, database.PostgresDialect)
	if err != nil {
		return storage{}, nil, err
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return storage{}, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return storage{
		ledger:           postgres.NewLedger(dbpool, a.logger),
		accountOpener:    postgres.NewAccountRegistry(database.NewDelegateTxManager(dbpool, a.logger)),
		holderAuthorizer: postgres.NewHolderAuthorizer(dbpool),
	}, dbpool, nil
}

// Shutdown stops the server and releases its resources. A Run that has not
// started serving yet will not start after Shutdown.
func (a *FundsApp) Shutdown() {
	a.mu.Lock()
	a.stopped = true
	server, dbpool, publisher := a.server, a.dbpool, a.publisher
	a.server, a.dbpool, a.publisher = nil, nil, nil
	a.mu.Unlock()

	if server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	closeResources(dbpool, publisher, a.logger)
}

func closeResources(dbpool *pgxpool.Pool, publisher *kafka.Publisher, logger logging.Logger) {
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err.Error())
		}
	}

	if dbpool != nil {
		dbpool.Close()
	}
}
