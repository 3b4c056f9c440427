// Package wiring builds repositories and use cases for the configured storage
// driver. cmd/api and cmd/admin share it.
package wiring

import (
	"context"
	"log"

	"hero_seguros/internal/adapter/persistence/repository"
	"hero_seguros/internal/adapter/persistence/sqlite"
	"hero_seguros/internal/infrastructure/config"
	"hero_seguros/internal/infrastructure/database"
	"hero_seguros/internal/infrastructure/payments"
	"hero_seguros/internal/usecase"
	"hero_seguros/internal/usecase/interfaces"
)

type Repositories struct {
	Destinations interfaces.IDestinationRepository
	RiskFactors  interfaces.IRiskFactorRepository
	Plans        interfaces.IPlanRepository
	Quotations   interfaces.IQuotationRepository
	Users        interfaces.IUserRepository
	Payments     interfaces.IQuotationPaymentRepository

	// SQLite is set when the sqlite driver is in use.
	SQLite *sqlite.Store
	// DynamoDB is set when the dynamodb driver is in use.
	DynamoDB database.TableAdmin
}

// Close releases the SQLite handle. DynamoDB clients hold nothing to close.
func (r *Repositories) Close() error {
	if r.SQLite != nil {
		return r.SQLite.Close()
	}
	return nil
}

// NewRepositories connects to the backend selected by cfg.StorageDriver.
func NewRepositories(ctx context.Context, cfg config.Config) (*Repositories, error) {
	if cfg.StorageDriver == config.DriverSQLite {
		store, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return SQLiteRepositories(store), nil
	}

	client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	repos := DynamoRepositories(client)
	repos.DynamoDB = client
	return repos, nil
}

func DynamoRepositories(ddb repository.DynamoAPI) *Repositories {
	return &Repositories{
		Destinations: repository.NewDestinationDynamoRepository(ddb),
		RiskFactors:  repository.NewRiskFactorDynamoRepository(ddb),
		Plans:        repository.NewPlanDynamoRepository(ddb),
		Quotations:   repository.NewQuotationDynamoRepository(ddb),
		Users:        repository.NewUserDynamoRepository(ddb),
		Payments:     repository.NewQuotationPaymentDynamoRepository(ddb),
	}
}

func SQLiteRepositories(store *sqlite.Store) *Repositories {
	return &Repositories{
		Destinations: store.Destinations(),
		RiskFactors:  store.RiskFactors(),
		Plans:        store.Plans(),
		Quotations:   store.Quotations(),
		Users:        store.Users(),
		Payments:     store.Payments(),
		SQLite:       store,
	}
}

type UseCases struct {
	Destinations usecase.IDestinationUseCase
	RiskFactors  usecase.IRiskFactorUseCase
	Plans        usecase.IPlanUseCase
	Users        usecase.IUserUseCase
	Quotations   usecase.IQuotationUseCase
	Payments     usecase.IQuotationPaymentUseCase
}

func NewUseCases(repos *Repositories, gateway interfaces.IPaymentGateway, mockPayments bool) UseCases {
	return UseCases{
		Destinations: usecase.NewDestinationUseCase(repos.Destinations),
		RiskFactors:  usecase.NewRiskFactorUseCase(repos.RiskFactors, repos.Destinations),
		Plans:        usecase.NewPlanUseCase(repos.Plans),
		Users:        usecase.NewUserUseCase(repos.Users),
		Quotations:   usecase.NewQuotationUseCase(repos.Quotations, repos.Users, repos.Destinations, repos.Plans),
		Payments:     usecase.NewQuotationPaymentUseCase(repos.Payments, repos.Quotations, gateway, mockPayments),
	}
}

// NewPaymentGateway returns the Mercado Pago gateway, or nil when payments run
// in mock mode or no access token is configured.
func NewPaymentGateway(cfg config.Payments) interfaces.IPaymentGateway {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return nil
	}
	gw, err := payments.NewMercadoPagoGateway(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gw
}
