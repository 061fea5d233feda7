package services

import (
	portsrepo "github.com/sarrafhub/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/sarrafhub/exchange_backend/internal/core/ports/services"
	"github.com/sarrafhub/exchange_backend/internal/platform/config"
	"github.com/sarrafhub/exchange_backend/internal/platform/events"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.UserService = NewUserService(repos.UserRepo)
	container.CurrencyService = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRateService = NewExchangeRateService(repos.ExchangeRateRepo, container.CurrencyService)
	container.CommissionService = NewCommissionService(repos.CommissionRuleRepo, repos.UserRepo, publisher)
	container.ReceiptService = NewReceiptService(repos.MarketTxRepo, repos.UserRepo, cfg.PublicBaseURL)
	container.TransferService = NewTransferService(repos.TransferRepo, repos.UserRepo, container.CommissionService, container.ExchangeRateService)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthService = NewGoogleOAuthHandlerService(cfg, repos.UserRepo)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.CommissionSvcFacade   = (*commissionService)(nil)
	_ portssvc.ReceiptSvcFacade      = (*receiptService)(nil)
	_ portssvc.TransferSvcFacade     = (*transferService)(nil)
)
