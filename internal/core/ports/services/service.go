package services

// ServiceContainer holds all service facades the handlers depend on.
// This makes passing dependencies to handler registration cleaner.
type ServiceContainer struct {
	UserService         UserSvcFacade
	CurrencyService     CurrencySvcFacade
	ExchangeRateService ExchangeRateSvcFacade
	CommissionService   CommissionSvcFacade
	ReceiptService      ReceiptSvcFacade
	TransferService     TransferSvcFacade
	TokenService        TokenSvcFacade
	GoogleOAuthService  GoogleOAuthHandlerSvcFacade
}
