package domain

// Currency represents a tradable currency on the platform.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (ISO 4217, e.g. "USD", "LYD")
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"` // Decimal places of the minor unit
	AuditFields
}
