package domain

// UnspecifiedAccount is printed on a receipt when the party's account number
// could not be resolved. A receipt with an unresolved field is preferable to
// no receipt at all, so lookups degrade to this sentinel instead of failing.
const UnspecifiedAccount = "غير محدد"

// MarketReceipt is the denormalized, display-ready projection of a completed
// trade. It is assembled on demand and never persisted; all amount fields are
// already formatted for printing (2 decimal places, rate with 4).
type MarketReceipt struct {
	ReceiptNumber    string `json:"receiptNumber"` // MKT-<transactionID>-<epochMillis>
	Reference        string `json:"reference"`     // REF-<transactionID>
	TransactionID    int64  `json:"transactionID"`
	Date             string `json:"date"` // dd/mm/yyyy
	Time             string `json:"time"` // HH:MM:SS
	SellerAccount    string `json:"sellerAccount"`
	BuyerAccount     string `json:"buyerAccount"`
	SystemAccount    string `json:"systemAccount"`
	FromCurrencyCode string `json:"fromCurrencyCode"`
	ToCurrencyCode   string `json:"toCurrencyCode"`
	Amount           string `json:"amount"`
	TotalCost        string `json:"totalCost"`
	Rate             string `json:"rate"`
	Commission       string `json:"commission"`
	VerificationHash string `json:"verificationHash"`
	VerificationURL  string `json:"verificationURL"`
}
