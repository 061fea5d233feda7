package receipthash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
)

// TruncatedLength is the number of hex characters printed on the receipt
// footer. The full digest is still served by the verification endpoint.
const TruncatedLength = 40

// Compute derives the verification hash for a market transaction. The digest
// covers exactly {id, buyerID, sellerID, amount, totalCost, createdAt}, so it
// is stable across receipt regenerations and changes whenever any covered
// field changes. It fails loudly on malformed input rather than hashing a
// partial record.
func Compute(tx domain.MarketTransaction) (string, error) {
	if tx.TransactionID <= 0 {
		return "", fmt.Errorf("transaction ID must be positive, got %d", tx.TransactionID)
	}
	if tx.BuyerID == "" {
		return "", fmt.Errorf("buyer ID is required for transaction %d", tx.TransactionID)
	}
	if tx.SellerID == "" {
		return "", fmt.Errorf("seller ID is required for transaction %d", tx.TransactionID)
	}
	if tx.CreatedAt.IsZero() {
		return "", fmt.Errorf("creation timestamp is required for transaction %d", tx.TransactionID)
	}

	payload := fmt.Sprintf("%d|%s|%s|%s|%s|%d",
		tx.TransactionID,
		tx.BuyerID,
		tx.SellerID,
		tx.Amount.String(),
		tx.TotalCost.String(),
		tx.CreatedAt.UnixMilli(),
	)

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:]), nil
}

// Truncate shortens a full hash to the receipt footer form.
func Truncate(hash string) string {
	if len(hash) <= TruncatedLength {
		return hash
	}
	return hash[:TruncatedLength]
}
