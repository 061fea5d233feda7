package receipthash_test

import (
	"testing"
	"time"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/utils/receipthash"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction() domain.MarketTransaction {
	return domain.MarketTransaction{
		TransactionID:    42,
		BuyerID:          "b7a9f7e0-1111-4222-8333-444455556666",
		SellerID:         "c8b0a8f1-7777-4888-9999-000011112222",
		SystemAccount:    "SYS-001",
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "LYD",
		Amount:           decimal.NewFromInt(100),
		TotalCost:        decimal.RequireFromString("135.00"),
		Rate:             decimal.RequireFromString("1.35"),
		Commission:       decimal.NewFromInt(2),
		CreatedAt:        time.UnixMilli(1714000000000).UTC(),
	}
}

func TestCompute_Deterministic(t *testing.T) {
	tx := sampleTransaction()

	first, err := receipthash.Compute(tx)
	require.NoError(t, err)
	second, err := receipthash.Compute(tx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA-256
}

func TestCompute_ChangesWithCoveredFields(t *testing.T) {
	base := sampleTransaction()
	baseHash, err := receipthash.Compute(base)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		mutate func(tx *domain.MarketTransaction)
	}{
		{"transaction ID", func(tx *domain.MarketTransaction) { tx.TransactionID = 43 }},
		{"buyer ID", func(tx *domain.MarketTransaction) { tx.BuyerID = "d9c1b9a2-3333-4444-5555-666677778888" }},
		{"seller ID", func(tx *domain.MarketTransaction) { tx.SellerID = "e0d2c0b3-9999-4000-a111-b22233334444" }},
		{"amount", func(tx *domain.MarketTransaction) { tx.Amount = decimal.NewFromInt(101) }},
		{"total cost", func(tx *domain.MarketTransaction) { tx.TotalCost = decimal.RequireFromString("135.01") }},
		{"timestamp", func(tx *domain.MarketTransaction) { tx.CreatedAt = tx.CreatedAt.Add(time.Millisecond) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := sampleTransaction()
			tc.mutate(&tx)

			hash, err := receipthash.Compute(tx)
			require.NoError(t, err)
			assert.NotEqual(t, baseHash, hash)
		})
	}
}

func TestCompute_IgnoresUncoveredFields(t *testing.T) {
	base := sampleTransaction()
	baseHash, err := receipthash.Compute(base)
	require.NoError(t, err)

	// Receipt regeneration may see different system account labels or
	// commission corrections; the printed hash must stay stable.
	tx := sampleTransaction()
	tx.SystemAccount = "SYS-002"
	tx.Commission = decimal.NewFromInt(3)
	tx.Rate = decimal.RequireFromString("1.40")

	hash, err := receipthash.Compute(tx)
	require.NoError(t, err)
	assert.Equal(t, baseHash, hash)
}

func TestCompute_SubsecondPrecision(t *testing.T) {
	first := sampleTransaction()
	second := sampleTransaction()
	second.CreatedAt = first.CreatedAt.Add(time.Millisecond)

	firstHash, err := receipthash.Compute(first)
	require.NoError(t, err)
	secondHash, err := receipthash.Compute(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstHash, secondHash)
}

func TestCompute_MalformedInput(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(tx *domain.MarketTransaction)
	}{
		{"zero transaction ID", func(tx *domain.MarketTransaction) { tx.TransactionID = 0 }},
		{"negative transaction ID", func(tx *domain.MarketTransaction) { tx.TransactionID = -1 }},
		{"missing buyer", func(tx *domain.MarketTransaction) { tx.BuyerID = "" }},
		{"missing seller", func(tx *domain.MarketTransaction) { tx.SellerID = "" }},
		{"zero timestamp", func(tx *domain.MarketTransaction) { tx.CreatedAt = time.Time{} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := sampleTransaction()
			tc.mutate(&tx)

			hash, err := receipthash.Compute(tx)
			assert.Error(t, err)
			assert.Empty(t, hash)
		})
	}
}

func TestTruncate(t *testing.T) {
	tx := sampleTransaction()
	full, err := receipthash.Compute(tx)
	require.NoError(t, err)

	truncated := receipthash.Truncate(full)
	assert.Len(t, truncated, receipthash.TruncatedLength)
	assert.Equal(t, full[:receipthash.TruncatedLength], truncated)

	// Anything already short enough passes through untouched.
	assert.Equal(t, "abc", receipthash.Truncate("abc"))
	assert.Equal(t, "", receipthash.Truncate(""))
}
