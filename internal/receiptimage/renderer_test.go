package receiptimage_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/receiptimage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() domain.MarketReceipt {
	return domain.MarketReceipt{
		ReceiptNumber:    "MKT-42-1714000000000",
		Reference:        "REF-42",
		TransactionID:    42,
		Date:             "25/04/2024",
		Time:             "13:46:40",
		SellerAccount:    "AC-9F27C41B",
		BuyerAccount:     domain.UnspecifiedAccount,
		SystemAccount:    "SYS-001",
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "LYD",
		Amount:           "100.00",
		TotalCost:        "135.00",
		Rate:             "1.3500",
		Commission:       "2.00",
		VerificationHash: strings.Repeat("ab", 32),
		VerificationURL:  "http://localhost:8080/verify/market/42",
	}
}

func layoutText(lines []receiptimage.Line) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestLayout_ContainsAllReceiptFields(t *testing.T) {
	text := layoutText(receiptimage.Layout(sampleReceipt()))

	assert.Contains(t, text, "MKT-42-1714000000000")
	assert.Contains(t, text, "REF-42")
	assert.Contains(t, text, "25/04/2024")
	assert.Contains(t, text, "13:46:40")
	assert.Contains(t, text, "AC-9F27C41B")
	assert.Contains(t, text, domain.UnspecifiedAccount)
	assert.Contains(t, text, "SYS-001")
	assert.Contains(t, text, "100.00 USD")
	assert.Contains(t, text, "135.00 LYD")
	assert.Contains(t, text, "Rate: 1.3500")
	assert.Contains(t, text, "Commission: 2.00 LYD")
}

func TestLayout_TruncatesVerificationHash(t *testing.T) {
	r := sampleReceipt()
	text := layoutText(receiptimage.Layout(r))

	assert.Contains(t, text, r.VerificationHash[:40])
	assert.NotContains(t, text, r.VerificationHash)
}

func TestLayout_HasSeparators(t *testing.T) {
	lines := receiptimage.Layout(sampleReceipt())

	separators := 0
	for _, line := range lines {
		if line.Separator {
			separators++
		}
	}
	assert.Equal(t, 4, separators)

	// Header and footer are centered.
	assert.True(t, lines[0].Center)
	assert.True(t, lines[len(lines)-1].Center)
}

func TestRender_ProducesThermalWidthPNG(t *testing.T) {
	data, err := receiptimage.Render(sampleReceipt())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, receiptimage.WidthPx, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestRender_EmptyFieldsStillRender(t *testing.T) {
	// A degraded receipt (unresolved parties, zero amounts) must still
	// produce a printable bitmap.
	data, err := receiptimage.Render(domain.MarketReceipt{})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, receiptimage.WidthPx, img.Bounds().Dx())
}
