package commission_test

import (
	"testing"

	commissioncalc "github.com/sarrafhub/exchange_backend/internal/utils/commission"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRate(t *testing.T) {
	testCases := []struct {
		name    string
		rate    string
		wantErr bool
	}{
		{"zero", "0", false},
		{"typical", "2.5", false},
		{"upper bound inclusive", "10", false},
		{"fractional near bound", "9.99", false},
		{"just above bound", "10.01", true},
		{"negative", "-0.01", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := commissioncalc.ValidateRate(decimal.RequireFromString(tc.rate))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmount_Exactness(t *testing.T) {
	// 1000 * 2.5 / 100 must be exactly 25, not 24.999...
	fee, err := commissioncalc.Amount(decimal.NewFromInt(1000), decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.NewFromInt(25)), "got %s", fee)

	fee, err = commissioncalc.Amount(decimal.RequireFromString("333.33"), decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.RequireFromString("9.9999")), "got %s", fee)
}

func TestAmount_ZeroRateIsExactIdentity(t *testing.T) {
	fee, err := commissioncalc.Amount(decimal.RequireFromString("123.45"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, fee.IsZero())
}

func TestAmount_ZeroAmount(t *testing.T) {
	fee, err := commissioncalc.Amount(decimal.Zero, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, fee.IsZero())
}

func TestAmount_RejectsInvalidInput(t *testing.T) {
	_, err := commissioncalc.Amount(decimal.NewFromInt(-1), decimal.NewFromInt(5))
	assert.Error(t, err)

	_, err = commissioncalc.Amount(decimal.NewFromInt(100), decimal.NewFromInt(11))
	assert.Error(t, err)

	_, err = commissioncalc.Amount(decimal.NewFromInt(100), decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestReceiverTotal_IsAdditive(t *testing.T) {
	total, err := commissioncalc.ReceiverTotal(decimal.NewFromInt(1000), decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(1025)), "got %s", total)

	// Zero rate: the receiver sees exactly the transferred amount.
	total, err = commissioncalc.ReceiverTotal(decimal.RequireFromString("99.99"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("99.99")), "got %s", total)
}

func TestReceiverTotal_PropagatesValidation(t *testing.T) {
	_, err := commissioncalc.ReceiverTotal(decimal.NewFromInt(100), decimal.NewFromInt(12))
	assert.Error(t, err)
}
