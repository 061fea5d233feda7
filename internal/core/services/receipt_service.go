package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	portsrepo "github.com/sarrafhub/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/sarrafhub/exchange_backend/internal/core/ports/services"
	"github.com/sarrafhub/exchange_backend/internal/dto"
	"github.com/sarrafhub/exchange_backend/internal/middleware"
	"github.com/sarrafhub/exchange_backend/internal/receiptimage"
	"github.com/sarrafhub/exchange_backend/internal/utils/receipthash"
	"github.com/shopspring/decimal"
)

const (
	receiptDateFormat = "02/01/2006"
	receiptTimeFormat = "15:04:05"
)

// receiptService records completed marketplace trades and produces printable
// receipts for them.
type receiptService struct {
	txRepo        portsrepo.MarketTransactionRepositoryFacade
	userRepo      portsrepo.UserReader
	publicBaseURL string
}

// NewReceiptService creates a new receipt service. publicBaseURL is the
// externally reachable address embedded in verification links.
func NewReceiptService(txRepo portsrepo.MarketTransactionRepositoryFacade, userRepo portsrepo.UserReader, publicBaseURL string) portssvc.ReceiptSvcFacade {
	return &receiptService{
		txRepo:        txRepo,
		userRepo:      userRepo,
		publicBaseURL: publicBaseURL,
	}
}

func (s *receiptService) RecordMarketTransaction(ctx context.Context, req dto.CreateMarketTransactionRequest) (*domain.MarketTransaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: traded amount must be positive", apperrors.ErrValidation)
	}
	if req.TotalCost.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: total cost must be positive", apperrors.ErrValidation)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.Commission.IsNegative() {
		return nil, fmt.Errorf("%w: commission must not be negative", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if req.BuyerID == req.SellerID {
		return nil, fmt.Errorf("%w: buyer and seller cannot be the same account", apperrors.ErrValidation)
	}

	tx := domain.MarketTransaction{
		BuyerID:          req.BuyerID,
		SellerID:         req.SellerID,
		SystemAccount:    req.SystemAccount,
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Amount:           req.Amount,
		TotalCost:        req.TotalCost,
		Rate:             req.Rate,
		Commission:       req.Commission,
		CreatedAt:        time.Now(),
	}

	saved, err := s.txRepo.SaveMarketTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to record market transaction in service: %w", err)
	}

	return saved, nil
}

func (s *receiptService) GetMarketTransactionByID(ctx context.Context, transactionID int64) (*domain.MarketTransaction, error) {
	tx, err := s.txRepo.FindMarketTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get market transaction in service: %w", err)
	}
	return tx, nil
}

// PrepareMarketReceipt builds the display-ready receipt for a trade. The
// trade itself must exist; account lookups degrade to a sentinel value so a
// deleted or unreachable party never blocks reprinting.
func (s *receiptService) PrepareMarketReceipt(ctx context.Context, transactionID int64) (*domain.MarketReceipt, error) {
	tx, err := s.txRepo.FindMarketTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for receipt: %w", err)
	}

	hash, err := receipthash.Compute(*tx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute verification hash: %w", err)
	}

	receipt := &domain.MarketReceipt{
		ReceiptNumber:    fmt.Sprintf("MKT-%d-%d", tx.TransactionID, time.Now().UnixMilli()),
		Reference:        fmt.Sprintf("REF-%d", tx.TransactionID),
		TransactionID:    tx.TransactionID,
		Date:             tx.CreatedAt.Format(receiptDateFormat),
		Time:             tx.CreatedAt.Format(receiptTimeFormat),
		SellerAccount:    s.lookupAccount(ctx, tx.SellerID, "seller"),
		BuyerAccount:     s.lookupAccount(ctx, tx.BuyerID, "buyer"),
		SystemAccount:    tx.SystemAccount,
		FromCurrencyCode: tx.FromCurrencyCode,
		ToCurrencyCode:   tx.ToCurrencyCode,
		Amount:           tx.Amount.StringFixed(2),
		TotalCost:        tx.TotalCost.StringFixed(2),
		Rate:             tx.Rate.StringFixed(4),
		Commission:       tx.Commission.StringFixed(2),
		VerificationHash: hash,
		VerificationURL:  fmt.Sprintf("%s/verify/market/%d", s.publicBaseURL, tx.TransactionID),
	}

	return receipt, nil
}

// RenderMarketReceipt renders the receipt as a thermal-printer-sized PNG.
func (s *receiptService) RenderMarketReceipt(ctx context.Context, transactionID int64) ([]byte, error) {
	receipt, err := s.PrepareMarketReceipt(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	img, err := receiptimage.Render(*receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRender, err.Error())
	}

	return img, nil
}

// VerifyMarketTransaction recomputes the verification hash so the public
// verify page can confirm a printed receipt is genuine.
func (s *receiptService) VerifyMarketTransaction(ctx context.Context, transactionID int64) (*dto.VerificationResponse, error) {
	tx, err := s.txRepo.FindMarketTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for verification: %w", err)
	}

	hash, err := receipthash.Compute(*tx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute verification hash: %w", err)
	}

	return &dto.VerificationResponse{
		TransactionID:    tx.TransactionID,
		VerificationHash: hash,
		Verified:         true,
	}, nil
}

// lookupAccount resolves a party's printable account number, degrading to the
// unspecified sentinel on any failure. A receipt with an unresolved party is
// still printable; the verification hash covers the raw IDs, not this field.
func (s *receiptService) lookupAccount(ctx context.Context, userID string, role string) string {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Receipt party not found, printing unspecified",
				slog.String("role", role),
				slog.String("user_id", userID),
			)
		} else {
			logger.Warn("Receipt party lookup failed, printing unspecified",
				slog.String("role", role),
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
		return domain.UnspecifiedAccount
	}
	if user.AccountNumber == "" {
		return domain.UnspecifiedAccount
	}
	return user.AccountNumber
}
