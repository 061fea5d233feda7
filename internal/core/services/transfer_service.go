package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	portsrepo "github.com/sarrafhub/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/sarrafhub/exchange_backend/internal/core/ports/services"
	"github.com/sarrafhub/exchange_backend/internal/dto"
	"github.com/sarrafhub/exchange_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const defaultTransferPageSize = 20

// transferService prices and persists inter-office transfers.
type transferService struct {
	transferRepo      portsrepo.TransferRepositoryFacade
	userRepo          portsrepo.UserReader
	commissionService portssvc.CommissionCalculatorSvc
	rateService       portssvc.ExchangeRateReaderSvc
}

// NewTransferService creates a new transfer service.
func NewTransferService(
	transferRepo portsrepo.TransferRepositoryFacade,
	userRepo portsrepo.UserReader,
	commissionService portssvc.CommissionCalculatorSvc,
	rateService portssvc.ExchangeRateReaderSvc,
) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo:      transferRepo,
		userRepo:          userRepo,
		commissionService: commissionService,
		rateService:       rateService,
	}
}

// CreateTransfer prices and persists a transfer. The exchange rate is always
// resolved explicitly: an unknown cross-currency pair fails the transfer
// instead of silently converting at 1:1.
func (s *transferService) CreateTransfer(ctx context.Context, senderID string, req dto.CreateTransferRequest) (*domain.Transfer, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}

	receiver, err := s.userRepo.FindUserByID(ctx, req.ReceiverOfficeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: receiver office '%s' not found", apperrors.ErrValidation, req.ReceiverOfficeID)
		}
		return nil, fmt.Errorf("failed to validate receiver office: %w", err)
	}
	if !receiver.IsOffice {
		return nil, fmt.Errorf("%w: receiver '%s' is not an office account", apperrors.ErrValidation, req.ReceiverOfficeID)
	}

	exchangeRate := decimal.NewFromInt(1)
	if req.FromCurrencyCode != req.ToCurrencyCode {
		rate, err := s.rateService.GetExchangeRate(ctx, req.FromCurrencyCode, req.ToCurrencyCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: no exchange rate for %s/%s", apperrors.ErrValidation, req.FromCurrencyCode, req.ToCurrencyCode)
			}
			return nil, fmt.Errorf("failed to resolve exchange rate for transfer: %w", err)
		}
		exchangeRate = rate.Rate
	}

	// Commission is quoted on the converted amount, in the receiver's currency.
	converted := req.Amount.Mul(exchangeRate)
	quote, err := s.commissionService.QuoteCommission(ctx, req.ReceiverOfficeID, req.DestinationCity, converted)
	if err != nil {
		return nil, fmt.Errorf("failed to quote commission for transfer: %w", err)
	}

	now := time.Now()
	transfer := domain.Transfer{
		TransferID:       uuid.NewString(),
		SenderID:         senderID,
		ReceiverOfficeID: req.ReceiverOfficeID,
		DestinationCity:  req.DestinationCity,
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Amount:           req.Amount,
		ExchangeRate:     exchangeRate,
		CommissionRate:   quote.Rate,
		CommissionAmount: quote.Commission,
		ReceiverTotal:    quote.ReceiverTotal,
		RuleApplied:      quote.RuleApplied,
		Status:           domain.TransferPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     senderID,
			LastUpdatedAt: now,
			LastUpdatedBy: senderID,
		},
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		return nil, fmt.Errorf("failed to save transfer in service: %w", err)
	}

	return &transfer, nil
}

func (s *transferService) GetTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer in service: %w", err)
	}
	return transfer, nil
}

func (s *transferService) ListTransfersBySender(ctx context.Context, senderID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransferPageSize
	}

	before := time.Now()
	if params.NextToken != "" {
		decoded, err := pagination.DecodeDateBasedToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		before = decoded
	}

	transfers, err := s.transferRepo.ListTransfersBySender(ctx, senderID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers in service: %w", err)
	}

	resp := &dto.ListTransfersResponse{
		Transfers: make([]dto.TransferResponse, len(transfers)),
	}
	for i, t := range transfers {
		resp.Transfers[i] = dto.ToTransferResponse(&t)
	}
	// A full page means there may be older transfers beyond the cursor.
	if len(transfers) == limit {
		resp.NextToken = pagination.EncodeDateBasedToken(transfers[len(transfers)-1].CreatedAt)
	}

	return resp, nil
}
