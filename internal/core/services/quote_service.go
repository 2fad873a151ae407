package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

// quoteService implements the QuoteSvcFacade interface.
type quoteService struct {
	BaseService
	quoteRepo     portsrepo.QuoteRepositoryFacade
	changeLogRepo portsrepo.ChangeLogWriter
	txManager     portsrepo.TxManager
	validator     *documentValidator
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	projectRepo portsrepo.ProjectReader,
	changeLogRepo portsrepo.ChangeLogWriter,
	txManager portsrepo.TxManager,
) portssvc.QuoteSvcFacade {
	return &quoteService{
		quoteRepo:     quoteRepo,
		changeLogRepo: changeLogRepo,
		txManager:     txManager,
		validator:     newDocumentValidator(clientRepo, projectRepo),
	}
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

func (s *quoteService) GetQuoteByID(ctx context.Context, organizationID, quoteID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, organizationID, quoteID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find quote by ID", slog.String("quote_id", quoteID))
		}
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, organizationID string) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.FindQuotes(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quotes")
		return nil, err
	}
	if quotes == nil {
		return []domain.Quote{}, nil
	}
	return quotes, nil
}

func (s *quoteService) CreateQuote(ctx context.Context, organizationID, userID string, req dto.SaveQuoteRequest) (*domain.Quote, error) {
	refs, err := s.validator.Validate(ctx, organizationID, quoteDraft(req), quoteDates(&req),
		func(ctx context.Context) (bool, error) {
			return s.quoteRepo.QuoteNoExists(ctx, organizationID, req.QuoteNo, "")
		})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quote := domain.Quote{
		QuoteID:            domain.NewID(),
		OrganizationID:     organizationID,
		ClientID:           req.ClientID,
		ProjectID:          req.ProjectID,
		QuoteNo:            req.QuoteNo,
		IssueDate:          req.IssueDate,
		ExpiryDate:         req.ExpiryDate,
		SubTotal:           req.SubTotal,
		AdvanceTaxType:     req.AdvanceTaxType,
		AdvanceTaxSubType:  req.AdvanceTaxSubType,
		AdvanceTaxRate:     req.AdvanceTaxRate,
		AdvanceTaxAmount:   req.AdvanceTaxAmount,
		TotalAmount:        req.TotalAmount,
		TermsAndConditions: req.TermsAndConditions,
		OtherDetails:       domain.DocumentOtherDetails{ContactPersons: refs.ContactPersons},
		Timestamps:         domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		Items:              buildQuoteItems("", req.Items),
	}
	for i := range quote.Items {
		quote.Items[i].QuoteID = quote.QuoteID
	}

	changeLog := newChangeLog(domain.ChangeLogEntityQuotes, quote.QuoteID, domain.ChangeTypeCreated,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Quote '%s' created", quote.QuoteNo)},
		})

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create quote", slog.String("quote_no", quote.QuoteNo))
		return nil, err
	}

	s.LogInfo(ctx, "Quote created", slog.String("quote_id", quote.QuoteID))
	return &quote, nil
}

func (s *quoteService) UpdateQuote(ctx context.Context, organizationID, userID, quoteID string, req dto.SaveQuoteRequest) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, organizationID, quoteID)
	if err != nil {
		return nil, err
	}

	refs, err := s.validator.Validate(ctx, organizationID, quoteDraft(req), quoteDates(&req),
		func(ctx context.Context) (bool, error) {
			return s.quoteRepo.QuoteNoExists(ctx, organizationID, req.QuoteNo, quoteID)
		})
	if err != nil {
		return nil, err
	}

	cs := &changeSet{}
	cs.String("quoteNo", "Quote number", &quote.QuoteNo, req.QuoteNo)
	cs.NullString("issueDate", "Issue date", &quote.IssueDate, req.IssueDate)
	cs.NullString("expiryDate", "Expiry date", &quote.ExpiryDate, req.ExpiryDate)
	cs.String("clientId", "Client", &quote.ClientID, req.ClientID)
	cs.NullString("projectId", "Project", &quote.ProjectID, req.ProjectID)
	cs.NullString("advanceTaxType", "Advance tax type", &quote.AdvanceTaxType, req.AdvanceTaxType)
	cs.NullString("advanceTaxSubType", "Advance tax subtype", &quote.AdvanceTaxSubType, req.AdvanceTaxSubType)
	cs.Decimal("advanceTaxRate", "Advance tax rate", &quote.AdvanceTaxRate, req.AdvanceTaxRate)
	cs.Decimal("advanceTaxAmount", "Advance tax amount", &quote.AdvanceTaxAmount, req.AdvanceTaxAmount)
	cs.Decimal("subTotal", "Subtotal", &quote.SubTotal, req.SubTotal)
	cs.Decimal("totalAmount", "Total amount", &quote.TotalAmount, req.TotalAmount)
	cs.NullString("termsAndConditions", "Terms and conditions", &quote.TermsAndConditions, req.TermsAndConditions)

	if !quoteItemsEqual(quote.Items, req.Items) {
		cs.Custom("items", len(quote.Items), len(req.Items),
			fmt.Sprintf("Quote items updated (%d items)", len(req.Items)))
		quote.Items = buildQuoteItems(quote.QuoteID, req.Items)
	}

	if !documentContactsEqual(quote.OtherDetails.ContactPersons, refs.ContactPersons) {
		cs.Custom("contactPersons", contactPersonIDs(quote.OtherDetails.ContactPersons), contactPersonIDs(refs.ContactPersons),
			"Quote contact persons updated")
		quote.OtherDetails.ContactPersons = refs.ContactPersons
	}

	if !cs.HasChanges() {
		s.LogDebug(ctx, "Quote update is a no-op", slog.String("quote_id", quoteID))
		return quote, nil
	}

	quote.UpdatedAt = time.Now()
	changeLog := newChangeLog(domain.ChangeLogEntityQuotes, quote.QuoteID, domain.ChangeTypeUpdated,
		userID, &organizationID, cs.Details())

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update quote", slog.String("quote_id", quoteID))
		return nil, err
	}

	s.LogInfo(ctx, "Quote updated", slog.String("quote_id", quoteID))
	return quote, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, organizationID, userID, quoteID string) error {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, organizationID, quoteID)
	if err != nil {
		return err
	}

	changeLog := newChangeLog(domain.ChangeLogEntityQuotes, quote.QuoteID, domain.ChangeTypeDeleted,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Quote '%s' deleted", quote.QuoteNo)},
		})

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.quoteRepo.DeleteQuote(ctx, organizationID, quoteID); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete quote", slog.String("quote_id", quoteID))
		return err
	}

	s.LogInfo(ctx, "Quote deleted", slog.String("quote_id", quoteID))
	return nil
}

func quoteDraft(req dto.SaveQuoteRequest) documentDraft {
	return documentDraft{
		ClientID:          req.ClientID,
		ProjectID:         req.ProjectID,
		Number:            req.QuoteNo,
		NumberLabel:       "Quote number",
		Items:             req.Items,
		SubTotal:          req.SubTotal,
		AdvanceTaxType:    req.AdvanceTaxType,
		AdvanceTaxSubType: req.AdvanceTaxSubType,
		AdvanceTaxRate:    req.AdvanceTaxRate,
		AdvanceTaxAmount:  req.AdvanceTaxAmount,
		TotalAmount:       req.TotalAmount,
		ContactPersonIDs:  req.ContactPersonIDs,
	}
}

func quoteDates(req *dto.SaveQuoteRequest) documentDates {
	return documentDates{
		Start:      req.IssueDate,
		End:        req.ExpiryDate,
		StartLabel: "Issue date",
		EndLabel:   "Expiry date",
	}
}

func buildQuoteItems(quoteID string, items []dto.DocumentItemRequest) []domain.QuoteItem {
	result := make([]domain.QuoteItem, len(items))
	for i, item := range items {
		result[i] = domain.QuoteItem{
			QuoteItemID:  domain.NewID(),
			QuoteID:      quoteID,
			Position:     i + 1,
			Name:         item.Name,
			SacNo:        item.SacNo,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Price:        item.Price,
			TaxRateKey:   item.TaxRateKey,
			TaxRateValue: item.TaxRateValue,
			TaxAmount:    item.TaxAmount,
			TotalAmount:  item.TotalAmount,
		}
	}
	return result
}

func quoteItemsEqual(existing []domain.QuoteItem, requested []dto.DocumentItemRequest) bool {
	if len(existing) != len(requested) {
		return false
	}
	for i, item := range existing {
		req := requested[i]
		if item.Name != req.Name ||
			!nullStringEqual(item.SacNo, req.SacNo) ||
			item.Quantity != req.Quantity ||
			!item.UnitPrice.Equal(req.UnitPrice) ||
			!item.Price.Equal(req.Price) ||
			item.TaxRateKey != req.TaxRateKey ||
			!item.TaxRateValue.Equal(req.TaxRateValue) ||
			!item.TaxAmount.Equal(req.TaxAmount) ||
			!item.TotalAmount.Equal(req.TotalAmount) {
			return false
		}
	}
	return true
}
