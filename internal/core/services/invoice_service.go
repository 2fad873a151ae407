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

// invoiceService implements the InvoiceSvcFacade interface.
type invoiceService struct {
	BaseService
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	changeLogRepo portsrepo.ChangeLogWriter
	txManager     portsrepo.TxManager
	validator     *documentValidator
}

// NewInvoiceService creates a new invoice service with the provided dependencies.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	projectRepo portsrepo.ProjectReader,
	changeLogRepo portsrepo.ChangeLogWriter,
	txManager portsrepo.TxManager,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:   invoiceRepo,
		changeLogRepo: changeLogRepo,
		txManager:     txManager,
		validator:     newDocumentValidator(clientRepo, projectRepo),
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, organizationID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, organizationID, userID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	refs, err := s.validator.Validate(ctx, organizationID, invoiceDraft(req), invoiceDates(&req),
		func(ctx context.Context) (bool, error) {
			return s.invoiceRepo.InvoiceNoExists(ctx, organizationID, req.InvoiceNo, "")
		})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:          domain.NewID(),
		OrganizationID:     organizationID,
		ClientID:           req.ClientID,
		ProjectID:          req.ProjectID,
		InvoiceNo:          req.InvoiceNo,
		InvoiceDate:        req.InvoiceDate,
		DueDate:            req.DueDate,
		SubTotal:           req.SubTotal,
		AdvanceTaxType:     req.AdvanceTaxType,
		AdvanceTaxSubType:  req.AdvanceTaxSubType,
		AdvanceTaxRate:     req.AdvanceTaxRate,
		AdvanceTaxAmount:   req.AdvanceTaxAmount,
		TotalAmount:        req.TotalAmount,
		TermsAndConditions: req.TermsAndConditions,
		OtherDetails:       domain.DocumentOtherDetails{ContactPersons: refs.ContactPersons},
		Timestamps:         domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		Items:              buildInvoiceItems("", req.Items),
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.InvoiceID
	}

	changeLog := newChangeLog(domain.ChangeLogEntityInvoices, invoice.InvoiceID, domain.ChangeTypeCreated,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Invoice '%s' created", invoice.InvoiceNo)},
		})

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("invoice_no", invoice.InvoiceNo))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.InvoiceID))
	return &invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, organizationID, userID, invoiceID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, organizationID, invoiceID)
	if err != nil {
		return nil, err
	}

	refs, err := s.validator.Validate(ctx, organizationID, invoiceDraft(req), invoiceDates(&req),
		func(ctx context.Context) (bool, error) {
			return s.invoiceRepo.InvoiceNoExists(ctx, organizationID, req.InvoiceNo, invoiceID)
		})
	if err != nil {
		return nil, err
	}

	cs := &changeSet{}
	cs.String("invoiceNo", "Invoice number", &invoice.InvoiceNo, req.InvoiceNo)
	cs.String("invoiceDate", "Invoice date", &invoice.InvoiceDate, req.InvoiceDate)
	cs.String("dueDate", "Due date", &invoice.DueDate, req.DueDate)
	cs.String("clientId", "Client", &invoice.ClientID, req.ClientID)
	cs.NullString("projectId", "Project", &invoice.ProjectID, req.ProjectID)
	cs.NullString("advanceTaxType", "Advance tax type", &invoice.AdvanceTaxType, req.AdvanceTaxType)
	cs.NullString("advanceTaxSubType", "Advance tax subtype", &invoice.AdvanceTaxSubType, req.AdvanceTaxSubType)
	cs.Decimal("advanceTaxRate", "Advance tax rate", &invoice.AdvanceTaxRate, req.AdvanceTaxRate)
	cs.Decimal("advanceTaxAmount", "Advance tax amount", &invoice.AdvanceTaxAmount, req.AdvanceTaxAmount)
	cs.Decimal("subTotal", "Subtotal", &invoice.SubTotal, req.SubTotal)
	cs.Decimal("totalAmount", "Total amount", &invoice.TotalAmount, req.TotalAmount)
	cs.NullString("termsAndConditions", "Terms and conditions", &invoice.TermsAndConditions, req.TermsAndConditions)

	if !invoiceItemsEqual(invoice.Items, req.Items) {
		cs.Custom("items", len(invoice.Items), len(req.Items),
			fmt.Sprintf("Invoice items updated (%d items)", len(req.Items)))
		invoice.Items = buildInvoiceItems(invoice.InvoiceID, req.Items)
	}

	if !documentContactsEqual(invoice.OtherDetails.ContactPersons, refs.ContactPersons) {
		cs.Custom("contactPersons", contactPersonIDs(invoice.OtherDetails.ContactPersons), contactPersonIDs(refs.ContactPersons),
			"Invoice contact persons updated")
		invoice.OtherDetails.ContactPersons = refs.ContactPersons
	}

	if !cs.HasChanges() {
		s.LogDebug(ctx, "Invoice update is a no-op", slog.String("invoice_id", invoiceID))
		return invoice, nil
	}

	invoice.UpdatedAt = time.Now()
	changeLog := newChangeLog(domain.ChangeLogEntityInvoices, invoice.InvoiceID, domain.ChangeTypeUpdated,
		userID, &organizationID, cs.Details())

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, organizationID, userID, invoiceID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, organizationID, invoiceID)
	if err != nil {
		return err
	}

	changeLog := newChangeLog(domain.ChangeLogEntityInvoices, invoice.InvoiceID, domain.ChangeTypeDeleted,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Invoice '%s' deleted", invoice.InvoiceNo)},
		})

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.invoiceRepo.DeleteInvoice(ctx, organizationID, invoiceID); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func invoiceDraft(req dto.SaveInvoiceRequest) documentDraft {
	return documentDraft{
		ClientID:          req.ClientID,
		ProjectID:         req.ProjectID,
		Number:            req.InvoiceNo,
		NumberLabel:       "Invoice number",
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

func invoiceDates(req *dto.SaveInvoiceRequest) documentDates {
	return documentDates{
		Start:      &req.InvoiceDate,
		End:        &req.DueDate,
		StartLabel: "Invoice date",
		EndLabel:   "Due date",
		Required:   true,
	}
}

func buildInvoiceItems(invoiceID string, items []dto.DocumentItemRequest) []domain.InvoiceItem {
	result := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		result[i] = domain.InvoiceItem{
			InvoiceItemID: domain.NewID(),
			InvoiceID:     invoiceID,
			Position:      i + 1,
			Name:          item.Name,
			SacNo:         item.SacNo,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Price:         item.Price,
			TaxRateKey:    item.TaxRateKey,
			TaxRateValue:  item.TaxRateValue,
			TaxAmount:     item.TaxAmount,
			TotalAmount:   item.TotalAmount,
		}
	}
	return result
}

func invoiceItemsEqual(existing []domain.InvoiceItem, requested []dto.DocumentItemRequest) bool {
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

func documentContactsEqual(a, b []domain.DocumentContactPerson) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ContactPersonID != b[i].ContactPersonID ||
			a[i].Name != b[i].Name ||
			!nullStringEqual(a[i].Email, b[i].Email) ||
			!nullStringEqual(a[i].MobileCountryCode, b[i].MobileCountryCode) ||
			!nullStringEqual(a[i].MobileNumber, b[i].MobileNumber) {
			return false
		}
	}
	return true
}

func contactPersonIDs(persons []domain.DocumentContactPerson) []string {
	ids := make([]string, len(persons))
	for i, p := range persons {
		ids[i] = p.ContactPersonID
	}
	return ids
}
