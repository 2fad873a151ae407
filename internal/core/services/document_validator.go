package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
	"github.com/saiuttej/books-backend/internal/dto"
	"github.com/saiuttej/books-backend/internal/utils/validation"
)

var decimalHundred = decimal.NewFromInt(100)

// validationErrorf builds a user-facing validation error.
func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// documentDraft is the kind-independent view of an invoice or quote save
// request, used by the shared validation pipeline.
type documentDraft struct {
	ClientID  string
	ProjectID *string

	Number      string
	NumberLabel string

	Items []dto.DocumentItemRequest

	SubTotal          decimal.Decimal
	AdvanceTaxType    *string
	AdvanceTaxSubType *string
	AdvanceTaxRate    decimal.Decimal
	AdvanceTaxAmount  decimal.Decimal
	TotalAmount       decimal.Decimal

	ContactPersonIDs []string
}

// documentDates describes the date fields of a document kind. Invoices carry
// required invoice/due dates, quotes carry optional issue/expiry dates.
type documentDates struct {
	Start      *string
	End        *string
	StartLabel string
	EndLabel   string
	Required   bool
}

// documentRefs holds the entities resolved during referential validation, for
// the orchestrator to embed as denormalized snapshots.
type documentRefs struct {
	Client         *domain.Client
	Project        *domain.Project
	ContactPersons []domain.DocumentContactPerson
}

// documentValidator re-derives every computed figure of a document draft and
// rejects the draft when any submitted value disagrees. All arithmetic checks
// run before any repository round-trip; uniqueness and referential checks come
// last. The first failing check aborts with a message naming the expected
// value and the formula behind it.
type documentValidator struct {
	clientRepo  portsrepo.ClientReader
	projectRepo portsrepo.ProjectReader
}

func newDocumentValidator(clientRepo portsrepo.ClientReader, projectRepo portsrepo.ProjectReader) *documentValidator {
	return &documentValidator{clientRepo: clientRepo, projectRepo: projectRepo}
}

// Validate runs the full pipeline. numberExists reports whether another
// document of the same kind in the organization already uses draft.Number; on
// update the caller excludes the document's own ID from that check.
func (v *documentValidator) Validate(
	ctx context.Context,
	organizationID string,
	draft documentDraft,
	dates documentDates,
	numberExists func(ctx context.Context) (bool, error),
) (*documentRefs, error) {
	if err := v.validateArithmetic(draft, dates); err != nil {
		return nil, err
	}

	exists, err := numberExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s uniqueness: %w", strings.ToLower(draft.NumberLabel), err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicate, draft.NumberLabel)
	}

	return v.resolveReferences(ctx, organizationID, draft)
}

// validateArithmetic covers the pure checks: formats, dates, duplicate item
// names, per-line arithmetic, subtotal, advance tax and grand total.
func (v *documentValidator) validateArithmetic(draft documentDraft, dates documentDates) error {
	if res := validation.Code(draft.Number); !res.IsValid {
		return validationErrorf("%s is not valid: %s", draft.NumberLabel, res.ErrorText())
	}

	if err := validateDocumentDates(dates); err != nil {
		return err
	}

	if err := validateDuplicateItemNames(draft.Items); err != nil {
		return err
	}

	for i, item := range draft.Items {
		if err := validateDocumentItem(i+1, item); err != nil {
			return err
		}
	}

	subTotal := decimal.Zero
	for _, item := range draft.Items {
		subTotal = subTotal.Add(item.Price)
	}
	subTotal = subTotal.Round(2)
	if !subTotal.Equal(draft.SubTotal) {
		return validationErrorf("Subtotal should be equal to sum of item prices = %s", subTotal)
	}

	if err := validateAdvanceTax(draft); err != nil {
		return err
	}

	return validateGrandTotal(draft)
}

func validateDocumentDates(dates documentDates) error {
	if dates.Required {
		if dates.Start == nil || *dates.Start == "" {
			return validationErrorf("%s is required", dates.StartLabel)
		}
		if dates.End == nil || *dates.End == "" {
			return validationErrorf("%s is required", dates.EndLabel)
		}
	}

	if dates.Start != nil && *dates.Start != "" {
		if res := validation.DateString(*dates.Start); !res.IsValid {
			return validationErrorf("%s is not valid: %s", dates.StartLabel, res.ErrorText())
		}
	}
	if dates.End != nil && *dates.End != "" {
		if res := validation.DateString(*dates.End); !res.IsValid {
			return validationErrorf("%s is not valid: %s", dates.EndLabel, res.ErrorText())
		}
	}

	if dates.Start != nil && *dates.Start != "" && dates.End != nil && *dates.End != "" {
		if *dates.Start > *dates.End {
			return validationErrorf("%s should be after %s", dates.EndLabel, strings.ToLower(dates.StartLabel))
		}
	}

	return nil
}

func validateDuplicateItemNames(items []dto.DocumentItemRequest) error {
	seen := make(map[string]bool, len(items))
	var duplicates []string
	reported := make(map[string]bool)
	for _, item := range items {
		name := strings.ToLower(item.Name)
		if seen[name] && !reported[name] {
			duplicates = append(duplicates, name)
			reported[name] = true
		}
		seen[name] = true
	}
	if len(duplicates) > 0 {
		return validationErrorf("There are multiple items with the same name: %s", strings.Join(duplicates, ", "))
	}
	return nil
}

func validateDocumentItem(lineNo int, item dto.DocumentItemRequest) error {
	if res := validation.Integer(item.Quantity, 1); !res.IsValid {
		return validationErrorf("Item %d: Quantity is not valid: %s", lineNo, res.ErrorText())
	}

	if res := validation.Decimal(item.UnitPrice, decimal.Zero, 2); !res.IsValid {
		return validationErrorf("Item %d: Unit price is not valid: %s", lineNo, res.ErrorText())
	}

	expectedPrice := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
	if !expectedPrice.Equal(item.Price) {
		return validationErrorf("Item %d: Price should be equal to quantity x unit price = %d x %s = %s",
			lineNo, item.Quantity, item.UnitPrice, expectedPrice)
	}

	taxRate, ok := domain.ItemTaxRates[item.TaxRateKey]
	if !ok {
		return validationErrorf("Item %d: Tax rate is not valid, supported values are: %s",
			lineNo, strings.Join(domain.ItemTaxRateKeys, ", "))
	}

	if !item.TaxRateValue.Equal(taxRate.Rate) {
		return validationErrorf("Item %d: Tax rate value should be %s for %s",
			lineNo, taxRate.Rate, item.TaxRateKey)
	}

	expectedTaxAmount := item.Price.Mul(item.TaxRateValue).Div(decimalHundred).Round(2)
	if !expectedTaxAmount.Equal(item.TaxAmount) {
		return validationErrorf("Item %d: Tax amount should be %s for price %s and tax rate %s%%",
			lineNo, expectedTaxAmount, item.Price, item.TaxRateValue)
	}

	expectedTotal := item.Price.Add(item.TaxAmount).Round(2)
	if !expectedTotal.Equal(item.TotalAmount) {
		return validationErrorf("Item %d: Total amount should be %s", lineNo, expectedTotal)
	}

	return nil
}

func validateAdvanceTax(draft documentDraft) error {
	if draft.AdvanceTaxType == nil {
		if !draft.AdvanceTaxRate.IsZero() {
			return validationErrorf("Tax rate should be 0 when tax type is not provided")
		}
		if !draft.AdvanceTaxAmount.IsZero() {
			return validationErrorf("Tax amount should be 0 when tax type is not provided")
		}
		return nil
	}

	taxType := *draft.AdvanceTaxType
	if !domain.IsValidAdvanceTaxType(taxType) {
		return validationErrorf("Advance tax type is not valid, supported values are: %s",
			strings.Join(domain.AdvanceTaxTypes, ", "))
	}

	subTypes := domain.AdvanceTaxSubTypesFor(taxType)
	if len(subTypes) == 0 {
		return validationErrorf("No %s subtypes found for the selected tax type", taxType)
	}

	if draft.AdvanceTaxSubType == nil {
		return validationErrorf("Advance Tax subtype is required when tax type is provided")
	}

	var subType *domain.AdvanceTaxSubType
	for i := range subTypes {
		if subTypes[i].Key == *draft.AdvanceTaxSubType {
			subType = &subTypes[i]
			break
		}
	}
	if subType == nil {
		names := make([]string, len(subTypes))
		for i, st := range subTypes {
			names[i] = st.Name
		}
		return validationErrorf("Advance Tax subtype is not valid, supported values for selected tax type %s are: %s",
			taxType, strings.Join(names, ", "))
	}

	if !draft.AdvanceTaxRate.Equal(subType.Rate) {
		return validationErrorf("Tax subtype rate should be equal to selected tax subtype %s = %s",
			subType.Name, subType.Rate)
	}

	expectedAmount := draft.SubTotal.Mul(draft.AdvanceTaxRate).Div(decimalHundred).Round(2)
	if !expectedAmount.Equal(draft.AdvanceTaxAmount) {
		return validationErrorf("Tax amount should be equal to subtotal x tax rate / 100 = %s x %s / 100 = %s",
			draft.SubTotal, draft.AdvanceTaxRate, expectedAmount)
	}

	return nil
}

// validateGrandTotal checks the payable total. TCS is collected on top of the
// item totals and adds to the payable amount; TDS is deducted at source and
// subtracts from it. The same convention applies to invoices and quotes.
func validateGrandTotal(draft documentDraft) error {
	itemsTotal := decimal.Zero
	for _, item := range draft.Items {
		itemsTotal = itemsTotal.Add(item.TotalAmount)
	}

	sign := "-"
	expected := itemsTotal.Sub(draft.AdvanceTaxAmount)
	if draft.AdvanceTaxType != nil && *draft.AdvanceTaxType == domain.AdvanceTaxTypeTCS {
		sign = "+"
		expected = itemsTotal.Add(draft.AdvanceTaxAmount)
	}
	expected = expected.Round(2)

	if !expected.Equal(draft.TotalAmount) {
		return validationErrorf("Total amount should be equal to sum of item total amounts %s %s advance tax amount %s = %s",
			itemsTotal.StringFixed(2), sign, draft.AdvanceTaxAmount.StringFixed(2), expected)
	}

	return nil
}

// resolveReferences checks that every referenced entity belongs to the tenant
// and returns the resolved entities for snapshotting.
func (v *documentValidator) resolveReferences(ctx context.Context, organizationID string, draft documentDraft) (*documentRefs, error) {
	client, err := v.clientRepo.FindClientByID(ctx, organizationID, draft.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, validationErrorf("Client not found or is not part of the organization")
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	refs := &documentRefs{Client: client}

	if draft.ProjectID != nil {
		project, err := v.projectRepo.FindProjectByID(ctx, organizationID, *draft.ProjectID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, validationErrorf("Project not found or is not part of the organization")
			}
			return nil, fmt.Errorf("failed to load project: %w", err)
		}
		if project.ClientID == nil || *project.ClientID != draft.ClientID {
			return nil, validationErrorf("Project does not belong to the specified client")
		}
		refs.Project = project
	}

	if len(draft.ContactPersonIDs) > 0 {
		ids := dedupeStrings(draft.ContactPersonIDs)
		persons, err := v.clientRepo.FindContactPersonsByIDs(ctx, client.ClientID, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load contact persons: %w", err)
		}
		if len(persons) != len(ids) {
			return nil, validationErrorf("Invalid contact person Ids")
		}
		refs.ContactPersons = make([]domain.DocumentContactPerson, len(persons))
		for i, p := range persons {
			refs.ContactPersons[i] = domain.DocumentContactPerson{
				ContactPersonID:   p.ContactPersonID,
				Name:              p.Name,
				Email:             p.Email,
				MobileCountryCode: p.MobileCountryCode,
				MobileNumber:      p.MobileNumber,
			}
		}
	}

	return refs, nil
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
