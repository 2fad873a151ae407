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
	"github.com/saiuttej/books-backend/internal/utils/validation"
)

// clientService implements the ClientSvcFacade interface.
type clientService struct {
	BaseService
	clientRepo    portsrepo.ClientRepositoryFacade
	changeLogRepo portsrepo.ChangeLogWriter
	txManager     portsrepo.TxManager
}

// NewClientService creates a new client service with the provided dependencies.
func NewClientService(
	clientRepo portsrepo.ClientRepositoryFacade,
	changeLogRepo portsrepo.ChangeLogWriter,
	txManager portsrepo.TxManager,
) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo:    clientRepo,
		changeLogRepo: changeLogRepo,
		txManager:     txManager,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) GetClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, organizationID, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by ID", slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, organizationID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.FindClients(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) CreateClient(ctx context.Context, organizationID, userID string, req dto.SaveClientRequest) (*domain.Client, error) {
	if err := s.validateSaveClientRequest(ctx, organizationID, &req, ""); err != nil {
		return nil, err
	}

	for _, cp := range req.ContactPersons {
		if cp.ContactPersonID != nil && *cp.ContactPersonID != "" {
			return nil, validationErrorf("Invalid contact person ID, does not belong to the client")
		}
	}

	now := time.Now()
	client := domain.Client{
		ClientID:          domain.NewID(),
		OrganizationID:    organizationID,
		Name:              req.Name,
		CustomerType:      req.CustomerType,
		Email:             req.Email,
		MobileCountryCode: req.MobileCountryCode,
		MobileNumber:      req.MobileNumber,
		PAN:               req.PAN,
		GSTIN:             req.GSTIN,
		GSTTreatment:      req.GSTTreatment,
		BillingAddress:    req.BillingAddress.ToAddress(),
		ShippingAddress:   req.ShippingAddress.ToAddress(),
		Timestamps:        domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	contacts := make([]domain.ClientContactPerson, len(req.ContactPersons))
	for i, cp := range req.ContactPersons {
		contacts[i] = domain.ClientContactPerson{
			ContactPersonID:   domain.NewID(),
			ClientID:          client.ClientID,
			Name:              cp.Name,
			Email:             cp.Email,
			MobileCountryCode: cp.MobileCountryCode,
			MobileNumber:      cp.MobileNumber,
			Timestamps:        domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		}
	}
	client.ContactPersons = contacts

	logs := []domain.EntityChangeLog{
		newChangeLog(domain.ChangeLogEntityClients, client.ClientID, domain.ChangeTypeCreated,
			userID, &organizationID, domain.ChangeLogDetails{
				ChangeMessages: []string{fmt.Sprintf("Client '%s' created", client.Name)},
			}),
	}
	for _, cp := range contacts {
		logs = append(logs, newChangeLog(domain.ChangeLogEntityClientContactPersons,
			contactLogEntityID(client.ClientID, cp.ContactPersonID), domain.ChangeTypeCreated,
			userID, &organizationID, domain.ChangeLogDetails{
				ChangeMessages: []string{fmt.Sprintf("Contact person '%s' added to client '%s'", cp.Name, client.Name)},
			}))
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.clientRepo.SaveClient(ctx, client); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, logs)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create client", slog.String("client_name", client.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, organizationID, userID, clientID string, req dto.SaveClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, organizationID, clientID)
	if err != nil {
		return nil, err
	}

	if err := s.validateSaveClientRequest(ctx, organizationID, &req, clientID); err != nil {
		return nil, err
	}

	cs := s.diffClientFields(client, req)

	contactsDiff, err := s.diffContactPersons(organizationID, userID, client, req.ContactPersons)
	if err != nil {
		return nil, err
	}

	if !cs.HasChanges() && len(contactsDiff.logs) == 0 {
		s.LogDebug(ctx, "Client update is a no-op", slog.String("client_id", clientID))
		return client, nil
	}

	var clientLog *domain.EntityChangeLog
	if cs.HasChanges() {
		client.UpdatedAt = time.Now()
		log := newChangeLog(domain.ChangeLogEntityClients, client.ClientID, domain.ChangeTypeUpdated,
			userID, &organizationID, cs.Details())
		clientLog = &log
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if len(contactsDiff.logs) > 0 {
			if len(contactsDiff.toUpdate) > 0 {
				if err := s.clientRepo.UpdateContactPersons(ctx, contactsDiff.toUpdate); err != nil {
					return err
				}
			}
			if len(contactsDiff.toInsert) > 0 {
				if err := s.clientRepo.InsertContactPersons(ctx, contactsDiff.toInsert); err != nil {
					return err
				}
			}
			if len(contactsDiff.toDelete) > 0 {
				if err := s.clientRepo.DeleteContactPersons(ctx, client.ClientID, contactsDiff.toDelete); err != nil {
					return err
				}
			}
			if err := s.changeLogRepo.InsertLogs(ctx, contactsDiff.logs); err != nil {
				return err
			}
		}
		if clientLog != nil {
			if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
				return err
			}
			return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{*clientLog})
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}

	client.ContactPersons = contactsDiff.final
	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID))
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, organizationID, userID, clientID string) error {
	client, err := s.clientRepo.FindClientByID(ctx, organizationID, clientID)
	if err != nil {
		return err
	}

	changeLog := newChangeLog(domain.ChangeLogEntityClients, client.ClientID, domain.ChangeTypeDeleted,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Client '%s' deleted", client.Name)},
		})

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.clientRepo.DeleteClient(ctx, organizationID, clientID); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}

// validateSaveClientRequest validates and canonicalizes a client save request
// in place. Empty optional strings are normalized to nil so diffs do not see
// phantom changes.
func (s *clientService) validateSaveClientRequest(ctx context.Context, organizationID string, req *dto.SaveClientRequest, excludeClientID string) error {
	nameExists, err := s.clientRepo.NameExists(ctx, organizationID, req.Name, excludeClientID)
	if err != nil {
		return fmt.Errorf("failed to check client name uniqueness: %w", err)
	}
	if nameExists {
		return fmt.Errorf("%w: there is already a client with same name '%s'", apperrors.ErrDuplicate, req.Name)
	}

	normalizeOptional(&req.Email)
	if req.Email != nil {
		if res := validation.Email(*req.Email); !res.IsValid {
			return validationErrorf("Email is not valid: %s", res.ErrorText())
		}
	}

	if err := canonicalizeMobile(&req.MobileCountryCode, &req.MobileNumber, "Mobile number is not valid"); err != nil {
		return err
	}

	normalizeOptional(&req.GSTTreatment)
	if req.GSTTreatment != nil {
		if _, ok := domain.GSTTreatmentOptions[*req.GSTTreatment]; !ok {
			return validationErrorf("GST treatment option is not valid")
		}
	}

	normalizeOptional(&req.GSTIN)
	if req.GSTTreatment != nil &&
		(*req.GSTTreatment == domain.GSTTreatmentRegisteredRegular || *req.GSTTreatment == domain.GSTTreatmentRegisteredComposition) {
		gstin := ""
		if req.GSTIN != nil {
			gstin = *req.GSTIN
		}
		if res := validation.GSTIN(gstin); !res.IsValid {
			return validationErrorf("GSTIN is not valid: %s", res.ErrorText())
		}
	} else {
		req.GSTIN = nil
	}

	normalizeOptional(&req.PAN)
	if req.PAN != nil {
		if res := validation.PAN(*req.PAN); !res.IsValid {
			return validationErrorf("PAN Number is not valid: %s", res.ErrorText())
		}
	}

	seenIDs := make(map[string]bool)
	for i := range req.ContactPersons {
		cp := &req.ContactPersons[i]

		normalizeOptional(&cp.Email)
		if cp.Email != nil {
			if res := validation.Email(*cp.Email); !res.IsValid {
				return validationErrorf("Email is not valid for contact person %d: %s", i+1, res.ErrorText())
			}
		}

		msg := fmt.Sprintf("Mobile number is not valid for contact person %d", i+1)
		if err := canonicalizeMobile(&cp.MobileCountryCode, &cp.MobileNumber, msg); err != nil {
			return err
		}

		normalizeOptional(&cp.ContactPersonID)
		if cp.ContactPersonID != nil {
			if seenIDs[*cp.ContactPersonID] {
				return validationErrorf("Contact person IDs must be unique")
			}
			seenIDs[*cp.ContactPersonID] = true
		}
	}

	return nil
}

// diffClientFields applies the request to the client in place, recording every
// changed field.
func (s *clientService) diffClientFields(client *domain.Client, req dto.SaveClientRequest) *changeSet {
	cs := &changeSet{}
	cs.String("name", "Client name", &client.Name, req.Name)
	cs.String("customerType", "Customer type", &client.CustomerType, req.CustomerType)
	cs.NullString("email", "Email", &client.Email, req.Email)
	cs.NullString("mobileCountryCode", "Mobile country code", &client.MobileCountryCode, req.MobileCountryCode)
	cs.NullString("mobileNumber", "Mobile number", &client.MobileNumber, req.MobileNumber)
	cs.NullString("pan", "PAN", &client.PAN, req.PAN)
	cs.NullString("gstin", "GSTIN", &client.GSTIN, req.GSTIN)
	cs.NullString("gstTreatment", "GST treatment", &client.GSTTreatment, req.GSTTreatment)

	diffAddress(cs, "billingAddress", "Billing address", &client.BillingAddress, req.BillingAddress.ToAddress())
	diffAddress(cs, "shippingAddress", "Shipping address", &client.ShippingAddress, req.ShippingAddress.ToAddress())

	return cs
}

func diffAddress(cs *changeSet, fieldPrefix, labelPrefix string, target *domain.Address, incoming domain.Address) {
	cs.NullString(fieldPrefix+".addressLine1", labelPrefix+" line 1", &target.AddressLine1, incoming.AddressLine1)
	cs.NullString(fieldPrefix+".addressLine2", labelPrefix+" line 2", &target.AddressLine2, incoming.AddressLine2)
	cs.NullString(fieldPrefix+".city", labelPrefix+" city", &target.City, incoming.City)
	cs.NullString(fieldPrefix+".state", labelPrefix+" state", &target.State, incoming.State)
	cs.NullString(fieldPrefix+".country", labelPrefix+" country", &target.Country, incoming.Country)
	cs.NullString(fieldPrefix+".pinCode", labelPrefix+" pin code", &target.PinCode, incoming.PinCode)
}

// contactPersonsDiff holds the reconciliation of a client's contact persons
// against a save request.
type contactPersonsDiff struct {
	toInsert []domain.ClientContactPerson
	toUpdate []domain.ClientContactPerson
	toDelete []string
	logs     []domain.EntityChangeLog
	final    []domain.ClientContactPerson
}

// diffContactPersons reconciles the stored contact persons with the request:
// entries without an ID are additions, entries whose ID is absent from the
// request are deletions, entries present in both are field-diffed.
func (s *clientService) diffContactPersons(organizationID, userID string, client *domain.Client, requested []dto.ContactPersonRequest) (*contactPersonsDiff, error) {
	current := make(map[string]*domain.ClientContactPerson, len(client.ContactPersons))
	for i := range client.ContactPersons {
		current[client.ContactPersons[i].ContactPersonID] = &client.ContactPersons[i]
	}

	diff := &contactPersonsDiff{}
	now := time.Now()
	requestedIDs := make(map[string]bool)

	for _, cp := range requested {
		if cp.ContactPersonID == nil {
			person := domain.ClientContactPerson{
				ContactPersonID:   domain.NewID(),
				ClientID:          client.ClientID,
				Name:              cp.Name,
				Email:             cp.Email,
				MobileCountryCode: cp.MobileCountryCode,
				MobileNumber:      cp.MobileNumber,
				Timestamps:        domain.Timestamps{CreatedAt: now, UpdatedAt: now},
			}
			diff.toInsert = append(diff.toInsert, person)
			diff.final = append(diff.final, person)
			diff.logs = append(diff.logs, newChangeLog(domain.ChangeLogEntityClientContactPersons,
				contactLogEntityID(client.ClientID, person.ContactPersonID), domain.ChangeTypeCreated,
				userID, &organizationID, domain.ChangeLogDetails{
					ChangeMessages: []string{fmt.Sprintf("Contact person '%s' added to client '%s'", person.Name, client.Name)},
				}))
			continue
		}

		existing, ok := current[*cp.ContactPersonID]
		if !ok {
			return nil, validationErrorf("Invalid contact person ID, does not belong to the client")
		}
		requestedIDs[*cp.ContactPersonID] = true

		cpCS := &changeSet{}
		label := fmt.Sprintf("contact person '%s'", existing.Name)
		cpCS.String("name", "Name of "+label, &existing.Name, cp.Name)
		cpCS.NullString("email", "Email of "+label, &existing.Email, cp.Email)
		cpCS.NullString("mobileCountryCode", "Mobile country code of "+label, &existing.MobileCountryCode, cp.MobileCountryCode)
		cpCS.NullString("mobileNumber", "Mobile number of "+label, &existing.MobileNumber, cp.MobileNumber)

		diff.final = append(diff.final, *existing)
		if !cpCS.HasChanges() {
			continue
		}

		existing.UpdatedAt = now
		diff.final[len(diff.final)-1] = *existing
		diff.toUpdate = append(diff.toUpdate, *existing)
		diff.logs = append(diff.logs, newChangeLog(domain.ChangeLogEntityClientContactPersons,
			contactLogEntityID(client.ClientID, existing.ContactPersonID), domain.ChangeTypeUpdated,
			userID, &organizationID, cpCS.Details()))
	}

	for i := range client.ContactPersons {
		cp := &client.ContactPersons[i]
		if requestedIDs[cp.ContactPersonID] {
			continue
		}
		diff.toDelete = append(diff.toDelete, cp.ContactPersonID)
		diff.logs = append(diff.logs, newChangeLog(domain.ChangeLogEntityClientContactPersons,
			contactLogEntityID(client.ClientID, cp.ContactPersonID), domain.ChangeTypeDeleted,
			userID, &organizationID, domain.ChangeLogDetails{
				ChangeMessages: []string{fmt.Sprintf("Contact person '%s' removed from client '%s'", cp.Name, client.Name)},
			}))
	}

	return diff, nil
}

func contactLogEntityID(clientID, contactPersonID string) string {
	return clientID + "::" + contactPersonID
}

// normalizeOptional turns a pointer to an empty string into nil.
func normalizeOptional(value **string) {
	if *value != nil && **value == "" {
		*value = nil
	}
}

// canonicalizeMobile validates a country-code/number pair when both are
// present and rewrites them to canonical form; otherwise both are cleared.
func canonicalizeMobile(countryCode, number **string, errPrefix string) error {
	if *countryCode != nil && **countryCode != "" && *number != nil && **number != "" {
		res, value := validation.MobileNumber(**countryCode, **number)
		if !res.IsValid {
			return validationErrorf("%s: %s", errPrefix, res.ErrorText())
		}
		cc := value.CountryCode
		nn := value.NationalNumber
		*countryCode = &cc
		*number = &nn
		return nil
	}
	*countryCode = nil
	*number = nil
	return nil
}
