package pgsql

import (
	"context"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// ClientRepository persists clients and their contact persons.
type ClientRepository struct {
	*Store
}

// NewClientRepository creates a client repository over the store.
func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{Store: store}
}

var _ portsrepo.ClientRepositoryFacade = (*ClientRepository)(nil)

const clientColumns = `client_id, organization_id, name, customer_type, email,
		mobile_country_code, mobile_number, pan, gstin, gst_treatment,
		billing_address_line1, billing_address_line2, billing_city, billing_state, billing_country, billing_pin_code,
		shipping_address_line1, shipping_address_line2, shipping_city, shipping_state, shipping_country, shipping_pin_code,
		created_at, updated_at`

func scanClient(row interface{ Scan(dest ...any) error }) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ClientID,
		&c.OrganizationID,
		&c.Name,
		&c.CustomerType,
		&c.Email,
		&c.MobileCountryCode,
		&c.MobileNumber,
		&c.PAN,
		&c.GSTIN,
		&c.GSTTreatment,
		&c.BillingAddress.AddressLine1,
		&c.BillingAddress.AddressLine2,
		&c.BillingAddress.City,
		&c.BillingAddress.State,
		&c.BillingAddress.Country,
		&c.BillingAddress.PinCode,
		&c.ShippingAddress.AddressLine1,
		&c.ShippingAddress.AddressLine2,
		&c.ShippingAddress.City,
		&c.ShippingAddress.State,
		&c.ShippingAddress.Country,
		&c.ShippingAddress.PinCode,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE organization_id = $1 AND client_id = $2;
	`
	client, err := scanClient(r.db(ctx).QueryRow(ctx, query, organizationID, clientID))
	if err != nil {
		return nil, mapDBError(err, "failed to find client by ID")
	}

	contacts, err := r.findContactPersonsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	client.ContactPersons = contacts
	return client, nil
}

func (r *ClientRepository) FindClients(ctx context.Context, organizationID string) ([]domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE organization_id = $1
		ORDER BY name;
	`
	rows, err := r.db(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapDBError(err, "failed to query clients")
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, mapDBError(err, "failed to scan client row")
		}
		clients = append(clients, *client)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating client rows")
	}
	return clients, nil
}

func (r *ClientRepository) NameExists(ctx context.Context, organizationID, name string, excludeClientID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM clients
			WHERE organization_id = $1 AND lower(name) = lower($2) AND client_id <> $3
		);
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, organizationID, name, excludeClientID).Scan(&exists); err != nil {
		return false, mapDBError(err, "failed to check client name")
	}
	return exists, nil
}

const contactPersonColumns = `contact_person_id, client_id, name, email,
		mobile_country_code, mobile_number, created_at, updated_at`

func scanContactPerson(row interface{ Scan(dest ...any) error }) (*domain.ClientContactPerson, error) {
	var cp domain.ClientContactPerson
	err := row.Scan(
		&cp.ContactPersonID,
		&cp.ClientID,
		&cp.Name,
		&cp.Email,
		&cp.MobileCountryCode,
		&cp.MobileNumber,
		&cp.CreatedAt,
		&cp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *ClientRepository) findContactPersonsByClient(ctx context.Context, clientID string) ([]domain.ClientContactPerson, error) {
	query := `
		SELECT ` + contactPersonColumns + `
		FROM client_contact_persons
		WHERE client_id = $1
		ORDER BY created_at, contact_person_id;
	`
	rows, err := r.db(ctx).Query(ctx, query, clientID)
	if err != nil {
		return nil, mapDBError(err, "failed to query contact persons")
	}
	defer rows.Close()

	persons := []domain.ClientContactPerson{}
	for rows.Next() {
		cp, err := scanContactPerson(rows)
		if err != nil {
			return nil, mapDBError(err, "failed to scan contact person row")
		}
		persons = append(persons, *cp)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating contact person rows")
	}
	return persons, nil
}

func (r *ClientRepository) FindContactPersonsByIDs(ctx context.Context, clientID string, contactPersonIDs []string) ([]domain.ClientContactPerson, error) {
	if len(contactPersonIDs) == 0 {
		return []domain.ClientContactPerson{}, nil
	}
	query := `
		SELECT ` + contactPersonColumns + `
		FROM client_contact_persons
		WHERE client_id = $1 AND contact_person_id = ANY($2)
		ORDER BY created_at, contact_person_id;
	`
	rows, err := r.db(ctx).Query(ctx, query, clientID, contactPersonIDs)
	if err != nil {
		return nil, mapDBError(err, "failed to query contact persons by IDs")
	}
	defer rows.Close()

	persons := []domain.ClientContactPerson{}
	for rows.Next() {
		cp, err := scanContactPerson(rows)
		if err != nil {
			return nil, mapDBError(err, "failed to scan contact person row")
		}
		persons = append(persons, *cp)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating contact person rows")
	}
	return persons, nil
}

func (r *ClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22,
			$23, $24);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		client.ClientID,
		client.OrganizationID,
		client.Name,
		client.CustomerType,
		client.Email,
		client.MobileCountryCode,
		client.MobileNumber,
		client.PAN,
		client.GSTIN,
		client.GSTTreatment,
		client.BillingAddress.AddressLine1,
		client.BillingAddress.AddressLine2,
		client.BillingAddress.City,
		client.BillingAddress.State,
		client.BillingAddress.Country,
		client.BillingAddress.PinCode,
		client.ShippingAddress.AddressLine1,
		client.ShippingAddress.AddressLine2,
		client.ShippingAddress.City,
		client.ShippingAddress.State,
		client.ShippingAddress.Country,
		client.ShippingAddress.PinCode,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to save client")
	}
	return r.InsertContactPersons(ctx, client.ContactPersons)
}

func (r *ClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $1, customer_type = $2, email = $3,
			mobile_country_code = $4, mobile_number = $5, pan = $6, gstin = $7, gst_treatment = $8,
			billing_address_line1 = $9, billing_address_line2 = $10, billing_city = $11,
			billing_state = $12, billing_country = $13, billing_pin_code = $14,
			shipping_address_line1 = $15, shipping_address_line2 = $16, shipping_city = $17,
			shipping_state = $18, shipping_country = $19, shipping_pin_code = $20,
			updated_at = $21
		WHERE organization_id = $22 AND client_id = $23;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		client.Name,
		client.CustomerType,
		client.Email,
		client.MobileCountryCode,
		client.MobileNumber,
		client.PAN,
		client.GSTIN,
		client.GSTTreatment,
		client.BillingAddress.AddressLine1,
		client.BillingAddress.AddressLine2,
		client.BillingAddress.City,
		client.BillingAddress.State,
		client.BillingAddress.Country,
		client.BillingAddress.PinCode,
		client.ShippingAddress.AddressLine1,
		client.ShippingAddress.AddressLine2,
		client.ShippingAddress.City,
		client.ShippingAddress.State,
		client.ShippingAddress.Country,
		client.ShippingAddress.PinCode,
		client.UpdatedAt,
		client.OrganizationID,
		client.ClientID,
	)
	if err != nil {
		return mapDBError(err, "failed to update client")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) DeleteClient(ctx context.Context, organizationID, clientID string) error {
	deleteContacts := `
		DELETE FROM client_contact_persons
		WHERE client_id IN (
			SELECT client_id FROM clients WHERE organization_id = $1 AND client_id = $2
		);
	`
	if _, err := r.db(ctx).Exec(ctx, deleteContacts, organizationID, clientID); err != nil {
		return mapDBError(err, "failed to delete client contact persons")
	}

	query := `DELETE FROM clients WHERE organization_id = $1 AND client_id = $2;`
	cmdTag, err := r.db(ctx).Exec(ctx, query, organizationID, clientID)
	if err != nil {
		return mapDBError(err, "failed to delete client")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) InsertContactPersons(ctx context.Context, persons []domain.ClientContactPerson) error {
	query := `
		INSERT INTO client_contact_persons (` + contactPersonColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, cp := range persons {
		_, err := r.db(ctx).Exec(ctx, query,
			cp.ContactPersonID,
			cp.ClientID,
			cp.Name,
			cp.Email,
			cp.MobileCountryCode,
			cp.MobileNumber,
			cp.CreatedAt,
			cp.UpdatedAt,
		)
		if err != nil {
			return mapDBError(err, "failed to insert contact person")
		}
	}
	return nil
}

func (r *ClientRepository) UpdateContactPersons(ctx context.Context, persons []domain.ClientContactPerson) error {
	query := `
		UPDATE client_contact_persons
		SET name = $1, email = $2, mobile_country_code = $3, mobile_number = $4, updated_at = $5
		WHERE client_id = $6 AND contact_person_id = $7;
	`
	for _, cp := range persons {
		cmdTag, err := r.db(ctx).Exec(ctx, query,
			cp.Name,
			cp.Email,
			cp.MobileCountryCode,
			cp.MobileNumber,
			cp.UpdatedAt,
			cp.ClientID,
			cp.ContactPersonID,
		)
		if err != nil {
			return mapDBError(err, "failed to update contact person")
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}
	return nil
}

func (r *ClientRepository) DeleteContactPersons(ctx context.Context, clientID string, contactPersonIDs []string) error {
	if len(contactPersonIDs) == 0 {
		return nil
	}
	query := `
		DELETE FROM client_contact_persons
		WHERE client_id = $1 AND contact_person_id = ANY($2);
	`
	if _, err := r.db(ctx).Exec(ctx, query, clientID, contactPersonIDs); err != nil {
		return mapDBError(err, "failed to delete contact persons")
	}
	return nil
}
