// internal/repository/customer_repo.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"customer-service/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListFilter narrows a customer listing. Search matches names, email, phone
// and platform_id case-insensitively.
type ListFilter struct {
	AppID    uuid.UUID
	Platform domain.Platform // empty = all platforms
	Search   string
	Offset   int
	Limit    int
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByIdentity(ctx context.Context, appID uuid.UUID, platform domain.Platform, platformID string) (*domain.Customer, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Customer, int, error)
	Patch(ctx context.Context, id uuid.UUID, patch *domain.CustomerPatch) (*domain.Customer, error)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*domain.Customer, error)
	TouchInteraction(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &customerRepo{db: db}
}

const customerColumns = `
	id, app_id, platform, platform_id,
	first_name, last_name, profile_pic_url,
	email, phone, custom_metadata, access_token,
	is_active, is_blocked,
	created_at, updated_at, last_interaction_at
`

func (r *customerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (
			app_id, platform, platform_id,
			first_name, last_name, profile_pic_url,
			email, phone, custom_metadata, access_token,
			is_active, is_blocked, last_interaction_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	var metadataJSON []byte
	if len(customer.CustomMetadata) > 0 {
		metadataJSON, _ = json.Marshal(customer.CustomMetadata)
	}

	err := r.db.QueryRow(ctx, query,
		customer.AppID,
		customer.Platform,
		customer.PlatformID,
		nullable(customer.FirstName),
		nullable(customer.LastName),
		nullable(customer.ProfilePicURL),
		nullable(customer.Email),
		nullable(customer.Phone),
		metadataJSON,
		nullable(customer.AccessToken),
		customer.IsActive,
		customer.IsBlocked,
		customer.LastInteractionAt,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *customerRepo) GetByIdentity(ctx context.Context, appID uuid.UUID, platform domain.Platform, platformID string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE app_id = $1 AND platform = $2 AND platform_id = $3
	`
	return r.scanOne(r.db.QueryRow(ctx, query, appID, platform, platformID))
}

func (r *customerRepo) List(ctx context.Context, filter ListFilter) ([]*domain.Customer, int, error) {
	where := []string{"app_id = $1"}
	args := []interface{}{filter.AppID}

	if filter.Platform != "" {
		args = append(args, filter.Platform)
		where = append(where, fmt.Sprintf("platform = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(`(
			first_name ILIKE $%d OR last_name ILIKE $%d OR
			email ILIKE $%d OR phone ILIKE $%d OR platform_id ILIKE $%d
		)`, n, n, n, n, n))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM customers WHERE ` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT %s FROM customers
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, customerColumns, whereClause, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []*domain.Customer{}
	for rows.Next() {
		customer, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	return customers, total, nil
}

// Patch applies a typed partial update. Only non-nil fields touch the row;
// updated_at is always refreshed.
func (r *customerRepo) Patch(ctx context.Context, id uuid.UUID, patch *domain.CustomerPatch) (*domain.Customer, error) {
	setClauses := []string{}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FirstName != nil {
		add("first_name", nullable(*patch.FirstName))
	}
	if patch.LastName != nil {
		add("last_name", nullable(*patch.LastName))
	}
	if patch.ProfilePicURL != nil {
		add("profile_pic_url", nullable(*patch.ProfilePicURL))
	}
	if patch.Email != nil {
		add("email", nullable(*patch.Email))
	}
	if patch.Phone != nil {
		add("phone", nullable(*patch.Phone))
	}
	if patch.CustomMetadata != nil {
		metadataJSON, err := json.Marshal(patch.CustomMetadata)
		if err != nil {
			return nil, fmt.Errorf("encode custom_metadata: %w", err)
		}
		add("custom_metadata", metadataJSON)
	}
	if patch.AccessToken != nil {
		add("access_token", nullable(*patch.AccessToken))
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if patch.IsBlocked != nil {
		add("is_blocked", *patch.IsBlocked)
	}
	if patch.LastInteractionAt != nil {
		add("last_interaction_at", *patch.LastInteractionAt)
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE customers
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setClauses, ", "), customerColumns)

	return r.scanOne(r.db.QueryRow(ctx, query, args...))
}

func (r *customerRepo) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET is_blocked = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + customerColumns
	return r.scanOne(r.db.QueryRow(ctx, query, id, blocked))
}

func (r *customerRepo) TouchInteraction(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET last_interaction_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + customerColumns
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *customerRepo) scanOne(row rowScanner) (*domain.Customer, error) {
	customer, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (r *customerRepo) scanRow(row rowScanner) (*domain.Customer, error) {
	var (
		customer      domain.Customer
		firstName     *string
		lastName      *string
		profilePicURL *string
		email         *string
		phone         *string
		metadataJSON  []byte
		accessToken   *string
	)

	err := row.Scan(
		&customer.ID,
		&customer.AppID,
		&customer.Platform,
		&customer.PlatformID,
		&firstName,
		&lastName,
		&profilePicURL,
		&email,
		&phone,
		&metadataJSON,
		&accessToken,
		&customer.IsActive,
		&customer.IsBlocked,
		&customer.CreatedAt,
		&customer.UpdatedAt,
		&customer.LastInteractionAt,
	)
	if err != nil {
		return nil, err
	}

	customer.FirstName = deref(firstName)
	customer.LastName = deref(lastName)
	customer.ProfilePicURL = deref(profilePicURL)
	customer.Email = deref(email)
	customer.Phone = deref(phone)
	customer.AccessToken = deref(accessToken)

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &customer.CustomMetadata); err != nil {
			return nil, fmt.Errorf("decode custom_metadata: %w", err)
		}
	}
	return &customer, nil
}

// nullable maps the empty string to SQL NULL so optional text columns stay
// NULL instead of accumulating empty strings.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
