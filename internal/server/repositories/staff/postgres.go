package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/dmitrijs2005/staffscore/internal/dbx"
	"github.com/dmitrijs2005/staffscore/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Staff) (*models.Staff, error) {
	query :=
		`INSERT INTO staff (full_name, email, birthday, store_id, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		m.FullName, m.Email, m.Birthday, m.StoreID, m.PasswordHash).Scan(&m.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == uniqueViolation && pgErr.ConstraintName == "staff_email_key":
				return nil, common.ErrDuplicateEmail
			case pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == "staff_store_id_fkey":
				return nil, common.InvalidField("store_id")
			}
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	query :=
		`SELECT id, full_name, email, birthday, store_id, password_hash FROM staff
		 WHERE email = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	query :=
		`SELECT id, full_name, email, birthday, store_id, password_hash FROM staff
		 WHERE id = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM staff WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Staff, error) {
	m := &models.Staff{}
	err := row.Scan(&m.ID, &m.FullName, &m.Email, &m.Birthday, &m.StoreID, &m.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}
