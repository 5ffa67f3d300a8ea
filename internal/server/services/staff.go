// Package services contains server-side business logic. StaffService covers
// signup, login, token refresh and profile lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/dmitrijs2005/staffscore/internal/dbx"
	"github.com/dmitrijs2005/staffscore/internal/server/auth"
	"github.com/dmitrijs2005/staffscore/internal/server/models"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/repomanager"
)

// birthdayLayouts are tried in order; the second accepts unpadded day and month.
var birthdayLayouts = []string{"02/01/2006", "2/1/2006"}

// SignupInput is the validated-at-the-edge shape of a signup request.
type SignupInput struct {
	FullName string
	Email    string
	Password string
	Birthday string
	StoreID  int64
}

type StaffService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
}

func NewStaffService(db *sql.DB, m repomanager.RepositoryManager, issuer *auth.Issuer) *StaffService {
	return &StaffService{db: db, repomanager: m, issuer: issuer}
}

// Signup creates a staff member and returns its id.
func (s *StaffService) Signup(ctx context.Context, in SignupInput) (int64, error) {
	fields := []struct{ name, value string }{
		{"full_name", in.FullName},
		{"email", in.Email},
		{"password", in.Password},
		{"birthday", in.Birthday},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return 0, common.MissingField(f.name)
		}
	}
	if len(in.Password) > auth.MaxPasswordBytes {
		return 0, common.InvalidField("password")
	}
	if in.StoreID <= 0 {
		return 0, common.InvalidField("store_id")
	}

	birthday, err := ParseBirthday(in.Birthday)
	if err != nil {
		return 0, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	member := &models.Staff{
		FullName:     in.FullName,
		Email:        in.Email,
		Birthday:     birthday,
		StoreID:      in.StoreID,
		PasswordHash: hash,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Staff(tx)

		exists, err := repo.EmailExists(ctx, in.Email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return common.ErrDuplicateEmail
		}

		if _, err := repo.Create(ctx, member); err != nil {
			if errors.Is(err, common.ErrDuplicateEmail) {
				return err
			}
			return fmt.Errorf("error creating staff: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return member.ID, nil
}

// ParseBirthday parses a day/month/year date such as "15/06/1990".
func ParseBirthday(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, common.InvalidField("birthday")
}

// dummyHash is compared against when the email is unknown so that both
// failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("staffscore-dummy-password")
	return h
})

// Login checks credentials and issues an access/refresh token pair.
func (s *StaffService) Login(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	if strings.TrimSpace(email) == "" {
		return nil, common.MissingField("email")
	}
	if password == "" {
		return nil, common.MissingField("password")
	}

	member, err := s.repomanager.Staff(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, dummyHash())
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(password, member.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	pair, err := s.issuer.IssuePair(member.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return pair, nil
}

// Refresh trades a refresh token for a new access token.
func (s *StaffService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", common.MissingField("refresh_token")
	}
	return s.issuer.Refresh(refreshToken)
}

// Authenticate resolves an access token to a staff id.
func (s *StaffService) Authenticate(ctx context.Context, accessToken string) (int64, error) {
	return s.issuer.Verify(accessToken, auth.KindAccess)
}

// Profile returns the staff member with the password hash cleared.
func (s *StaffService) Profile(ctx context.Context, staffID int64) (*models.Staff, error) {
	member, err := s.repomanager.Staff(s.db).GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	member.PasswordHash = ""
	return member, nil
}
