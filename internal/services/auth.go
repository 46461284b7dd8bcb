package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"stavquote/internal/auth"
	"stavquote/internal/models"
	"stavquote/pkg/database"
	"stavquote/pkg/supabase"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrContractorNotFound    = errors.New("contractor not found")
	ErrSupabaseNotConfigured = errors.New("supabase auth is not configured")
)

// AuthService manages contractor accounts. Accounts live in our own
// contractors table; when a Supabase client is configured the account is
// mirrored into Supabase auth as well.
type AuthService struct {
	db         *database.Client
	supaClient *supabase.AuthClient
	logger     *logrus.Logger
}

// NewAuthService builds the auth service. supaClient may be nil when
// Supabase mirroring is not configured.
func NewAuthService(db *database.Client, supaClient *supabase.AuthClient, logger *logrus.Logger) *AuthService {
	return &AuthService{
		db:         db,
		supaClient: supaClient,
		logger:     logger,
	}
}

// Register creates a new contractor account.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Contractor, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM contractors WHERE email = $1)", req.Email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	query := `
		INSERT INTO contractors (id, name, email, password_hash, phone, company, active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING id, name, email, phone, company, active, email_verified, created_at, updated_at
	`

	contractor := &models.Contractor{}
	err = s.db.QueryRow(
		query,
		uuid.New().String(),
		req.Name,
		req.Email,
		passwordHash,
		req.Phone,
		req.Company,
	).Scan(
		&contractor.ID,
		&contractor.Name,
		&contractor.Email,
		&contractor.Phone,
		&contractor.Company,
		&contractor.Active,
		&contractor.EmailVerified,
		&contractor.CreatedAt,
		&contractor.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("creating contractor: %w", err)
	}

	if s.supaClient != nil {
		userData := map[string]interface{}{
			"name":          req.Name,
			"contractor_id": contractor.ID.String(),
		}
		if _, err := s.supaClient.SignUp(req.Email, req.Password, userData); err != nil {
			// The local account is authoritative; a Supabase mirror failure
			// must not lose the registration.
			s.logger.WithError(err).WithField("email", req.Email).Warn("Supabase mirror sign-up failed")
		}
	}

	return contractor, nil
}

// Login authenticates a contractor by email and password.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.Contractor, error) {
	query := `
		SELECT id, name, email, password_hash, phone, company, active, email_verified, last_login, created_at, updated_at
		FROM contractors
		WHERE email = $1 AND active = true
	`

	contractor := &models.Contractor{}
	var passwordHash string

	err := s.db.QueryRow(query, req.Email).Scan(
		&contractor.ID,
		&contractor.Name,
		&contractor.Email,
		&passwordHash,
		&contractor.Phone,
		&contractor.Company,
		&contractor.Active,
		&contractor.EmailVerified,
		&contractor.LastLogin,
		&contractor.CreatedAt,
		&contractor.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		// Accounts created directly against Supabase have no local row yet;
		// authenticate there and provision one.
		return s.supabaseLogin(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up contractor: %w", err)
	}

	if !auth.CheckPassword(req.Password, passwordHash) {
		return nil, ErrInvalidCredentials
	}

	if err := s.updateLastLogin(contractor.ID.String()); err != nil {
		s.logger.WithError(err).Warn("Failed to record last login")
	}

	return contractor, nil
}

// supabaseLogin authenticates against Supabase and provisions the local
// contractor row so later logins resolve locally.
func (s *AuthService) supabaseLogin(ctx context.Context, req *models.LoginRequest) (*models.Contractor, error) {
	if s.supaClient == nil {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.supaClient.SignIn(req.Email, req.Password)
	if err != nil {
		s.logger.WithError(err).WithField("email", req.Email).Debug("Supabase sign-in failed")
		return nil, ErrInvalidCredentials
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	query := `
		INSERT INTO contractors (id, name, email, password_hash, active, email_verified)
		VALUES ($1, $2, $3, $4, true, true)
		ON CONFLICT (email) DO UPDATE SET last_login = NOW(), updated_at = NOW()
		RETURNING id, name, email, phone, company, active, email_verified, last_login, created_at, updated_at
	`

	contractor := &models.Contractor{}
	err = s.db.QueryRow(
		query,
		uuid.New().String(),
		resp.User.Email,
		resp.User.Email,
		passwordHash,
	).Scan(
		&contractor.ID,
		&contractor.Name,
		&contractor.Email,
		&contractor.Phone,
		&contractor.Company,
		&contractor.Active,
		&contractor.EmailVerified,
		&contractor.LastLogin,
		&contractor.CreatedAt,
		&contractor.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("provisioning contractor: %w", err)
	}

	s.logger.WithField("email", contractor.Email).Info("Provisioned contractor from Supabase account")
	return contractor, nil
}

// RefreshSession exchanges a Supabase refresh token for a fresh session.
func (s *AuthService) RefreshSession(ctx context.Context, refreshToken string) (*models.SupabaseSession, error) {
	if s.supaClient == nil {
		return nil, ErrSupabaseNotConfigured
	}
	session, err := s.supaClient.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refreshing session: %w", err)
	}
	return session, nil
}

// Logout invalidates a Supabase session. Locally issued tokens carry their
// own expiry and have no server-side session to revoke.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	if s.supaClient == nil {
		return nil
	}
	if err := s.supaClient.SignOut(accessToken); err != nil {
		return fmt.Errorf("signing out: %w", err)
	}
	return nil
}

// SupabaseUser resolves the Supabase account behind an access token, for
// callers authenticated with a Supabase-issued token that has no local row.
func (s *AuthService) SupabaseUser(ctx context.Context, accessToken string) (*models.SupabaseUser, error) {
	if s.supaClient == nil {
		return nil, ErrSupabaseNotConfigured
	}
	user, err := s.supaClient.GetUser(accessToken)
	if err != nil {
		return nil, fmt.Errorf("resolving supabase user: %w", err)
	}
	return user, nil
}

// GetContractorByID looks up an active contractor by ID.
func (s *AuthService) GetContractorByID(ctx context.Context, contractorID string) (*models.Contractor, error) {
	query := `
		SELECT id, name, email, phone, company, active, email_verified, last_login, created_at, updated_at
		FROM contractors
		WHERE id = $1 AND active = true
	`

	contractor := &models.Contractor{}
	err := s.db.QueryRow(query, contractorID).Scan(
		&contractor.ID,
		&contractor.Name,
		&contractor.Email,
		&contractor.Phone,
		&contractor.Company,
		&contractor.Active,
		&contractor.EmailVerified,
		&contractor.LastLogin,
		&contractor.CreatedAt,
		&contractor.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrContractorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up contractor: %w", err)
	}

	return contractor, nil
}

func (s *AuthService) updateLastLogin(contractorID string) error {
	_, err := s.db.Exec(
		"UPDATE contractors SET last_login = NOW(), updated_at = NOW() WHERE id = $1",
		contractorID,
	)
	return err
}
