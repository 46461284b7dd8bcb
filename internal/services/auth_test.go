package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestAuthService() *AuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewAuthService(nil, nil, logger)
}

func TestRefreshSessionWithoutSupabase(t *testing.T) {
	svc := newTestAuthService()
	if _, err := svc.RefreshSession(context.Background(), "some-token"); !errors.Is(err, ErrSupabaseNotConfigured) {
		t.Errorf("RefreshSession() error = %v, want %v", err, ErrSupabaseNotConfigured)
	}
}

func TestSupabaseUserWithoutSupabase(t *testing.T) {
	svc := newTestAuthService()
	if _, err := svc.SupabaseUser(context.Background(), "some-token"); !errors.Is(err, ErrSupabaseNotConfigured) {
		t.Errorf("SupabaseUser() error = %v, want %v", err, ErrSupabaseNotConfigured)
	}
}

func TestLogoutWithoutSupabase(t *testing.T) {
	svc := newTestAuthService()
	if err := svc.Logout(context.Background(), "some-token"); err != nil {
		t.Errorf("Logout() error = %v, want nil", err)
	}
}

func TestSupabaseLoginWithoutSupabase(t *testing.T) {
	svc := newTestAuthService()
	if _, err := svc.supabaseLogin(context.Background(), nil); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("supabaseLogin() error = %v, want %v", err, ErrInvalidCredentials)
	}
}
