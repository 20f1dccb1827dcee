package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			IdentityTokenTTL: 30 * time.Minute,
			IntentTokenTTL:   5 * time.Minute,
			ExposeResetToken: true,
		},
	}
	cfg.SecretKey.Signing = "signing-secret-for-tests"
	cfg.SecretKey.Reset = "reset-secret-for-tests"

	return cfg
}

// realCore wires the production hasher, codec, deriver and policy.
type realCore struct {
	hasher  service.CredentialHasher
	codec   service.TokenCodec
	deriver service.ResetTokenDeriver
	policy  service.PasswordPolicy
	config  *config.Config
}

func newRealCore(t *testing.T) realCore {
	t.Helper()

	return newRealCoreWithConfig(t, newTestConfig())
}

func newRealCoreWithConfig(t *testing.T, cfg *config.Config) realCore {
	t.Helper()

	codec, err := auth.NewJWTCodec(cfg)
	require.NoError(t, err)
	deriver, err := auth.NewResetTokenDeriver(cfg)
	require.NoError(t, err)

	return realCore{
		hasher:  auth.NewPBKDF2Hasher(),
		codec:   codec,
		deriver: deriver,
		policy:  auth.NewPasswordPolicy(cfg),
		config:  cfg,
	}
}

// expectTransaction makes txManager run the callback against factory once.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
