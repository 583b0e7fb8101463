package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/internal/core/ports/mocks"
	"yachaq-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(accountRepo, hashSvc, tokenSvc, ledgerTestLogger())
	ctx := context.Background()

	accountRepo.EXPECT().GetByName(gomock.Any(), "consent-service").Return(nil, nil)
	hashSvc.EXPECT().Hash(gomock.Any()).Return("$argon2id$hashed", nil)
	accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.ServiceAccount) error {
			assert.Equal(t, "consent-service", a.Name)
			assert.Equal(t, domain.ActorSystem, a.ActorType)
			assert.Equal(t, domain.AccountStatusActive, a.Status)
			assert.Equal(t, "$argon2id$hashed", a.SecretHash)
			return nil
		})

	resp, err := svc.Register(ctx, ports.RegisterRequest{
		Name:      "consent-service",
		ActorType: domain.ActorSystem,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.AccountID)
	assert.Len(t, resp.Secret, 64, "secret should be 64 hex chars")
}

func TestAuthService_Register_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(accountRepo, hashSvc, tokenSvc, ledgerTestLogger())

	accountRepo.EXPECT().GetByName(gomock.Any(), "taken").Return(&domain.ServiceAccount{
		ID:   uuid.New(),
		Name: "taken",
	}, nil)

	_, err := svc.Register(context.Background(), ports.RegisterRequest{
		Name:      "taken",
		ActorType: domain.ActorDS,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestAuthService_Register_InvalidActorType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(
		mocks.NewMockAccountRepository(ctrl),
		mocks.NewMockHashService(ctrl),
		mocks.NewMockTokenService(ctrl),
		ledgerTestLogger(),
	)

	_, err := svc.Register(context.Background(), ports.RegisterRequest{
		Name:      "svc",
		ActorType: "ROBOT",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestAuthService_Token_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(accountRepo, hashSvc, tokenSvc, ledgerTestLogger())

	account := &domain.ServiceAccount{
		ID:         uuid.New(),
		Name:       "settlement-service",
		SecretHash: "$argon2id$hashed",
		ActorType:  domain.ActorSystem,
		Status:     domain.AccountStatusActive,
	}
	expiry := time.Now().Add(24 * time.Hour)

	accountRepo.EXPECT().GetByName(gomock.Any(), "settlement-service").Return(account, nil)
	hashSvc.EXPECT().Verify("the-secret", "$argon2id$hashed").Return(true, nil)
	tokenSvc.EXPECT().Generate(account).Return("jwt-token", expiry, nil)
	accountRepo.EXPECT().TouchTokenIssued(gomock.Any(), account.ID).Return(nil)

	token, expiresAt, err := svc.Token(context.Background(), "settlement-service", "the-secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, expiresAt)
}

func TestAuthService_Token_TouchFailureStillIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(accountRepo, hashSvc, tokenSvc, ledgerTestLogger())

	account := &domain.ServiceAccount{
		ID:         uuid.New(),
		Name:       "settlement-service",
		SecretHash: "$argon2id$hashed",
		ActorType:  domain.ActorSystem,
		Status:     domain.AccountStatusActive,
	}
	expiry := time.Now().Add(24 * time.Hour)

	accountRepo.EXPECT().GetByName(gomock.Any(), "settlement-service").Return(account, nil)
	hashSvc.EXPECT().Verify("the-secret", "$argon2id$hashed").Return(true, nil)
	tokenSvc.EXPECT().Generate(account).Return("jwt-token", expiry, nil)
	accountRepo.EXPECT().TouchTokenIssued(gomock.Any(), account.ID).Return(errors.New("connection reset"))

	token, expiresAt, err := svc.Token(context.Background(), "settlement-service", "the-secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, expiresAt)
}

func TestAuthService_Token_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(accountRepo, hashSvc, tokenSvc, ledgerTestLogger())

	account := &domain.ServiceAccount{
		ID:         uuid.New(),
		Name:       "svc",
		SecretHash: "$argon2id$hashed",
		Status:     domain.AccountStatusActive,
	}

	accountRepo.EXPECT().GetByName(gomock.Any(), "svc").Return(account, nil)
	hashSvc.EXPECT().Verify("bad-secret", "$argon2id$hashed").Return(false, nil)

	_, _, err := svc.Token(context.Background(), "svc", "bad-secret")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Token_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)

	svc := NewAuthService(accountRepo, mocks.NewMockHashService(ctrl), mocks.NewMockTokenService(ctrl), ledgerTestLogger())

	accountRepo.EXPECT().GetByName(gomock.Any(), "ghost").Return(nil, nil)

	_, _, err := svc.Token(context.Background(), "ghost", "whatever")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Token_SuspendedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)

	svc := NewAuthService(accountRepo, hashSvc, mocks.NewMockTokenService(ctrl), ledgerTestLogger())

	account := &domain.ServiceAccount{
		ID:         uuid.New(),
		Name:       "suspended-svc",
		SecretHash: "$argon2id$hashed",
		Status:     domain.AccountStatusSuspended,
	}

	accountRepo.EXPECT().GetByName(gomock.Any(), "suspended-svc").Return(account, nil)
	hashSvc.EXPECT().Verify("the-secret", "$argon2id$hashed").Return(true, nil)

	_, _, err := svc.Token(context.Background(), "suspended-svc", "the-secret")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_004", appErr.Code)
}
