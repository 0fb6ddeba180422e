package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"solotrip/internal/models/db_models"
	"solotrip/internal/models/request_models"
	"solotrip/internal/models/response_models"
	"solotrip/internal/repositories"
	"solotrip/pkg/logger"
	mem "solotrip/pkg/memcache"
	"solotrip/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountLoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
	denylist    mem.TokenDenylist
	log         *logger.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager, denylist mem.TokenDenylist, log *logger.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwt,
		denylist:    denylist,
		log:         log.With("service", "AccountService"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.log.Error("finding account", "error", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	resp, err := a.issue(account)
	if err != nil {
		return nil, err
	}

	a.log.Debug("login", "user_id", account.ID, "latency_ms", time.Since(startTime).Milliseconds())
	return resp, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountLoginResponse, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("finding account", "error", err)
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.log.Error("creating account", "error", err)
		return nil, utils.ErrDatabaseError
	}

	a.log.Info("account created", "user_id", newAccount.ID)
	return a.issue(newAccount)
}

// Logout denylists token for the rest of its lifetime.
func (a *AccountService) Logout(ctx context.Context, token string) error {
	claims, err := a.jwt.ValidateToken(token)
	if err != nil {
		return utils.ErrUnauthorized
	}
	if err := a.denylist.Revoke(ctx, token, claims.Remaining(time.Now())); err != nil {
		a.log.Error("revoking token", "error", err)
		return err
	}
	return nil
}

func (a *AccountService) issue(account *db_models.Account) (*response_models.AccountLoginResponse, error) {
	token, err := a.jwt.CreateToken(account.ID, account.Name)
	if err != nil {
		return nil, err
	}
	return &response_models.AccountLoginResponse{
		Token: token,
		User: response_models.AccountResponse{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
		},
	}, nil
}
