package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// Session operation errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// SessionUsecase implements the session state machine: anonymous to
// authenticated via login, register or wallet login, back to anonymous
// via logout. At most one user snapshot exists per session, and only
// these operations mutate it.
//
// Known limitation carried over from the product: the password is
// accepted on login and register but never verified against any stored
// credential. There is no credential store.
type SessionUsecase struct {
	userRepo  contract.IUserRepository
	sessions  contract.ISessionStore
	jwtSvc    JWTService
	logger    usecasecontract.IAppLogger
	config    usecasecontract.IConfigProvider
	validator usecasecontract.IValidator
	uuidGen   contract.IUUIDGenerator
	idGen     contract.IIDGenerator
	feeds     usecasecontract.IFeedRegistry
}

// NewSessionUsecase creates a new SessionUsecase instance.
func NewSessionUsecase(
	userRepo contract.IUserRepository,
	sessions contract.ISessionStore,
	jwtSvc JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGen contract.IUUIDGenerator,
	idGen contract.IIDGenerator,
) *SessionUsecase {
	return &SessionUsecase{
		userRepo:  userRepo,
		sessions:  sessions,
		jwtSvc:    jwtSvc,
		logger:    logger,
		config:    cfg,
		validator: validator,
		uuidGen:   uuidGen,
		idGen:     idGen,
	}
}

var _ usecasecontract.ISessionUseCase = (*SessionUsecase)(nil)

// SetFeedRegistry wires the per-session feed teardown hook. Optional; set
// once during startup.
func (uc *SessionUsecase) SetFeedRegistry(feeds usecasecontract.IFeedRegistry) {
	uc.feeds = feeds
}

// Login looks up a user by email, case-insensitively. The password is
// accepted but not checked.
func (uc *SessionUsecase) Login(ctx context.Context, email, password string) (*usecasecontract.SessionResult, error) {
	_ = password

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		uc.logger.Errorf("login lookup failed: %v", err)
		return nil, fmt.Errorf("login: %w", err)
	}
	return uc.openSession(ctx, user)
}

// LoginWithWallet associates a wallet address with a user. A known
// address resolves to its existing user every time; an unknown address
// synthesizes a fresh user that lives only in the session record, so each
// call for an unknown address yields a distinct identity.
func (uc *SessionUsecase) LoginWithWallet(ctx context.Context, address string) (*usecasecontract.SessionResult, error) {
	if err := uc.validator.ValidateWalletAddress(address); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByWalletAddress(ctx, address)
	if err != nil {
		if !errors.Is(err, contract.ErrUserNotFound) {
			uc.logger.Errorf("wallet login lookup failed: %v", err)
			return nil, fmt.Errorf("wallet login: %w", err)
		}
		user = uc.synthesizeWalletUser(address)
	}
	return uc.openSession(ctx, user)
}

// Register creates a new user unless the email or username is already
// taken, case-insensitively. The new account starts with zeroed stats and
// the default avatar.
func (uc *SessionUsecase) Register(ctx context.Context, email, password, username string) (*usecasecontract.SessionResult, error) {
	_ = password

	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("register email check failed: %v", err)
		return nil, fmt.Errorf("register: %w", err)
	}
	if _, err := uc.userRepo.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("register username check failed: %v", err)
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &entity.User{
		ID:            uc.idGen.NewID("user"),
		Username:      username,
		Email:         email,
		Avatar:        uc.config.GetDefaultAvatarURL(),
		Role:          entity.DefaultRole(),
		TotalEarned:   decimal.Zero,
		WalletBalance: decimal.Zero,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("register create failed: %v", err)
		return nil, fmt.Errorf("register: %w", err)
	}
	return uc.openSession(ctx, user)
}

// Logout clears the session record and tears down per-session state.
func (uc *SessionUsecase) Logout(ctx context.Context, sessionID string) error {
	if uc.feeds != nil {
		uc.feeds.Teardown(sessionID)
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.logger.Errorf("logout delete session failed: %v", err)
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentUser resolves the session record.
func (uc *SessionUsecase) CurrentUser(ctx context.Context, sessionID string) (*entity.User, error) {
	user, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, contract.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies profile edits to the session user and re-persists
// the snapshot. Users that exist in the shared set are updated there too
// so other screens see the change.
func (uc *SessionUsecase) UpdateProfile(ctx context.Context, sessionID string, updates map[string]interface{}) (*entity.User, error) {
	user, err := uc.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["username"].(string); ok && v != "" {
		if err := uc.validator.ValidateUsername(v); err != nil {
			return nil, err
		}
		if existing, err := uc.userRepo.GetUserByUsername(ctx, v); err == nil && existing.ID != user.ID {
			return nil, ErrUsernameTaken
		}
		user.Username = v
	}
	if v, ok := updates["bio"].(string); ok {
		user.Bio = &v
	}
	if v, ok := updates["avatar"].(string); ok && v != "" {
		user.Avatar = v
	}

	if _, err := uc.userRepo.UpdateUser(ctx, user); err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("profile update failed: %v", err)
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if err := uc.sessions.Save(ctx, sessionID, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// synthesizeWalletUser builds the throwaway account for an unknown wallet
// address: fresh timestamp ID, username from the address suffix, zeroed
// stats.
func (uc *SessionUsecase) synthesizeWalletUser(address string) *entity.User {
	suffix := address
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	addr := address
	return &entity.User{
		ID:            uc.idGen.NewID("wallet"),
		Username:      "user_" + suffix,
		Avatar:        uc.config.GetDefaultAvatarURL(),
		Role:          entity.DefaultRole(),
		TotalEarned:   decimal.Zero,
		WalletBalance: decimal.Zero,
		WalletAddress: &addr,
		CreatedAt:     time.Now().UTC(),
	}
}

// openSession persists the user snapshot under a fresh session ID and
// issues the access token for it.
func (uc *SessionUsecase) openSession(ctx context.Context, user *entity.User) (*usecasecontract.SessionResult, error) {
	sessionID := uc.uuidGen.NewUUID()
	if err := uc.sessions.Save(ctx, sessionID, user); err != nil {
		uc.logger.Errorf("session save failed: %v", err)
		return nil, fmt.Errorf("open session: %w", err)
	}
	token, err := uc.jwtSvc.GenerateAccessToken(user.ID, sessionID, user.Role)
	if err != nil {
		uc.logger.Errorf("token generation failed: %v", err)
		return nil, fmt.Errorf("open session: %w", err)
	}
	return &usecasecontract.SessionResult{
		User:        user,
		SessionID:   sessionID,
		AccessToken: token,
	}, nil
}
