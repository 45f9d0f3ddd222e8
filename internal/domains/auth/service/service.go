package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"atlas/config"
	"atlas/infras/jwt"
	"atlas/infras/otel"
	auditModel "atlas/internal/domains/audit/model"
	auditDto "atlas/internal/domains/audit/model/dto"
	auditService "atlas/internal/domains/audit/service"
	"atlas/internal/domains/auth/model/dto"
	profileModel "atlas/internal/domains/profile/model"
	profileRepo "atlas/internal/domains/profile/repository"
	"atlas/shared"
	"atlas/shared/cache"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/failure"
	"atlas/shared/password"
	"atlas/shared/timezone"
)

const denylistPrefix = "auth:denylist:"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, req dto.LogoutRequest) error
	Session(ctx context.Context, accessToken string) (dto.SessionResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
	CreateAdminUser(ctx context.Context, req dto.CreateAdminUserRequest) (dto.SessionResponse, error)
	IsDenylisted(ctx context.Context, tokenID string) bool
}

type serviceImpl struct {
	profileRepo profileRepo.Profile
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	jwtService  jwt.JWT
	audit       auditService.Audit
}

func New(
	profileRepo profileRepo.Profile,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	jwtService jwt.JWT,
	audit auditService.Audit,
) Auth {
	return &serviceImpl{
		profileRepo: profileRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		jwtService:  jwtService,
		audit:       audit,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    profileModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    profileModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.profileRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if profile exists")

		return fmt.Errorf("failed to check if profile exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.profileRepo.Insert(ctx, req.ToProfileModel(constant.ContextGuest, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create profile")

		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.profileRepo.Get(ctx, emailFilter(req.Email))
	if err != nil || profile.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, profile.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if !profile.Active {
		return res, failure.BadRequestFromString("account is deactivated") // nolint:wrapcheck
	}

	role := constant.RoleUser
	if profile.IsAdmin {
		role = constant.RoleAdmin
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(profile.ID, profile.Email, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, profile.IsAdmin)

	return res, nil
}

// RefreshToken rotates the pair. The presented refresh token is denylisted
// so it cannot be replayed.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh attempt with invalid token")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	if s.IsDenylisted(ctx, claims.TokenID) {
		log.Warn().Str("user_id", claims.UserID).Msg("refresh attempt with revoked token")

		return res, failure.Unauthorized("refresh token has been revoked") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	s.denylist(ctx, claims.TokenID, claims.ExpiresAt.Time)

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Logout denylists both token IDs until their natural expiry. Tokens that
// no longer validate are already unusable and are skipped silently.
func (s *serviceImpl) Logout(ctx context.Context, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if claims, err := s.jwtService.ValidateToken(req.AccessToken, jwt.AccessToken); err == nil {
		s.denylist(ctx, claims.TokenID, claims.ExpiresAt.Time)
	}

	if claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken); err == nil {
		s.denylist(ctx, claims.TokenID, claims.ExpiresAt.Time)
	}

	return nil
}

func (s *serviceImpl) denylist(ctx context.Context, tokenID string, expiresAt time.Time) {
	ttl := int(time.Until(expiresAt).Seconds())
	if ttl <= 0 {
		return
	}

	if err := s.cache.Save(ctx, denylistPrefix+tokenID, true, ttl); err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to denylist token")
	}
}

func (s *serviceImpl) IsDenylisted(ctx context.Context, tokenID string) bool {
	var revoked bool

	err := s.cache.Get(ctx, denylistPrefix+tokenID, &revoked)

	return err == nil && revoked
}

func (s *serviceImpl) Session(ctx context.Context, accessToken string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Session")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(accessToken, jwt.AccessToken)
	if err != nil {
		return res, failure.Unauthorized("invalid access token") // nolint:wrapcheck
	}

	if s.IsDenylisted(ctx, claims.TokenID) {
		return res, failure.Unauthorized("access token has been revoked") // nolint:wrapcheck
	}

	profile, err := s.profileRepo.Get(ctx, shared.FilterByID(claims.UserID, profileModel.FieldID, profileModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile for session")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.Unauthorized("profile no longer exists") // nolint:wrapcheck
	}

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, profileModel.FieldID, profileModel.TableName)

	profile, err := s.profileRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return failure.NotFound("profile not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, profile.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.profileRepo.Update(ctx, shared.TransformFields(updatePassword, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// CreateAdminUser runs three dependent steps: insert the profile, flip the
// admin flag, then audit. It aborts on the first failure and does not roll
// back the steps already done.
func (s *serviceImpl) CreateAdminUser(ctx context.Context, req dto.CreateAdminUserRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAdminUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.profileRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if profile exists")

		return res, fmt.Errorf("failed to check if profile exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := req.ToProfileModel(user, hashedPassword)

	if err = s.profileRepo.Insert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to insert admin profile")

		return res, fmt.Errorf("failed to insert admin profile: %w", err)
	}

	promote := dto.PromoteAdminRequest{IsAdmin: true}
	filter := shared.FilterByID(profile.ID, profileModel.FieldID, profileModel.TableName)

	if err = s.profileRepo.Update(ctx, shared.TransformFields(promote, user), filter); err != nil {
		log.Error().Err(err).Str("profile_id", profile.ID).Msg("failed to promote profile to admin")

		return res, fmt.Errorf("failed to promote profile to admin: %w", err)
	}

	s.audit.Log(ctx, auditDto.LogRequest{
		ActionType: auditModel.ActionCreate,
		TableName:  profileModel.TableName,
		RecordID:   profile.ID,
		Details:    fmt.Sprintf("admin user %s created at %s", req.Email, timezone.Format(timezone.Now(), constant.DateFormat)),
	})

	profile.IsAdmin = true
	res.FromModel(profile)

	return res, nil
}
