package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atlas/config"
	"atlas/infras/jwt"
	jwtMocks "atlas/infras/jwt/mocks"
	"atlas/infras/otel/mocks"
	auditMocks "atlas/internal/domains/audit/service/mocks"
	"atlas/internal/domains/auth/model/dto"
	"atlas/internal/domains/auth/service"
	profileMocks "atlas/internal/domains/profile/mocks"
	profileModel "atlas/internal/domains/profile/model"
	cacheMocks "atlas/shared/cache/mocks"
	"atlas/shared/constant"
	"atlas/shared/failure"
	"atlas/shared/password"
)

type authMockSet struct {
	profileRepo *profileMocks.MockProfile
	cache       *cacheMocks.MockRedisCache
	jwt         *jwtMocks.MockJWT
	audit       *auditMocks.MockAudit
}

func newAuthService(t *testing.T) (service.Auth, authMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := authMockSet{
		profileRepo: profileMocks.NewMockProfile(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		jwt:         jwtMocks.NewMockJWT(ctrl),
		audit:       auditMocks.NewMockAudit(ctrl),
	}

	cfg := &config.Config{}
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 10080

	svc := service.New(set.profileRepo, cfg, set.cache, mocks.NewOtel(), set.jwt, set.audit)

	return svc, set
}

func storedProfile(t *testing.T, plainPassword string, isAdmin bool) profileModel.Profile {
	t.Helper()

	hashed, err := password.Hash(plainPassword)
	assert.NoError(t, err)

	return profileModel.Profile{
		ID:        "profile-id",
		Email:     "user@example.com",
		Password:  hashed,
		FirstName: "Jane",
		IsAdmin:   isAdmin,
		Active:    true,
	}
}

func claimsWithID(tokenID string, tokenType jwt.TokenType) *jwt.Claims {
	return &jwt.Claims{
		UserID:  "profile-id",
		Email:   "user@example.com",
		TokenID: tokenID,
		Type:    tokenType,
		RegisteredClaims: jwtLib.RegisteredClaims{
			ExpiresAt: jwtLib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("wrong password never issues tokens", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.profileRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedProfile(t, "correct-password", false), nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "user@example.com",
			Password: "wrong-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.profileRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(profileModel.Profile{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("admin profile gets the admin role claim", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.profileRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedProfile(t, "correct-password", true), nil)

		set.jwt.EXPECT().
			GenerateTokenPair("profile-id", "user@example.com", constant.RoleAdmin).
			Return(&jwt.TokenPair{
				AccessToken:  "access",
				RefreshToken: "refresh",
				TokenType:    "Bearer",
				ExpiresIn:    900,
			}, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "user@example.com",
			Password: "correct-password",
		})

		assert.NoError(t, err)
		assert.True(t, res.IsAdmin)
		assert.Equal(t, "access", res.AccessToken)
	})

	t.Run("regular profile gets the user role claim", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.profileRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedProfile(t, "correct-password", false), nil)

		set.jwt.EXPECT().
			GenerateTokenPair("profile-id", "user@example.com", constant.RoleUser).
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "user@example.com",
			Password: "correct-password",
		})

		assert.NoError(t, err)
		assert.False(t, res.IsAdmin)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("revoked refresh token is rejected", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.jwt.EXPECT().
			ValidateToken("refresh-token", jwt.RefreshToken).
			Return(claimsWithID("token-id", jwt.RefreshToken), nil)

		set.cache.EXPECT().
			Get(gomock.Any(), "auth:denylist:token-id", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*bool) = true

				return nil
			})

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("rotation denylists the old refresh token", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.jwt.EXPECT().
			ValidateToken("refresh-token", jwt.RefreshToken).
			Return(claimsWithID("old-token-id", jwt.RefreshToken), nil)

		set.cache.EXPECT().
			Get(gomock.Any(), "auth:denylist:old-token-id", gomock.Any()).
			Return(errors.New("redis: nil"))

		set.jwt.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		set.cache.EXPECT().
			Save(gomock.Any(), "auth:denylist:old-token-id", true, gomock.Any()).
			Return(nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("denylists both tokens", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.jwt.EXPECT().
			ValidateToken("access-token", jwt.AccessToken).
			Return(claimsWithID("access-id", jwt.AccessToken), nil)

		set.jwt.EXPECT().
			ValidateToken("refresh-token", jwt.RefreshToken).
			Return(claimsWithID("refresh-id", jwt.RefreshToken), nil)

		set.cache.EXPECT().
			Save(gomock.Any(), "auth:denylist:access-id", true, gomock.Any()).
			Return(nil)

		set.cache.EXPECT().
			Save(gomock.Any(), "auth:denylist:refresh-id", true, gomock.Any()).
			Return(nil)

		err := svc.Logout(context.Background(), dto.LogoutRequest{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		})

		assert.NoError(t, err)
	})

	t.Run("expired tokens are skipped silently", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.jwt.EXPECT().
			ValidateToken(gomock.Any(), gomock.Any()).
			Return(nil, jwt.ErrExpiredToken).
			Times(2)

		err := svc.Logout(context.Background(), dto.LogoutRequest{
			AccessToken:  "stale-access",
			RefreshToken: "stale-refresh",
		})

		assert.NoError(t, err)
	})
}

func TestAuthService_Session(t *testing.T) {
	t.Run("valid token resolves the profile", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.jwt.EXPECT().
			ValidateToken("access-token", jwt.AccessToken).
			Return(claimsWithID("token-id", jwt.AccessToken), nil)

		set.cache.EXPECT().
			Get(gomock.Any(), "auth:denylist:token-id", gomock.Any()).
			Return(errors.New("redis: nil"))

		set.profileRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedProfile(t, "irrelevant", true), nil)

		res, err := svc.Session(context.Background(), "access-token")

		assert.NoError(t, err)
		assert.Equal(t, "profile-id", res.ID)
		assert.True(t, res.IsAdmin)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.jwt.EXPECT().
			ValidateToken("access-token", jwt.AccessToken).
			Return(claimsWithID("token-id", jwt.AccessToken), nil)

		set.cache.EXPECT().
			Get(gomock.Any(), "auth:denylist:token-id", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*bool) = true

				return nil
			})

		_, err := svc.Session(context.Background(), "access-token")

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_CreateAdminUser(t *testing.T) {
	req := dto.CreateAdminUserRequest{
		Email:     "admin@example.com",
		Password:  "super-secret",
		FirstName: "Ada",
	}

	t.Run("runs insert, promote and audit in order", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.profileRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		set.profileRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, profile profileModel.Profile) error {
				assert.Equal(t, "admin@example.com", profile.Email)
				assert.False(t, profile.IsAdmin)

				return nil
			})

		set.profileRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, true, fields[profileModel.FieldIsAdmin])

				return nil
			})

		set.audit.EXPECT().
			Log(gomock.Any(), gomock.Any())

		res, err := svc.CreateAdminUser(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, res.IsAdmin)
		assert.Equal(t, "admin@example.com", res.Email)
	})

	t.Run("aborts when promotion fails, without undoing the insert", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.profileRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		set.profileRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		set.profileRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.CreateAdminUser(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.profileRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.CreateAdminUser(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}
