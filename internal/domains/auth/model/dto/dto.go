package dto

import (
	"github.com/google/uuid"

	"atlas/infras/jwt"
	profileModel "atlas/internal/domains/profile/model"
	gModel "atlas/shared/model"
	"atlas/shared/timezone"
)

type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email,max=200"`
	Password  string `json:"password"   validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
}

func (r *RegisterRequest) ToProfileModel(username, hashedPassword string) profileModel.Profile {
	return profileModel.Profile{
		ID:        uuid.NewString(),
		Email:     r.Email,
		Password:  hashedPassword,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsAdmin:   false,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	IsAdmin      bool   `json:"is_admin"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, isAdmin bool) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
	l.IsAdmin = isAdmin
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type LogoutRequest struct {
	AccessToken  string `json:"access_token"  validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionResponse describes who the presented token belongs to.
type SessionResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

func (s *SessionResponse) FromModel(profile profileModel.Profile) {
	s.ID = profile.ID
	s.Email = profile.Email
	s.FirstName = profile.FirstName
	s.LastName = profile.LastName
	s.IsAdmin = profile.IsAdmin
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}

type CreateAdminUserRequest struct {
	Email     string `json:"email"      validate:"required,email,max=200"`
	Password  string `json:"password"   validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
}

func (r *CreateAdminUserRequest) ToProfileModel(username, hashedPassword string) profileModel.Profile {
	register := RegisterRequest{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}

	return register.ToProfileModel(username, hashedPassword)
}

type PromoteAdminRequest struct {
	IsAdmin bool `db:"is_admin" json:"is_admin"`
}
