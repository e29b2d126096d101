package dto

import (
	"classbook/infras/jwt"
	"classbook/shared/constant"
	gModel "classbook/shared/model"
	"classbook/shared/timezone"

	userDto "classbook/internal/domains/user/model/dto"
	userModel "classbook/internal/domains/user/model"
)

type RegisterRequest struct {
	Name       string `json:"name"       validate:"required,max=100"`
	Email      string `json:"email"      validate:"required,email,max=100"`
	Password   string `json:"password"   validate:"required,min=8"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

func (r *RegisterRequest) ToUserModel(username string, hashedPassword string) userModel.User {
	return userModel.User{
		Name:       r.Name,
		Email:      r.Email,
		Password:   hashedPassword,
		Role:       constant.RoleUser,
		Department: r.Department,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

// LoginRequest accepts either a numeric user id or an email address as the
// identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=100"`
	Password   string `json:"password"   validate:"required"`
}

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresIn   int64                `json:"expires_in"`
	User        userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromToken(token *jwt.Token, user userModel.User) {
	l.AccessToken = token.AccessToken
	l.TokenType = token.TokenType
	l.ExpiresIn = token.ExpiresIn
	l.User.FromModel(user)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
