package dto

import (
	"classbook/internal/domains/user/model"
	"classbook/shared"
	gDto "classbook/shared/dto"
)

type UpdateProfileRequest struct {
	Name       string `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Email      string `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	Department string `db:"department" json:"department" validate:"omitempty,max=100"`
	Password   string `json:"password"                   validate:"omitempty,min=6,max=72"`
}

type UpdateUserRequest struct {
	Name       string `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Email      string `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	Role       string `db:"role"       json:"role"       validate:"omitempty,oneof=admin user"`
	Department string `db:"department" json:"department" validate:"omitempty,max=100"`
	Password   string `json:"password"                   validate:"omitempty,min=6,max=72"`
}

type UserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.Department = model.Department
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
