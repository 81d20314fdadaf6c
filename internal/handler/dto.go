package handler

import "github.com/msomdec/authd/internal/domain"

// AuthResponseDTO is the JSON shape returned by register and login.
type AuthResponseDTO struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func toAuthResponseDTO(u *domain.User, token string) AuthResponseDTO {
	return AuthResponseDTO{
		Token:  token,
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

// ProfileDTO is the JSON shape of a user's public profile. The password
// hash never appears here.
type ProfileDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

func toProfileDTO(u *domain.User) ProfileDTO {
	return ProfileDTO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Active: u.Active,
	}
}
