package dto

import "github.com/BruksfildServices01/stay-listings/internal/models"

// UserDTO is the public wire shape of a user. The credential hash never
// leaves the service.
type UserDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func FromUser(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func FromUsers(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}
