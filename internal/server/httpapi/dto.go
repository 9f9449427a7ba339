package httpapi

import (
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/dmitrijs2005/userlist/internal/wire"
)

func userToDTO(u models.User) wire.User {
	return wire.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Company:   wire.Company{Name: u.Company.Name, Title: u.Company.Title},
		Address:   wire.Address{Country: u.Address.Country},
	}
}

func usersToDTO(list []models.User) []wire.User {
	out := make([]wire.User, 0, len(list))
	for _, u := range list {
		out = append(out, userToDTO(u))
	}
	return out
}
