package dto

import (
	"github.com/google/uuid"

	"hotel/internal/domains/guest/model"
	"hotel/shared"
	"hotel/shared/constant"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

type CreateGuestRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=150"`
	LastName  string  `json:"last_name"  validate:"omitempty,max=150"`
	Username  string  `json:"username"   validate:"omitempty,max=150"`
	Email     string  `json:"email"      validate:"required,email,max=255"`
	Phone     *string `json:"phone"      validate:"omitempty,max=20"`
	IsStaff   bool    `json:"is_staff"   validate:"omitempty"`
}

// ToModel fills the username from "first last" when the caller left it empty.
func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	guest := model.Guest{
		ID:         uuid.NewString(),
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Username:   c.Username,
		Email:      c.Email,
		Phone:      c.Phone,
		IsStaff:    c.IsStaff,
		DateJoined: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if guest.Username == constant.Empty {
		guest.Username = guest.FullName()
	}

	return guest
}

type GuestResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	DateJoined string  `json:"date_joined"`
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.FirstName = model.FirstName
	g.LastName = model.LastName
	g.Username = model.Username
	g.Email = model.Email
	g.Phone = model.Phone
	g.DateJoined = model.DateJoined.Format(constant.DateFormat)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		g.Guests[i].FromModel(mod)
	}
}
