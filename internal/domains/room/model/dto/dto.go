package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

type RoomResponse struct {
	ID            string `json:"id"`
	RoomNumber    string `json:"room_number"`
	Name          string `json:"name"`
	RoomType      string `json:"room_type"`
	Description   string `json:"description"`
	PricePerNight string `json:"price_per_night"`
	Image         string `json:"image"`
	IsAvailable   bool   `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight.StringFixed(2)
	r.Image = model.Image
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
