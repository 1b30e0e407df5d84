package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	guestModel "hotel/internal/domains/guest/model"
	guestRepository "hotel/internal/domains/guest/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

type seedRoom struct {
	roomNumber string
	name       string
	roomType   string
	price      string
}

var seedRooms = []seedRoom{
	{"101", "Garden View", roomModel.RoomTypeStandardDouble, "80.00"},
	{"102", "Courtyard", roomModel.RoomTypeStandardTwin, "80.00"},
	{"201", "Sea View", roomModel.RoomTypeSuperiorDouble, "120.00"},
	{"202", "Hillside", roomModel.RoomTypeSuperiorTwin, "120.00"},
	{"301", "Panorama Suite", roomModel.RoomTypeJuniorSuiteDouble, "220.00"},
	{"302", "Horizon Suite", roomModel.RoomTypeJuniorSuiteTwin, "220.00"},
}

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()
	db := postgres.New(cfg)
	otl := otel.New(cfg)

	roomRepo := roomRepository.New(db, otl)
	guestRepo := guestRepository.New(db, otl)

	seedRoomCatalogue(ctx, roomRepo)
	seedStaffGuest(ctx, guestRepo)

	log.Info().Msg("Seeding completed")
}

func seedRoomCatalogue(ctx context.Context, repo roomRepository.Room) {
	for _, seed := range seedRooms {
		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    roomModel.FieldRoomNumber,
					Operator: gDto.FilterOperatorEq,
					Value:    seed.roomNumber,
					Table:    roomModel.TableName,
				},
			},
		}

		exists, err := repo.Exist(ctx, filter)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to check room existence")
		}

		if exists {
			log.Info().Str("roomNumber", seed.roomNumber).Msg("Room already seeded, skipping")

			continue
		}

		room := roomModel.Room{
			ID:            uuid.NewString(),
			RoomNumber:    seed.roomNumber,
			Name:          seed.name,
			RoomType:      seed.roomType,
			PricePerNight: decimal.RequireFromString(seed.price),
			IsAvailable:   true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  constant.SystemActor,
				ModifiedBy: constant.SystemActor,
			},
		}

		if err := repo.Insert(ctx, room); err != nil {
			log.Fatal().Err(err).Str("roomNumber", seed.roomNumber).Msg("Failed to seed room")
		}

		log.Info().Str("roomNumber", seed.roomNumber).Str("roomType", seed.roomType).Msg("Room seeded")
	}
}

func seedStaffGuest(ctx context.Context, repo guestRepository.Guest) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    guestModel.FieldIsStaff,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    guestModel.TableName,
			},
		},
	}

	exists, err := repo.Exist(ctx, filter)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check staff guest existence")
	}

	if exists {
		log.Info().Msg("Staff guest already seeded, skipping")

		return
	}

	staff := guestModel.Guest{
		ID:         uuid.NewString(),
		FirstName:  "Front",
		LastName:   "Desk",
		Username:   "frontdesk",
		Email:      "frontdesk@example.com",
		IsStaff:    true,
		DateJoined: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}

	if err := repo.Insert(ctx, staff); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed staff guest")
	}

	log.Info().Msg("Staff guest seeded")
}
