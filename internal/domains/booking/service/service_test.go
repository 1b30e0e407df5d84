package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/notifier"
	notifierMocks "hotel/internal/domains/booking/notifier/mocks"
	"hotel/internal/domains/booking/service"
	guestMocks "hotel/internal/domains/guest/mocks"
	guestModel "hotel/internal/domains/guest/model"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"
)

type bookingMockSet struct {
	repo      *bookingMocks.MockBooking
	guestRepo *guestMocks.MockGuest
	roomRepo  *roomMocks.MockRoom
	notifier  *notifierMocks.MockNotifier
	cache     *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	set := bookingMockSet{
		repo:      bookingMocks.NewMockBooking(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		notifier:  notifierMocks.NewMockNotifier(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(set.repo, set.guestRepo, set.roomRepo, set.notifier, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func guestFixture() guestModel.Guest {
	phone := "+6281234567890"

	return guestModel.Guest{
		ID:        "11111111-1111-4111-8111-111111111111",
		FirstName: "Putu",
		LastName:  "Wijaya",
		Username:  "Putu Wijaya",
		Email:     "putu@example.com",
		Phone:     &phone,
	}
}

func roomFixture() roomModel.Room {
	return roomModel.Room{
		ID:            "22222222-2222-4222-8222-222222222222",
		RoomNumber:    "101",
		Name:          "Sea View",
		RoomType:      roomModel.RoomTypeSuperiorDouble,
		PricePerNight: decimal.RequireFromString("100.00"),
		IsAvailable:   true,
	}
}

func createRequestFixture() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		UserID:          "11111111-1111-4111-8111-111111111111",
		RoomID:          "22222222-2222-4222-8222-222222222222",
		ReservationTime: "01/15/2026 02:00 PM - 01/16/2026 02:00 PM",
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful pipeline notifies before storing", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guestFixture(), nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomFixture(), nil)

		notify := set.notifier.EXPECT().
			NotifyNewReservation(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, res notifier.Reservation) {
				assert.Equal(t, "Putu Wijaya", res.GuestName)
				assert.Equal(t, "Sea View", res.RoomName)
			})

		gomock.InOrder(
			notify,
			set.repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, booking model.Booking) error {
					assert.Equal(t, "100.00", booking.TotalPrice.StringFixed(2))
					assert.NotNil(t, booking.GuestID)
					assert.NotNil(t, booking.RoomID)

					return nil
				}),
		)

		err := svc.Create(context.Background(), createRequestFixture())

		assert.NoError(t, err)
	})

	t.Run("malformed reservation time touches nothing", func(t *testing.T) {
		svc, _ := newBookingService(t)

		req := createRequestFixture()
		req.ReservationTime = "not a reservation span"

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown guest stops before room lookup", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{}, nil)

		err := svc.Create(context.Background(), createRequestFixture())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("unknown room stops before notification", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guestFixture(), nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		err := svc.Create(context.Background(), createRequestFixture())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("storage failure surfaces after notification", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guestFixture(), nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomFixture(), nil)

		set.notifier.EXPECT().
			NotifyNewReservation(gomock.Any(), gomock.Any())

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Create(context.Background(), createRequestFixture())

		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "booking-id")

		assert.NoError(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "booking-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_BookingPage(t *testing.T) {
	t.Run("lists guests and rooms with preselected room", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.guestRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]guestModel.Guest{guestFixture()}, nil)

		set.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{roomFixture()}, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomFixture(), nil)

		res, err := svc.BookingPage(context.Background(), roomFixture().ID)

		assert.NoError(t, err)
		assert.Len(t, res.Guests, 1)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, roomModel.RoomTypes, res.RoomTypes)
		if assert.NotNil(t, res.SelectedRoomID) {
			assert.Equal(t, roomFixture().ID, *res.SelectedRoomID)
		}
	})

	t.Run("unresolvable preselection is silently null", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.guestRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]guestModel.Guest{guestFixture()}, nil)

		set.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{roomFixture()}, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		res, err := svc.BookingPage(context.Background(), "unknown-room")

		assert.NoError(t, err)
		assert.Nil(t, res.SelectedRoomID)
	})

	t.Run("without room id no lookup happens", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.guestRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]guestModel.Guest{}, nil)

		set.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{}, nil)

		res, err := svc.BookingPage(context.Background(), "")

		assert.NoError(t, err)
		assert.Nil(t, res.SelectedRoomID)
	})
}
