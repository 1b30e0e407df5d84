package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/guest/model/dto"
)

func TestCreateGuestRequest_ToModel(t *testing.T) {
	phone := "+6281234567890"

	tests := []struct {
		name         string
		req          dto.CreateGuestRequest
		wantUsername string
	}{
		{
			name: "username derived from full name",
			req: dto.CreateGuestRequest{
				FirstName: "Putu",
				LastName:  "Wijaya",
				Email:     "putu@example.com",
				Phone:     &phone,
			},
			wantUsername: "Putu Wijaya",
		},
		{
			name: "username derived from first name only",
			req: dto.CreateGuestRequest{
				FirstName: "Putu",
				Email:     "putu@example.com",
			},
			wantUsername: "Putu",
		},
		{
			name: "explicit username kept",
			req: dto.CreateGuestRequest{
				FirstName: "Putu",
				LastName:  "Wijaya",
				Username:  "putuw",
				Email:     "putu@example.com",
			},
			wantUsername: "putuw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guest := tt.req.ToModel("test-actor")

			assert.NotEmpty(t, guest.ID)
			assert.Equal(t, tt.wantUsername, guest.Username)
			assert.Equal(t, tt.req.Email, guest.Email)
			assert.Equal(t, tt.req.Phone, guest.Phone)
			assert.False(t, guest.DateJoined.IsZero())
			assert.Equal(t, "test-actor", guest.CreatedBy)
		})
	}
}
