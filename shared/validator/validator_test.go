package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"
)

type createGuestPayload struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantMsg string
	}{
		{
			name:    "valid payload",
			body:    `{"first_name":"Anna","last_name":"Smit","email":"anna@example.com"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"first_name":"Anna","email":"anna@example.com"}`,
			wantErr: true,
			wantMsg: "LastName is required",
		},
		{
			name:    "invalid email",
			body:    `{"first_name":"Anna","last_name":"Smit","email":"not-an-email"}`,
			wantErr: true,
			wantMsg: "Email must be a valid email address",
		},
		{
			name:    "malformed json",
			body:    `{"first_name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createGuestPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if !tt.wantErr {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected bad request code, got %d", failure.GetCode(err))
			}

			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("Standard Twin", "oneof='Standard Double' 'Standard Twin'"); err != nil {
		t.Errorf("expected valid value, got %v", err)
	}

	if err := validator.ValidateVar("Penthouse", "oneof='Standard Double' 'Standard Twin'"); err == nil {
		t.Error("expected error for value outside the set")
	}
}
