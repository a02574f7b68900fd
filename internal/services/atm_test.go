package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/smartbank/smartbank/internal/models"
	"github.com/smartbank/smartbank/internal/services"
)

func TestATMService_FindByPincode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	atms := []models.ATMDB{
		{ID: 1, Name: "SmartBank ATM - Shirpur Main Branch", Pincode: "425405"},
		{ID: 2, Name: "SmartBank ATM - College Road", Pincode: "425405"},
	}

	tests := []struct {
		name      string
		pincode   string
		lookup    string
		atms      []models.ATMDB
		readerErr error
		wantErr   error
	}{
		{
			name:    "matching pincode",
			pincode: "425405",
			lookup:  "425405",
			atms:    atms,
		},
		{
			name:    "pincode is trimmed",
			pincode: "  425405  ",
			lookup:  "425405",
			atms:    atms,
		},
		{
			name:    "no matches yields empty slice",
			pincode: "000000",
			lookup:  "000000",
			atms:    []models.ATMDB{},
		},
		{
			name:    "empty pincode",
			pincode: "",
			wantErr: services.ErrPincodeRequired,
		},
		{
			name:    "blank pincode",
			pincode: "   ",
			wantErr: services.ErrPincodeRequired,
		},
		{
			name:      "reader error",
			pincode:   "425405",
			lookup:    "425405",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockATMReader(ctrl)
			svc := services.NewATMService(mockReader)

			if tt.lookup != "" {
				mockReader.EXPECT().FindByPincode(gomock.Any(), tt.lookup).Return(tt.atms, tt.readerErr)
			}

			got, err := svc.FindByPincode(context.Background(), tt.pincode)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.atms, got)
		})
	}
}
