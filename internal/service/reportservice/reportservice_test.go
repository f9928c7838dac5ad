package reportservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smdental/dentismo/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockTreatmentRepo, *MockPaymentRepo) {
	ctrl := gomock.NewController(t)
	treatmentRepo := NewMockTreatmentRepo(ctrl)
	paymentRepo := NewMockPaymentRepo(ctrl)
	service := New(treatmentRepo, paymentRepo)
	defer ctrl.Finish()
	return service, treatmentRepo, paymentRepo
}

func TestOverview(t *testing.T) {
	service, treatmentRepo, paymentRepo := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Both reads succeed",
			prepareMock: func() {
				treatmentRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Treatment{
					{ID: 3, Name: "Root canal", Price: 300, PatientID: 1, Payments: []domain.Payment{}},
				}, nil)
				paymentRepo.EXPECT().ListAllWithTreatment(gomock.Any()).Return([]domain.Payment{
					{ID: 5, Paid: 100, TreatmentID: 3},
				}, nil)
			},
			expectErr: false,
		},
		{
			name: "Treatment read fails",
			prepareMock: func() {
				treatmentRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("database error"))
				paymentRepo.EXPECT().ListAllWithTreatment(gomock.Any()).Return([]domain.Payment{}, nil).AnyTimes()
			},
			expectErr: true,
		},
		{
			name: "Payment read fails",
			prepareMock: func() {
				treatmentRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Treatment{}, nil).AnyTimes()
				paymentRepo.EXPECT().ListAllWithTreatment(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, treatmentRepo, paymentRepo = NewMock(t)
			tt.prepareMock()
			treatments, payments, err := service.Overview(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, treatments)
				assert.Nil(t, payments)
			} else {
				assert.NoError(t, err)
				assert.Len(t, treatments, 1)
				assert.Len(t, payments, 1)
			}
		})
	}
}
