package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/dto"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestOverviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Overview returned",
			prepareMock: func() {
				service.EXPECT().Overview(gomock.Any()).Return(
					[]domain.Treatment{{ID: 3, Name: "Root canal", Price: 300, PatientID: 1, Payments: []domain.Payment{}}},
					[]domain.Payment{{ID: 5, Paid: 100, TreatmentID: 3}},
					nil,
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Database error",
			prepareMock: func() {
				service.EXPECT().Overview(gomock.Any()).Return(nil, nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
			rec := httptest.NewRecorder()

			handler.Overview(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.ReportOverviewResponseDTO
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Len(t, resp.Treatments, 1)
				assert.Len(t, resp.Payments, 1)
			}
		})
	}
}
