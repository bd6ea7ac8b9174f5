package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	bookingsService "github.com/m04kA/SMC-LessonService/internal/service/bookings"
)

// Mock структуры

type MockBookingsService struct {
	mock.Mock
}

func (m *MockBookingsService) Cancel(ctx context.Context, id int64, principal domain.Principal) error {
	args := m.Called(ctx, id, principal)
	return args.Error(0)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(handler *Handler, bookingID string, principal *domain.Principal) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", nil)
	if principal != nil {
		req = req.WithContext(middleware.ContextWithPrincipal(req.Context(), *principal))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func studentPrincipal() *domain.Principal {
	return &domain.Principal{UserID: 10, Role: domain.RoleUser, IsActive: true}
}

func TestHandler_Handle_NoContent(t *testing.T) {
	service := &MockBookingsService{}
	handler := NewHandler(service, noopLogger{})

	service.On("Cancel", mock.Anything, int64(42), *studentPrincipal()).Return(nil).Once()

	w := doRequest(handler, "42", studentPrincipal())

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	service.AssertExpectations(t)
}

func TestHandler_Handle_InvalidID(t *testing.T) {
	service := &MockBookingsService{}
	handler := NewHandler(service, noopLogger{})

	w := doRequest(handler, "abc", studentPrincipal())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(handler, "-1", studentPrincipal())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.AssertNotCalled(t, "Cancel")
}

func TestHandler_Handle_NoPrincipal(t *testing.T) {
	service := &MockBookingsService{}
	handler := NewHandler(service, noopLogger{})

	w := doRequest(handler, "42", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "Cancel")
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Not found", err: bookingsService.ErrBookingNotFound, expectedCode: http.StatusNotFound},
		{name: "Access denied", err: bookingsService.ErrAccessDenied, expectedCode: http.StatusForbidden},
		{name: "Already cancelled", err: bookingsService.ErrAlreadyCancelled, expectedCode: http.StatusConflict},
		{name: "Internal", err: bookingsService.ErrInternal, expectedCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := &MockBookingsService{}
			handler := NewHandler(service, noopLogger{})

			service.On("Cancel", mock.Anything, int64(42), mock.Anything).Return(tc.err).Once()

			w := doRequest(handler, "42", studentPrincipal())
			assert.Equal(t, tc.expectedCode, w.Code)
		})
	}
}
