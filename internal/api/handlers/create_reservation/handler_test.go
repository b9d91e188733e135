package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createReservation.Request) (*createReservation.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"resourceId": 1,
	"customerName": "Анна",
	"customerEmail": "anna@example.com",
	"partySize": 4,
	"startTime": "2026-03-14T10:00:00Z",
	"endTime": "2026-03-14T12:00:00Z"
}`

func doRequest(uc CreateReservationUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createReservation.Response{
			ID:            7,
			ResourceID:    1,
			CustomerName:  "Анна",
			CustomerEmail: "anna@example.com",
			PartySize:     4,
			StartTime:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
			Status:        "CONFIRMED",
			CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, "2026-03-14T10:00:00Z", resp.StartTime)
}

func TestHandle_ConflictCode(t *testing.T) {
	uc := &fakeUseCase{err: createReservation.ErrTimeConflict}

	rec := doRequest(uc, validBody)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, handlers.CodeConflict, body.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", createReservation.ErrInvalidInput, http.StatusBadRequest, handlers.CodeValidation},
		{"resource not found", createReservation.ErrResourceNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"capacity", createReservation.ErrCapacityExceeded, http.StatusBadRequest, handlers.CodeValidation},
		{"storage down", createReservation.ErrStorageUnavailable, http.StatusServiceUnavailable, handlers.CodeDependencyUnavailable},
		{"internal", createReservation.ErrInternal, http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeUseCase{err: tt.err}, validBody)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestHandle_BadTimeFormat(t *testing.T) {
	body := strings.Replace(validBody, "2026-03-14T10:00:00Z", "14.03.2026 10:00", 1)

	rec := doRequest(&fakeUseCase{}, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(&fakeUseCase{}, `{"resourceId": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
