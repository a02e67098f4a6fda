package update_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	updateReservation "github.com/Elmamis69/jmares-reservas/internal/usecase/update_reservation"
)

type fakeUseCase struct {
	gotReq *updateReservation.Request
	resp   *updateReservation.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateReservation.Request) (*updateReservation.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, useCase *fakeUseCase, id string, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/reservations/{id}", handler.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/reservations/"+id, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Error
}

func TestHandle_Success(t *testing.T) {
	id := uuid.New()
	useCase := &fakeUseCase{
		resp: &updateReservation.Response{
			ID:        id,
			ClientID:  uuid.New(),
			EventDate: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			Start:     time.Date(2025, 11, 20, 17, 0, 0, 0, time.UTC),
			End:       time.Date(2025, 11, 20, 22, 0, 0, 0, time.UTC),
			Status:    "CONFIRMED",
		},
	}

	recorder := doRequest(t, useCase, id.String(), `{"status":"CONFIRMED"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, "2025-11-20", resp.Date)
}

func TestHandle_InvalidID(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, "not-a-uuid", `{}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "invalid_body", errorCode(t, recorder))
}

func TestHandle_MalformedBody(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, uuid.New().String(), `{"status":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "invalid_body", errorCode(t, recorder))
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", updateReservation.ErrReservationNotFound, http.StatusNotFound, "not_found"},
		{"slot conflict", updateReservation.ErrSlotConflict, http.StatusConflict, "overlap"},
		{"invalid transition", updateReservation.ErrInvalidTransition, http.StatusBadRequest, "invalid_transition"},
		{"dangling reference", updateReservation.ErrReferenceNotFound, http.StatusBadRequest, "bad_client"},
		{"invalid interval", updateReservation.ErrInvalidInterval, http.StatusBadRequest, "invalid_body"},
		{"internal", updateReservation.ErrInternal, http.StatusInternalServerError, "server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, &fakeUseCase{err: tt.err}, uuid.New().String(), `{"status":"CANCELLED"}`)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, recorder))
		})
	}
}

// An explicit null must reach the use case as "clear", while an absent
// key must not touch the field at all.
func TestHandle_NullableFields(t *testing.T) {
	useCase := &fakeUseCase{resp: &updateReservation.Response{}}

	recorder := doRequest(t, useCase, uuid.New().String(), `{"notes":null,"total":100}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	req := useCase.gotReq
	require.NotNil(t, req)

	assert.True(t, req.Notes.Set)
	assert.False(t, req.Notes.Valid)

	assert.False(t, req.Attendees.Set)
	assert.False(t, req.PackageID.Set)

	require.NotNil(t, req.Total)
	assert.Equal(t, 100.0, *req.Total)
	assert.Nil(t, req.Status)
}

func TestHandle_ParsesIntervalBounds(t *testing.T) {
	useCase := &fakeUseCase{resp: &updateReservation.Response{}}

	recorder := doRequest(t, useCase, uuid.New().String(),
		`{"startTime":"2025-11-20T17:00:00Z","endTime":"2025-11-20T22:00:00Z"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	req := useCase.gotReq
	require.NotNil(t, req.Start)
	require.NotNil(t, req.End)
	assert.Equal(t, time.Date(2025, 11, 20, 17, 0, 0, 0, time.UTC), req.Start.UTC())
	assert.Equal(t, time.Date(2025, 11, 20, 22, 0, 0, 0, time.UTC), req.End.UTC())
}

func TestHandle_UnparsableTime(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, uuid.New().String(), `{"startTime":"17:00"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "invalid_body", errorCode(t, recorder))
}
