package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	createReservation "github.com/Elmamis69/jmares-reservas/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	gotReq *createReservation.Request
	resp   *createReservation.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
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

func doRequest(t *testing.T, useCase *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)
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

func TestHandle_Created(t *testing.T) {
	clientID := uuid.New()
	useCase := &fakeUseCase{
		resp: &createReservation.Response{
			ID:        uuid.New(),
			ClientID:  clientID,
			EventDate: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			Start:     time.Date(2025, 11, 20, 17, 0, 0, 0, time.UTC),
			End:       time.Date(2025, 11, 20, 22, 0, 0, 0, time.UTC),
			Status:    domain.StatusHeld,
		},
	}

	recorder := doRequest(t, useCase, `{
		"clientId": "`+clientID.String()+`",
		"date": "2025-11-20",
		"startTime": "2025-11-20T17:00:00Z",
		"endTime": "2025-11-20T22:00:00Z",
		"services": [{"serviceId": "`+uuid.New().String()+`", "quantity": 2}],
		"payments": [{"amount": 5000, "method": "TRANSFER", "reference": "DEP-0001"}]
	}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, clientID, resp.ClientID)
	assert.Equal(t, string(domain.StatusHeld), resp.Status)

	// Nested inputs must survive the conversion to the use case model.
	req := useCase.gotReq
	require.Len(t, req.ServiceLines, 1)
	assert.Equal(t, 2, req.ServiceLines[0].Quantity)
	require.Len(t, req.Payments, 1)
	assert.Equal(t, domain.PaymentTransfer, req.Payments[0].Method)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"slot conflict", createReservation.ErrSlotConflict, http.StatusConflict, "overlap"},
		{"dangling reference", createReservation.ErrReferenceNotFound, http.StatusBadRequest, "bad_client"},
		{"invalid interval", createReservation.ErrInvalidInterval, http.StatusBadRequest, "invalid_body"},
		{"invalid input", createReservation.ErrInvalidInput, http.StatusBadRequest, "invalid_body"},
		{"internal", createReservation.ErrInternal, http.StatusInternalServerError, "server_error"},
	}

	body := `{
		"clientId": "` + uuid.New().String() + `",
		"date": "2025-11-20",
		"startTime": "2025-11-20T17:00:00Z",
		"endTime": "2025-11-20T22:00:00Z"
	}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, &fakeUseCase{err: tt.err}, body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, recorder))
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, `{"clientId":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "invalid_body", errorCode(t, recorder))
}

func TestHandle_BadDateFormat(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, `{
		"clientId": "`+uuid.New().String()+`",
		"date": "20/11/2025",
		"startTime": "2025-11-20T17:00:00Z",
		"endTime": "2025-11-20T22:00:00Z"
	}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "invalid_body", errorCode(t, recorder))
}
