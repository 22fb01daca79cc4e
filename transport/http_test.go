package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/restock/constant"
	authmocks "github.com/muhammadheryan/restock/mocks/application/auth"
	reordermocks "github.com/muhammadheryan/restock/mocks/application/reorder"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/transport"
	cerr "github.com/muhammadheryan/restock/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "internal-key"

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestTransport(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		mockCall   func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp)
		wantStatus int
		wantCode   string
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "error: missing bearer token",
			method:     http.MethodGet,
			target:     "/v1/reorder/suggestions",
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:   "error: rejected token",
			method: http.MethodGet,
			target: "/v1/reorder/suggestions",
			token:  "Bearer bad",
			mockCall: func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp) {
				authApp.On("ValidateToken", mock.Anything, "bad").Return(uint64(0), errors.New("invalid token")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:   "success: suggestions scoped to token tenant",
			method: http.MethodGet,
			target: "/v1/reorder/suggestions?analysis_days=14&model=holt",
			token:  "Bearer good",
			mockCall: func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp) {
				authApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
				app.On("GetSuggestions", mock.Anything, uint64(7), &model.ReorderRequest{AnalysisDays: 14, Model: "holt"}).
					Return(&model.ReorderResponse{
						Suggestions: []model.ReorderSuggestion{{ItemID: 3, Priority: constant.PriorityCritical}},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var res model.ReorderResponse
				require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
				require.Len(t, res.Suggestions, 1)
				assert.Equal(t, uint64(3), res.Suggestions[0].ItemID)
				assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			},
		},
		{
			name:   "error: analysis days not a number",
			method: http.MethodGet,
			target: "/v1/reorder/suggestions?analysis_days=abc",
			token:  "Bearer good",
			mockCall: func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp) {
				authApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidAnalysisDays],
		},
		{
			name:   "error: analysis days zero",
			method: http.MethodGet,
			target: "/v1/reorder/suggestions?analysis_days=0",
			token:  "Bearer good",
			mockCall: func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp) {
				authApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidAnalysisDays],
		},
		{
			name:   "error: app rejects model",
			method: http.MethodGet,
			target: "/v1/reorder/suggestions?model=arima",
			token:  "Bearer good",
			mockCall: func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp) {
				authApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
				app.On("GetSuggestions", mock.Anything, uint64(7), &model.ReorderRequest{Model: "arima"}).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidModel)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidModel],
		},
		{
			name:   "error: raw error becomes internal",
			method: http.MethodGet,
			target: "/v1/reorder/suggestions",
			token:  "Bearer good",
			mockCall: func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp) {
				authApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
				app.On("GetSuggestions", mock.Anything, uint64(7), &model.ReorderRequest{}).
					Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   constant.ErrorTypeCode[constant.ErrInternal],
		},
		{
			name:   "success: export",
			method: http.MethodGet,
			target: "/v1/reorder/suggestions/export?model=wma",
			token:  "Bearer good",
			mockCall: func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp) {
				authApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
				app.On("ExportSuggestions", mock.Anything, uint64(7), &model.ReorderRequest{Model: "wma"}).
					Return([]byte("PK-workbook"), nil).Once()
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
				assert.Equal(t, "PK-workbook", rec.Body.String())
			},
		},
		{
			name:       "error: internal route without key",
			method:     http.MethodPost,
			target:     "/internal/v1/reorder/42/invalidate",
			token:      "Bearer wrong",
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:       "error: internal route with bad tenant",
			method:     http.MethodPost,
			target:     "/internal/v1/reorder/abc/invalidate",
			token:      "Bearer " + internalKey,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:   "success: internal invalidate",
			method: http.MethodPost,
			target: "/internal/v1/reorder/42/invalidate",
			token:  "Bearer " + internalKey,
			mockCall: func(app *reordermocks.ReorderApp, authApp *authmocks.AuthApp) {
				app.On("InvalidateCache", mock.Anything, uint64(42)).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := reordermocks.NewReorderApp(t)
			authApp := authmocks.NewAuthApp(t)
			if tt.mockCall != nil {
				tt.mockCall(app, authApp)
			}
			handler := transport.NewTransport(app, authApp, internalKey)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, rec).Code)
			}
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}
