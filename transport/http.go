package transport

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/restock/application/auth"
	"github.com/muhammadheryan/restock/application/reorder"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	utilsContext "github.com/muhammadheryan/restock/utils/context"
	"github.com/muhammadheryan/restock/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RestHandler struct {
	ReorderApp reorder.ReorderApp
}

func NewTransport(ReorderApp reorder.ReorderApp, AuthApp auth.AuthApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ReorderApp: ReorderApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// protected routes
	mux.HandleFunc("/v1/reorder/suggestions", rh.GetSuggestions).Methods(http.MethodGet)
	mux.HandleFunc("/v1/reorder/suggestions/export", rh.ExportSuggestions).Methods(http.MethodGet)

	// internal routes
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/reorder/{tenantID}/invalidate", rh.InvalidateCache).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}

// GetSuggestions handler
// @Summary Reorder suggestions
// @Description Ranked reorder suggestions and delivery risk notices for the caller's tenant
// @Tags Reorder
// @Produce json
// @Security BearerAuth
// @Param analysis_days query int false "Usage window in days (1-365, default 30)"
// @Param model query string false "Forecast model" Enums(SMA, WMA, LINEAR, HOLT, NEURAL)
// @Success 200 {object} model.ReorderResponse
// @Failure 400 {object} errors.CustomError
// @Failure 401 {object} errors.CustomError
// @Router /v1/reorder/suggestions [get]
func (s *RestHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := utilsContext.GetTenantID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	req, err := parseReorderRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReorderApp.GetSuggestions(ctx, tenantID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExportSuggestions handler
// @Summary Export reorder suggestions
// @Description Same result as /v1/reorder/suggestions rendered as an xlsx workbook
// @Tags Reorder
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param analysis_days query int false "Usage window in days (1-365, default 30)"
// @Param model query string false "Forecast model" Enums(SMA, WMA, LINEAR, HOLT, NEURAL)
// @Success 200 {file} file
// @Failure 400 {object} errors.CustomError
// @Failure 401 {object} errors.CustomError
// @Router /v1/reorder/suggestions/export [get]
func (s *RestHandler) ExportSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := utilsContext.GetTenantID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	req, err := parseReorderRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := s.ReorderApp.ExportSuggestions(ctx, tenantID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("reorder-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// InvalidateCache handler
// @Summary Invalidate cached suggestions
// @Description Drops every cached suggestion set of a tenant. Called by the stock movement consumer.
// @Tags Internal
// @Produce json
// @Param tenantID path int true "Tenant ID"
// @Success 200 {object} map[string]uint64
// @Failure 400 {object} errors.CustomError
// @Failure 401 {object} errors.CustomError
// @Router /internal/v1/reorder/{tenantID}/invalidate [post]
func (s *RestHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, err := strconv.ParseUint(mux.Vars(r)["tenantID"], 10, 64)
	if err != nil || tenantID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ReorderApp.InvalidateCache(ctx, tenantID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]uint64{"tenant_id": tenantID})
}

func parseReorderRequest(r *http.Request) (*model.ReorderRequest, error) {
	q := r.URL.Query()
	req := &model.ReorderRequest{Model: q.Get("model")}

	if raw := q.Get("analysis_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidAnalysisDays)
		}
		if days < 1 {
			// 0 would otherwise be read as "use the default"
			return nil, errors.SetCustomError(constant.ErrInvalidAnalysisDays)
		}
		req.AnalysisDays = days
	}

	return req, nil
}
