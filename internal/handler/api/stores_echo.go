package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"InsightFlow/internal/domain/models"
	domrepo "InsightFlow/internal/domain/repository"
	boardmetrics "InsightFlow/internal/service/metrics"
	"InsightFlow/internal/service/ratelimit"
	"InsightFlow/internal/usecase"
	xhttp "InsightFlow/pkg/http"
	xlogger "InsightFlow/pkg/logger"
	"InsightFlow/pkg/queue"
)

// analyzeRateCapacity bounds analysis bursts per client and domain; the
// upstream AI calls are slow and expensive.
const (
	analyzeRateCapacity = 5
	analyzeRefillPerSec = 0.5
)

// StoresEchoHandler exposes the dashboard stores over HTTP.
type StoresEchoHandler struct {
	logger   *xlogger.Logger
	registry *usecase.Registry
	audit    domrepo.SnapshotAudit
	limiter  *ratelimit.Limiter
	// optional; nil means refreshes run inline
	jobs queue.QueueService
}

func NewStoresEchoHandler(logger *xlogger.Logger, registry *usecase.Registry, audit domrepo.SnapshotAudit, limiter *ratelimit.Limiter) *StoresEchoHandler {
	boardmetrics.Register()
	return &StoresEchoHandler{logger: logger, registry: registry, audit: audit, limiter: limiter}
}

// SetJobQueue switches POST refreshes from inline to enqueued.
func (h *StoresEchoHandler) SetJobQueue(q queue.QueueService) { h.jobs = q }

func (h *StoresEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/system/refreshes", h.RecentRefreshes)
	g.GET("/country/:code", h.SelectCountry)
	g.POST("/analyze/:domain", h.Analyze)
	g.GET("/analyze/:domain", h.AnalysisProjection)
	g.GET("/:domain", h.Projection)
	g.POST("/:domain/refresh", h.Refresh)
}

func (h *StoresEchoHandler) store(c echo.Context) (usecase.DomainStore, error) {
	name := c.Param("domain")
	store, err := h.registry.Get(name)
	if err != nil {
		return nil, xhttp.NotFoundErrorf("unknown domain '%s'", name)
	}
	return store, nil
}

// Projection returns the current snapshot and lifecycle status of a store.
func (h *StoresEchoHandler) Projection(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, store.Projection())
}

// Refresh triggers a re-fetch. With a job queue wired the work happens
// on a worker; otherwise it runs inline and returns the new projection.
func (h *StoresEchoHandler) Refresh(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	if h.jobs != nil {
		payload := usecase.RefreshPayload{Domain: string(store.Domain()), RequestedBy: c.RealIP()}
		if err := h.jobs.PublishMessage(c.Request().Context(), "store.refresh", payload); err != nil {
			h.logger.Error("refresh enqueue error",
				xlogger.String("domain", string(store.Domain())),
				xlogger.Error(err),
			)
			return xhttp.AppErrorResponse(c, xhttp.InternalError("failed to enqueue refresh"))
		}
		return xhttp.DataResponse(c, 202, map[string]string{
			"domain": string(store.Domain()),
			"state":  "queued",
		})
	}

	source := store.Refresh(c.Request().Context())
	h.logger.Info("manual refresh",
		xlogger.String("domain", string(store.Domain())),
		xlogger.String("source", string(source)),
	)
	return xhttp.SuccessResponse(c, store.Projection())
}

// SelectCountry switches the country scanner and fetches the profile.
func (h *StoresEchoHandler) SelectCountry(c echo.Context) error {
	req := &models.CountryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	country := h.registry.Country()
	country.Select(c.Request().Context(), req.Code)
	return xhttp.SuccessResponse(c, country.Projection())
}

// Analyze runs a store's context through the daily cache gate and, on a
// miss, the upstream AI debate. Blocks until the result is ready; the
// GET projection shows the cycling persona meanwhile.
func (h *StoresEchoHandler) Analyze(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rateKey := c.RealIP() + ":" + string(store.Domain())
	if !h.limiter.Allow(rateKey, analyzeRateCapacity, analyzeRefillPerSec) {
		return xhttp.AppErrorResponse(c,
			xhttp.NewAppError("ERR_RATE_LIMITED", "", "too many analysis requests", 429))
	}

	var payload interface{} = req.Context
	if payload == nil {
		payload = store.Projection().Snapshot
	}

	started := time.Now()
	result, err := store.RequestAnalysis(c.Request().Context(), usecase.AnalysisRequest{
		Language: domrepo.NormalizeLanguage(req.Language),
		Extra:    req.Extra,
		Payload:  payload,
	})
	boardmetrics.BoardAnalyzeLatency.WithLabelValues(string(store.Domain())).Observe(time.Since(started).Seconds())
	if err != nil {
		boardmetrics.BoardAnalyzeErrors.WithLabelValues(string(store.Domain())).Inc()
		h.logger.Error("analysis error",
			xlogger.String("domain", string(store.Domain())),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, xhttp.InternalError("analysis failed"))
	}
	return xhttp.SuccessResponse(c, result)
}

// AnalysisProjection returns the analysis leg of a store's projection.
func (h *StoresEchoHandler) AnalysisProjection(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, store.Projection().Analysis)
}

type refreshRow struct {
	ID         string    `json:"id"`
	Domain     string    `json:"domain"`
	Source     string    `json:"source"`
	DurationMS float64   `json:"duration_ms"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// RecentRefreshes serves the audit trail, newest first.
func (h *StoresEchoHandler) RecentRefreshes(c echo.Context) error {
	req := &models.RefreshLogRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	records, err := h.audit.Recent(c.Request().Context(), req.Limit)
	if err != nil {
		h.logger.Error("refresh audit query error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("failed to read refresh log"))
	}

	rows := make([]refreshRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, refreshRow{
			ID:         r.ID,
			Domain:     string(r.Domain),
			Source:     string(r.Source),
			DurationMS: float64(r.Duration.Microseconds()) / 1000.0,
			FetchedAt:  r.FetchedAt,
		})
	}
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}
