// Package api exposes the scan service over HTTP and websocket.
package api

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"rugcheck/internal/domain/models"
	domrepo "rugcheck/internal/domain/repository"
	"rugcheck/internal/repository"
	"rugcheck/internal/service/chains"
	"rugcheck/internal/usecase"
	xhttp "rugcheck/pkg/http"
	"rugcheck/pkg/logger"
	"rugcheck/pkg/queue"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// ScanHandler serves scan requests: synchronous, queued and streaming.
type ScanHandler struct {
	scanner *usecase.Scanner
	reports domrepo.ReportCache
	pub     domrepo.ReportPublisher
	queue   queue.QueueService
	log     *logger.Logger
}

func NewScanHandler(scanner *usecase.Scanner, reports domrepo.ReportCache, pub domrepo.ReportPublisher, q queue.QueueService, log *logger.Logger) *ScanHandler {
	return &ScanHandler{scanner: scanner, reports: reports, pub: pub, queue: q, log: log}
}

func (h *ScanHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/scan", h.Scan)
	g.GET("/scan/:chain/:address", h.GetReport)
	g.GET("/scan/:chain/:address/stream", h.StreamScan)
	g.GET("/chains", h.ListChains)
}

// Scan runs a scan and returns the report. With async=true the request is
// queued instead and the report becomes available via GET once finished.
func (h *ScanHandler) Scan(c echo.Context) error {
	var req models.ScanRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}
	req.Address = strings.ToLower(req.Address)

	if req.Async {
		if h.queue == nil {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError("async scans are disabled"))
		}
		if err := h.queue.PublishMessage(c.Request().Context(), usecase.ScanJobType, req); err != nil {
			h.log.Error("scan enqueue failed", logger.Error(err))
			return xhttp.InternalServerErrorResponse(c)
		}
		return xhttp.DataResponse(c, http.StatusAccepted, models.ScanAccepted{
			Chain:   req.Chain,
			Address: req.Address,
			Status:  "queued",
		})
	}

	report, err := h.scanner.Scan(c.Request().Context(), req.Chain, req.Address)
	if err != nil {
		return h.inputError(c, err)
	}

	ctx := c.Request().Context()
	if err := h.reports.Put(ctx, report); err != nil {
		h.log.Warn("report cache write failed", logger.Error(err))
	}
	if err := h.pub.Publish(ctx, report); err != nil {
		h.log.Warn("report publish failed", logger.Error(err))
	}

	return xhttp.SuccessResponse(c, report)
}

// GetReport returns a cached report without rescanning.
func (h *ScanHandler) GetReport(c echo.Context) error {
	chainID := c.Param("chain")
	address, err := chains.NormalizeAddress(c.Param("address"))
	if err != nil {
		return h.inputError(c, err)
	}
	if _, err := chains.Lookup(chainID); err != nil {
		return h.inputError(c, err)
	}

	report, err := h.reports.Get(c.Request().Context(), chainID, address)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("no report for %s:%s", chainID, address))
		}
		h.log.Error("report cache read failed", logger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, report)
}

// progressFrame is a per-probe websocket message emitted while a streamed
// scan is running. The final frame carries the whole report.
type progressFrame struct {
	Type    string             `json:"type"` // "probe" or "report"
	Probe   string             `json:"probe,omitempty"`
	Success bool               `json:"success,omitempty"`
	Report  *models.ScanReport `json:"report,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// StreamScan upgrades to a websocket, emits a frame as each probe finishes
// and closes with the full report.
func (h *ScanHandler) StreamScan(c echo.Context) error {
	chainID := c.Param("chain")
	address := c.Param("address")

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	// Frames come from concurrent probe goroutines; serialize the writes.
	var wsMu sync.Mutex
	writeFrame := func(f progressFrame) {
		wsMu.Lock()
		defer wsMu.Unlock()
		if err := ws.WriteJSON(f); err != nil {
			h.log.Debug("websocket write failed", logger.Error(err))
		}
	}

	report, err := h.scanner.ScanStream(c.Request().Context(), chainID, address, func(probe string, success bool) {
		writeFrame(progressFrame{Type: "probe", Probe: probe, Success: success})
	})
	if err != nil {
		writeFrame(progressFrame{Type: "report", Error: err.Error()})
		return nil
	}

	ctx := c.Request().Context()
	if err := h.reports.Put(ctx, report); err != nil {
		h.log.Warn("report cache write failed", logger.Error(err))
	}
	if err := h.pub.Publish(ctx, report); err != nil {
		h.log.Warn("report publish failed", logger.Error(err))
	}

	writeFrame(progressFrame{Type: "report", Report: report})
	return nil
}

// ListChains returns the supported chain profiles.
func (h *ScanHandler) ListChains(c echo.Context) error {
	all := chains.All()
	return xhttp.ListResponse(c, all, int64(len(all)))
}

func (h *ScanHandler) inputError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, chains.ErrUnknownChain):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("unsupported chain").WithError(err))
	case errors.Is(err, chains.ErrInvalidAddress):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("invalid token address").WithError(err))
	default:
		h.log.Error("scan failed", logger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
}
