// Package http exposes the fulfillment commands and queries as a JSON API
// for the warehouse console.
package http

import (
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"

	"github.com/labstack/echo/v4"
)

// scanFeed receives every scan verdict for live broadcast to consoles.
type scanFeed interface {
	BroadcastScan(result session.ScanResult)
}

// Server wires HTTP requests to the application use cases.
type Server struct {
	assignCarrierHandler     commands.AssignCarrierCommandHandler
	printLabelHandler        commands.PrintLabelCommandHandler
	startPreparationHandler  commands.StartPreparationCommandHandler
	recordScanHandler        commands.RecordScanCommandHandler
	updateSessionInfoHandler commands.UpdateSessionInfoCommandHandler
	savePreparationHandler   commands.SavePreparationCommandHandler
	discardHandler           commands.DiscardPreparationCommandHandler
	shipOrderHandler         commands.ShipOrderCommandHandler
	returnOrderHandler       commands.ReturnOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	retryOrderHandler        commands.RetryOrderCommandHandler

	ordersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	operationLogHandler     queries.GetOperationLogQueryHandler
	activeSessionHandler    queries.GetActiveSessionQueryHandler
	scanFailureStatsHandler queries.GetScanFailureStatsQueryHandler

	feed scanFeed
}

// ServerParams carries the handlers a Server depends on.
type ServerParams struct {
	AssignCarrier     commands.AssignCarrierCommandHandler
	PrintLabel        commands.PrintLabelCommandHandler
	StartPreparation  commands.StartPreparationCommandHandler
	RecordScan        commands.RecordScanCommandHandler
	UpdateSessionInfo commands.UpdateSessionInfoCommandHandler
	SavePreparation   commands.SavePreparationCommandHandler
	Discard           commands.DiscardPreparationCommandHandler
	ShipOrder         commands.ShipOrderCommandHandler
	ReturnOrder       commands.ReturnOrderCommandHandler
	RejectOrder       commands.RejectOrderCommandHandler
	RetryOrder        commands.RetryOrderCommandHandler

	OrdersByStatus   queries.GetOrdersByStatusQueryHandler
	OperationLog     queries.GetOperationLogQueryHandler
	ActiveSession    queries.GetActiveSessionQueryHandler
	ScanFailureStats queries.GetScanFailureStatsQueryHandler

	Feed scanFeed
}

// NewServer creates the HTTP server.
func NewServer(p ServerParams) *Server {
	return &Server{
		assignCarrierHandler:     p.AssignCarrier,
		printLabelHandler:        p.PrintLabel,
		startPreparationHandler:  p.StartPreparation,
		recordScanHandler:        p.RecordScan,
		updateSessionInfoHandler: p.UpdateSessionInfo,
		savePreparationHandler:   p.SavePreparation,
		discardHandler:           p.Discard,
		shipOrderHandler:         p.ShipOrder,
		returnOrderHandler:       p.ReturnOrder,
		rejectOrderHandler:       p.RejectOrder,
		retryOrderHandler:        p.RetryOrder,
		ordersByStatusHandler:    p.OrdersByStatus,
		operationLogHandler:      p.OperationLog,
		activeSessionHandler:     p.ActiveSession,
		scanFailureStatsHandler:  p.ScanFailureStats,
		feed:                     p.Feed,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrdersByStatus)
	api.POST("/orders/:id/carrier", s.AssignCarrier)
	api.POST("/orders/:id/label", s.PrintLabel)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/return", s.ReturnOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/retry", s.RetryOrder)

	api.GET("/preparation", s.GetActiveSession)
	api.POST("/preparation", s.StartPreparation)
	api.DELETE("/preparation", s.DiscardPreparation)
	api.POST("/preparation/scan", s.RecordScan)
	api.PUT("/preparation/info", s.UpdateSessionInfo)
	api.POST("/preparation/save", s.SavePreparation)

	api.GET("/operations", s.GetOperationLog)
	api.GET("/stats/scan-failures", s.GetScanFailureStats)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=Confirmed with an
// optional carrier filter.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status, ctx.QueryParam("carrier"))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponse{
			ID:           o.ID.String(),
			Code:         o.Code,
			Carrier:      o.Carrier,
			TrackingCode: o.TrackingCode,
			LabelPrinted: o.LabelPrinted,
			LineCount:    o.LineCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignCarrier handles POST /api/v1/orders/:id/carrier.
func (s *Server) AssignCarrier(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignCarrierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignCarrierCommand(orderID, req.Carrier, req.TrackingCode, req.Employee)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PrintLabel handles POST /api/v1/orders/:id/label.
func (s *Server) PrintLabel(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req printLabelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewPrintLabelCommand(orderID, req.Employee)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.printLabelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req shipOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, req.Employee)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnOrder handles POST /api/v1/orders/:id/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req returnOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, req.Condition, req.Employee)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.returnOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req rejectOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, req.Reason, req.Employee)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RetryOrder handles POST /api/v1/orders/:id/retry.
func (s *Server) RetryOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req retryOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRetryOrderCommand(orderID, req.Employee)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.retryOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPreparation handles POST /api/v1/preparation.
func (s *Server) StartPreparation(ctx echo.Context) error {
	var req startPreparationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewStartPreparationCommand(orderIDs, req.Operator)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startPreparationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RecordScan handles POST /api/v1/preparation/scan. The verdict goes back
// to the caller and out over the scan feed.
func (s *Server) RecordScan(ctx echo.Context) error {
	var req recordScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordScanCommand(req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.recordScanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	if s.feed != nil {
		s.feed.BroadcastScan(result)
	}

	response := scanResultResponse{
		Success: result.Success(),
		Kind:    result.Kind.String(),
		SKU:     result.SKU,
		Message: result.Message,
	}
	if !result.Success() {
		response.Reason = result.Reason.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateSessionInfo handles PUT /api/v1/preparation/info.
func (s *Server) UpdateSessionInfo(ctx echo.Context) error {
	var req updateSessionInfoRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateSessionInfoCommand(req.Operator, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateSessionInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SavePreparation handles POST /api/v1/preparation/save.
func (s *Server) SavePreparation(ctx echo.Context) error {
	cmd, err := commands.NewSavePreparationCommand()
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.savePreparationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DiscardPreparation handles DELETE /api/v1/preparation.
func (s *Server) DiscardPreparation(ctx echo.Context) error {
	cmd, err := commands.NewDiscardPreparationCommand()
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.discardHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveSession handles GET /api/v1/preparation.
func (s *Server) GetActiveSession(ctx echo.Context) error {
	query := queries.NewGetActiveSessionQuery()

	sess, err := s.activeSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := sessionResponse{
		Active:          sess.Active,
		Operator:        sess.Operator,
		Notes:           sess.Notes,
		ActiveOrderCode: sess.ActiveOrderCode,
		ReadyToCommit:   sess.ReadyToCommit,
	}
	if sess.Active {
		savedAt := sess.SavedAt
		response.SavedAt = &savedAt
	}

	for _, o := range sess.Orders {
		orderResp := sessionOrderResponse{
			Code:         o.Code,
			OrderScanned: o.OrderScanned,
			Completed:    o.Completed,
			Lines:        make([]sessionLineResponse, 0, len(o.Lines)),
			ScanLogs:     make([]scanLogResponse, 0, len(o.ScanLogs)),
		}
		for _, line := range o.Lines {
			orderResp.Lines = append(orderResp.Lines, sessionLineResponse{
				SKU:          line.SKU,
				Name:         line.Name,
				RequestedQty: line.RequestedQty,
				ScannedQty:   line.ScannedQty,
			})
		}
		for _, log := range o.ScanLogs {
			orderResp.ScanLogs = append(orderResp.ScanLogs, scanLogResponse{
				Success: log.Success,
				Message: log.Message,
				Reason:  log.Reason,
				At:      log.At,
			})
		}
		response.Orders = append(response.Orders, orderResp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOperationLog handles GET /api/v1/operations?order_code=&limit=.
func (s *Server) GetOperationLog(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "limit must be a number")
		}
		limit = parsed
	}

	query, err := queries.NewGetOperationLogQuery(ctx.QueryParam("order_code"), limit)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.operationLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]operationEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, operationEntryResponse{
			ID:        entry.ID.String(),
			Type:      entry.Type,
			OrderCode: entry.OrderCode,
			Carrier:   entry.Carrier,
			Employee:  entry.Employee,
			Details:   entry.Details,
			Result:    entry.Result,
			CreatedAt: entry.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetScanFailureStats handles GET /api/v1/stats/scan-failures.
func (s *Server) GetScanFailureStats(ctx echo.Context) error {
	query := queries.NewGetScanFailureStatsQuery()

	stats, err := s.scanFailureStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scanFailureStatsResponse{
		TotalScans:  stats.TotalScans,
		TotalFailed: stats.TotalFailed,
		ByReason:    stats.ByReason,
	})
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
