package http

import "time"

// Request and response bodies of the fulfillment API. Field names are part
// of the wire format consumed by the warehouse console.

type assignCarrierRequest struct {
	Carrier      string `json:"carrier"`
	TrackingCode string `json:"tracking_code"`
	Employee     string `json:"employee"`
}

type printLabelRequest struct {
	Employee string `json:"employee"`
}

type shipOrderRequest struct {
	Employee string `json:"employee"`
}

type returnOrderRequest struct {
	Condition string `json:"condition"`
	Employee  string `json:"employee"`
}

type rejectOrderRequest struct {
	Reason   string `json:"reason"`
	Employee string `json:"employee"`
}

type retryOrderRequest struct {
	Employee string `json:"employee"`
}

type startPreparationRequest struct {
	OrderIDs []string `json:"order_ids"`
	Operator string   `json:"operator"`
}

type recordScanRequest struct {
	Code string `json:"code"`
}

type updateSessionInfoRequest struct {
	Operator string `json:"operator"`
	Notes    string `json:"notes"`
}

type scanResultResponse struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind"`
	SKU     string `json:"sku,omitempty"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

type orderResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Carrier      string `json:"carrier,omitempty"`
	TrackingCode string `json:"tracking_code,omitempty"`
	LabelPrinted bool   `json:"label_printed"`
	LineCount    int    `json:"line_count"`
}

type operationEntryResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	OrderCode string    `json:"order_code"`
	Carrier   string    `json:"carrier,omitempty"`
	Employee  string    `json:"employee,omitempty"`
	Details   string    `json:"details,omitempty"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	Active          bool                   `json:"active"`
	Operator        string                 `json:"operator,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	SavedAt         *time.Time             `json:"saved_at,omitempty"`
	ActiveOrderCode string                 `json:"active_order_code,omitempty"`
	ReadyToCommit   bool                   `json:"ready_to_commit"`
	Orders          []sessionOrderResponse `json:"orders,omitempty"`
}

type sessionOrderResponse struct {
	Code         string                `json:"code"`
	OrderScanned bool                  `json:"order_scanned"`
	Completed    bool                  `json:"completed"`
	Lines        []sessionLineResponse `json:"lines"`
	ScanLogs     []scanLogResponse     `json:"scan_logs"`
}

type sessionLineResponse struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	RequestedQty int    `json:"requested_qty"`
	ScannedQty   int    `json:"scanned_qty"`
}

type scanLogResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Reason  string    `json:"reason,omitempty"`
	At      time.Time `json:"at"`
}

type scanFailureStatsResponse struct {
	TotalScans  int            `json:"total_scans"`
	TotalFailed int            `json:"total_failed"`
	ByReason    map[string]int `json:"by_reason"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
