package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeState(t *testing.T, quantities map[string]int) *session.OrderScanState {
	t.Helper()
	lines := make([]order.ProductLine, 0, len(quantities))
	for sku, qty := range quantities {
		line, err := order.NewProductLine(sku, "product "+sku, qty)
		require.NoError(t, err)
		lines = append(lines, line)
	}
	return session.NewOrderScanState(lines)
}

func TestScanMatcher_Evaluate_OrderBarcode(t *testing.T) {
	matcher := services.NewScanMatcher()
	state := makeState(t, map[string]int{"X1": 1})

	result := matcher.Evaluate("A-100", "A-100", state)
	assert.Equal(t, session.ScanMatchedOrder, result.Kind)
	assert.Equal(t, session.ReasonNone, result.Reason)
	assert.True(t, result.Success())
}

func TestScanMatcher_Evaluate_OrderBarcodeTwice(t *testing.T) {
	matcher := services.NewScanMatcher()
	state := makeState(t, map[string]int{"X1": 1})
	require.NoError(t, state.Apply(matcher.Evaluate("A-100", "A-100", state)))

	result := matcher.Evaluate("A-100", "A-100", state)
	assert.Equal(t, session.ScanRejected, result.Kind)
	assert.Equal(t, session.ReasonOrderAlreadyScanned, result.Reason)
	assert.False(t, result.Success())
}

func TestScanMatcher_Evaluate_ProductLine(t *testing.T) {
	matcher := services.NewScanMatcher()
	state := makeState(t, map[string]int{"X1": 2})

	result := matcher.Evaluate("X1", "A-100", state)
	assert.Equal(t, session.ScanMatchedProduct, result.Kind)
	assert.Equal(t, "X1", result.SKU)
	assert.True(t, result.Success())
}

func TestScanMatcher_Evaluate_LineAlreadyComplete(t *testing.T) {
	matcher := services.NewScanMatcher()
	state := makeState(t, map[string]int{"X1": 1})
	require.NoError(t, state.Apply(matcher.Evaluate("X1", "A-100", state)))

	result := matcher.Evaluate("X1", "A-100", state)
	assert.Equal(t, session.ScanRejected, result.Kind)
	assert.Equal(t, session.ReasonLineComplete, result.Reason)
	assert.Equal(t, "X1", result.SKU)
}

func TestScanMatcher_Evaluate_UnknownCode(t *testing.T) {
	matcher := services.NewScanMatcher()
	state := makeState(t, map[string]int{"X1": 1})

	result := matcher.Evaluate("Z9", "A-100", state)
	assert.Equal(t, session.ScanRejected, result.Kind)
	assert.Equal(t, session.ReasonUnknownCode, result.Reason)
	assert.Empty(t, result.SKU)
}

func TestScanMatcher_Evaluate_DoesNotMutateState(t *testing.T) {
	matcher := services.NewScanMatcher()
	state := makeState(t, map[string]int{"X1": 1})

	_ = matcher.Evaluate("X1", "A-100", state)

	line, found := state.Line("X1")
	require.True(t, found)
	assert.Zero(t, line.ScannedQty())
	assert.False(t, state.OrderScanned())
}
