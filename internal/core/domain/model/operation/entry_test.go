package operation_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operation"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSnapshot(t *testing.T) ([]session.ScanLogEntry, []order.ProductLine) {
	t.Helper()
	line, err := order.RestoreProductLine("X1", "product X1", 2, 2)
	require.NoError(t, err)
	logs := []session.ScanLogEntry{
		{Success: true, Message: "X1 scanned", At: time.Now()},
	}
	return logs, []order.ProductLine{line}
}

func TestNewEntry(t *testing.T) {
	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.ShipOrder,
		OrderCode: "A-100",
		Carrier:   "DHL",
		Employee:  "alice",
		Details:   "handed off",
		Result:    operation.ResultSuccess,
	})
	require.NoError(t, err)
	require.NoError(t, entry.Validate())

	assert.Equal(t, operation.ShipOrder, entry.OperationType())
	assert.Equal(t, "A-100", entry.OrderCode())
	assert.Equal(t, "DHL", entry.Carrier())
	assert.Equal(t, "alice", entry.Employee())
	assert.Equal(t, operation.ResultSuccess, entry.Result())
	assert.False(t, entry.CreatedAt().IsZero())
	assert.Error(t, entry.ID().Validate())
}

func TestNewEntry_Errors(t *testing.T) {
	logs, lines := makeSnapshot(t)

	tests := map[string]operation.NewEntryParams{
		"unknown type": {
			Type: operation.TypeUnknown, OrderCode: "A-100", Result: operation.ResultSuccess,
		},
		"unknown result": {
			Type: operation.ShipOrder, OrderCode: "A-100", Result: operation.ResultUnknown,
		},
		"missing order code": {
			Type: operation.ShipOrder, Result: operation.ResultSuccess,
		},
		"snapshots outside prepared entries": {
			Type: operation.ShipOrder, OrderCode: "A-100", Result: operation.ResultSuccess,
			ScanLogs: logs, Lines: lines,
		},
	}

	for name, params := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := operation.NewEntry(params)
			assert.Error(t, err)
		})
	}
}

func TestNewEntry_PreparedCarriesSnapshots(t *testing.T) {
	logs, lines := makeSnapshot(t)
	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.OrderPrepared,
		OrderCode: "A-100",
		Employee:  "alice",
		Result:    operation.ResultSuccess,
		ScanLogs:  logs,
		Lines:     lines,
	})
	require.NoError(t, err)

	require.Len(t, entry.ScanLogs(), 1)
	require.Len(t, entry.Lines(), 1)
	assert.Equal(t, "X1", entry.Lines()[0].SKU())
}

func TestEntry_EnsureID(t *testing.T) {
	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type: operation.PrintLabel, OrderCode: "A-100", Result: operation.ResultSuccess,
	})
	require.NoError(t, err)

	entry.EnsureID()
	first := entry.ID()
	require.NoError(t, first.Validate())

	// A second call keeps the assigned identifier.
	entry.EnsureID()
	assert.Equal(t, first, entry.ID())
}

func TestRestoreEntry(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now().Add(-time.Hour)

	entry, err := operation.RestoreEntry(id, operation.NewEntryParams{
		Type: operation.ReturnOrder, OrderCode: "A-100", Result: operation.ResultSuccess,
	}, createdAt)
	require.NoError(t, err)

	assert.Equal(t, id, entry.ID())
	assert.Equal(t, createdAt, entry.CreatedAt())
}

func TestRestoreEntry_InvalidID(t *testing.T) {
	_, err := operation.RestoreEntry(kernel.UUID{}, operation.NewEntryParams{
		Type: operation.ReturnOrder, OrderCode: "A-100", Result: operation.ResultSuccess,
	}, time.Now())
	assert.Error(t, err)
}

func TestEntry_Validate_NotConstructed(t *testing.T) {
	var entry operation.Entry
	assert.ErrorIs(t, entry.Validate(), operation.ErrEntryIsNotConstructed)
}

func TestTypeFromString(t *testing.T) {
	for _, opType := range []operation.Type{
		operation.OrderPrepared, operation.RejectOrder, operation.AssignCarrier,
		operation.PrintLabel, operation.ShipOrder, operation.ReturnOrder, operation.RetryOrder,
	} {
		parsed, err := operation.TypeFromString(opType.String())
		require.NoError(t, err)
		assert.Equal(t, opType, parsed)
	}

	_, err := operation.TypeFromString("TELEPORT_ORDER")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestResultFromString(t *testing.T) {
	for _, result := range []operation.Result{operation.ResultSuccess, operation.ResultFailed} {
		parsed, err := operation.ResultFromString(result.String())
		require.NoError(t, err)
		assert.Equal(t, result, parsed)
	}

	_, err := operation.ResultFromString("MAYBE")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
