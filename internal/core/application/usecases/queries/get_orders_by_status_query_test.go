package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery(order.Confirmed, "")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Confirmed, query.Status())
	assert.Empty(t, query.Carrier())
}

func TestNewGetOrdersByStatusQuery_CarrierFilter(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery(order.Shipped, "DHL")
	require.NoError(t, err)
	assert.Equal(t, "DHL", query.Carrier())
}

func TestNewGetOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Status(0), "")
	require.Error(t, err)
}

func TestGetOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
