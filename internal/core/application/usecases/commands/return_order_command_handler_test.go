package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeShippedOrder(code string) *order.Order {
	o := makePreparedOrder(code)
	_ = o.Ship()
	return o
}

func TestReturnOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := makeShippedOrder("ORD-1")
	cmd, err := commands.NewReturnOrderCommand(o.ID(), "damaged box", "alice")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	logRepo := new(MockOperationLogRepository)
	uow := new(MockFulfillmentUoW)
	ledger := new(MockInventoryLedger)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		ledger.On("RestoreFromReturn", mock.Anything, mock.Anything).
			Return(ports.InventorySnapshot{}, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("OperationLogRepository").Return(logRepo).Once(),
		logRepo.On("Push", mock.Anything, mock.AnythingOfType("*operation.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnOrderCommandHandler(factory, ledger)
	require.NoError(t, h.Handle(ctx, cmd))

	// The order re-enters the flow with carrier and progress cleared.
	require.Equal(t, order.Confirmed, o.Status())
	require.Nil(t, o.Carrier())
	require.False(t, o.LabelPrinted())
	require.Equal(t, "damaged box", o.ReturnCondition())
	for _, line := range o.Lines() {
		require.Zero(t, line.ScannedQty())
	}
}

func TestReturnOrderCommandHandler_Handle_SkipsLedgerWhenNotShipped(t *testing.T) {
	ctx := t.Context()
	o := makeConfirmedOrder("ORD-1")
	cmd, err := commands.NewReturnOrderCommand(o.ID(), "unopened", "alice")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	ledger := new(MockInventoryLedger)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnOrderCommandHandler(factory, ledger)
	require.Error(t, h.Handle(ctx, cmd))
	ledger.AssertNotCalled(t, "RestoreFromReturn", mock.Anything, mock.Anything)
}

func TestReturnOrderCommandHandler_Handle_LedgerFailureLeavesOrderShipped(t *testing.T) {
	ctx := t.Context()
	o := makeShippedOrder("ORD-1")
	cmd, err := commands.NewReturnOrderCommand(o.ID(), "damaged box", "alice")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	ledger := new(MockInventoryLedger)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		ledger.On("RestoreFromReturn", mock.Anything, mock.Anything).
			Return(ports.InventorySnapshot{}, errors.New("inventory service down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnOrderCommandHandler(factory, ledger)
	require.Error(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Shipped, o.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
