package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateSessionInfoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orders := []*order.Order{preparingOrder("ORD-1")}
	registry, _, _ := newRegistryWithSession(t, orders)

	cmd, err := commands.NewUpdateSessionInfoCommand("bob", "pallet 7, fragile")
	require.NoError(t, err)

	h := commands.NewUpdateSessionInfoCommandHandler(registry)
	require.NoError(t, h.Handle(ctx, cmd))

	sess, err := registry.Peek(ctx)
	require.NoError(t, err)
	require.Equal(t, "bob", sess.Operator())
	require.Equal(t, "pallet 7, fragile", sess.Notes())
}

func TestUpdateSessionInfoCommandHandler_Handle_NoActiveSession(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Load", mock.Anything).Return(nil, nil)
	registry := commands.NewSessionRegistry(store, testLogger())

	cmd, err := commands.NewUpdateSessionInfoCommand("bob", "")
	require.NoError(t, err)

	h := commands.NewUpdateSessionInfoCommandHandler(registry)
	err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, commands.ErrNoActiveSession)
}

func TestDiscardPreparationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	orders := []*order.Order{preparingOrder("ORD-1")}
	registry, store, _ := newRegistryWithSession(t, orders)

	cmd, err := commands.NewDiscardPreparationCommand()
	require.NoError(t, err)

	h := commands.NewDiscardPreparationCommandHandler(registry)
	require.NoError(t, h.Handle(ctx, cmd))

	_, err = registry.Peek(ctx)
	require.ErrorIs(t, err, commands.ErrNoActiveSession)
	store.AssertCalled(t, "Clear", mock.Anything)
}
