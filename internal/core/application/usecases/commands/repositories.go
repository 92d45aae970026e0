// Package commands contains the business operations that modify system
// state. Each operator action is a command value object paired with a
// handler; handlers validate, open a unit of work, drive the aggregate and
// persist the result atomically.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, scoped to the repositories each command actually needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OperationLogRepoFactory provides access to the operation log within a transaction.
	OperationLogRepoFactory interface {
		OperationLogRepository() ports.OperationLogRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages transactions spanning orders and the operation
	// log. Every state transition that writes an audit entry uses this.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		OperationLogRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
