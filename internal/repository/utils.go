package repository

import (
	"context"

	"github.com/hearthbound/armory/internal/logger"
)

const errMsgTxClosed = "tx is closed"

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx InventoryTx) {
	if err := tx.Rollback(ctx); err != nil {
		// Rollback after commit reports a closed tx; that is not noise worth logging
		if err.Error() != errMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
