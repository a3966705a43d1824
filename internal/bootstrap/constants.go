package bootstrap

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	// Config sync log messages
	LogMsgSyncingCatalog = "Syncing item catalog from JSON config..."
	LogMsgCatalogSynced  = "Item catalog synced successfully"

	// Config sync error messages
	ErrMsgFailedLoadCatalog = "failed to load catalog config"
	ErrMsgInvalidCatalog    = "invalid catalog config"
	ErrMsgFailedSyncCatalog = "failed to sync catalog to database"
)

// =============================================================================
// Session Table Messages
// =============================================================================

const (
	LogMsgSessionTableLoaded  = "Session table loaded"
	LogMsgSessionTableMissing = "Session table not found, starting with empty resolver"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
