package forum

const (
	// DEFAULT_AUDIT_WORKERS is the ledger audit pool size
	DEFAULT_AUDIT_WORKERS = 4

	// RECENT_ITEMS_LIMIT is the number of recent items reported by Stats
	RECENT_ITEMS_LIMIT = 3
)
