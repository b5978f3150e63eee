package domain

// SnapshotFeed keeps the snapshot store up to date in the background
type SnapshotFeed interface {
	// Sync pulls one snapshot and stores it
	Sync() error
	StartBackgroundProcessing()
	StopBackgroundProcessing()
}
