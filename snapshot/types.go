package snapshot

// Request identifies the table to snapshot and the bucket to write to.
type Request struct {
	// Table is the source DynamoDB table name.
	Table string `json:"table"`

	// Bucket is the target bucket name.
	Bucket string `json:"bucket"`
}

// Response describes a completed snapshot.
type Response struct {
	// Time is the snapshot timestamp in Unix milliseconds. It matches the
	// timestamp embedded in the destination key.
	Time int64 `json:"time"`

	// Destination is the URI of the timestamped snapshot object,
	// e.g. "s3://gearsetup/equipment/1756388000000.json.zst".
	Destination string `json:"destination"`

	// SnapshotSize is the number of items captured.
	SnapshotSize int `json:"snapshot_size"`
}
