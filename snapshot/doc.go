// Package snapshot exports DynamoDB tables to object storage and reads the
// exported files back.
//
// A snapshot scans an entire table, serializes every item to JSON, optionally
// compresses the payload, and writes two objects:
//
//	{table}/{timestamp}.json[.zst|.lz4]
//	{table}/latest.json[.zst|.lz4]
//
// The timestamped object is an immutable point-in-time copy; "latest" is
// overwritten on every run so consumers have a stable name to poll.
package snapshot
