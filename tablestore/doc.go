// Package tablestore reads equipment data from Amazon DynamoDB.
//
// Equipment for the entire game catalog is maintained in the "equipment"
// table, keyed by the numeric item ID. Repository provides typed lookups
// and full-table scans; ScanTable exposes the raw document form used by
// snapshot tooling.
//
// # Usage
//
//	repo, err := tablestore.NewFromDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	whip, err := repo.FindByID(ctx, 4151)
package tablestore
