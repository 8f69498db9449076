// Package s3 uploads generated tables to S3-compatible object storage.
//
// The client is configured with a static endpoint and credentials and
// satisfies table.ObjectStore, so it can back a table.ObjectDestination.
package s3
