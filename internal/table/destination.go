package table

import (
	"bytes"
	"context"
	"fmt"
)

// Destination receives a generated table.
type Destination interface {
	Put(ctx context.Context, t *Table) error
	String() string
}

// FileDestination writes tables to a local CSV file.
type FileDestination struct {
	Path string
}

// Put writes t to the file, replacing any previous content.
func (d FileDestination) Put(_ context.Context, t *Table) error {
	return WriteFile(d.Path, t)
}

func (d FileDestination) String() string {
	return d.Path
}

// ObjectStore uploads whole objects to a bucket.
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key string, data []byte) error
}

// ObjectDestination uploads tables to an object storage bucket.
//
// The table is encoded in memory and sent in a single request, so a failed
// upload does not leave a partial object.
type ObjectDestination struct {
	Store  ObjectStore
	Bucket string
	Key    string
}

// Put encodes t and uploads it.
func (d ObjectDestination) Put(ctx context.Context, t *Table) error {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return err
	}
	if err := d.Store.PutObject(ctx, d.Bucket, d.Key, buf.Bytes()); err != nil {
		return &IOError{Op: "upload", Path: d.String(), Err: err}
	}
	return nil
}

func (d ObjectDestination) String() string {
	return fmt.Sprintf("s3://%s/%s", d.Bucket, d.Key)
}
