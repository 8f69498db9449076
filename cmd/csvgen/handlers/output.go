// Package handlers implements the business logic for CLI commands.
//
// Each handler loads settings, builds the table and hands it to a
// destination. Dependencies that touch the terminal, the filesystem or
// object storage are package-level function variables so tests can
// replace them.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/imamik/csvgen/internal/config"
	"github.com/imamik/csvgen/internal/platform/s3"
	"github.com/imamik/csvgen/internal/table"
)

// Options are the settings shared by every command.
type Options struct {
	// EnvFile is loaded into the environment before settings are read.
	EnvFile string
	// MaxRows overrides the configured row ceiling when > 0.
	MaxRows int
}

// Target selects where a generated table is written.
type Target struct {
	// Path is the local CSV file. It also names the object when Key is empty.
	Path string
	// Bucket selects object storage instead of the local file.
	Bucket string
	Key    string
}

// bucketStore is the object storage client used for uploads.
type bucketStore interface {
	table.ObjectStore
	EnsureBucket(ctx context.Context, bucket string) error
}

// Factory function variables - can be replaced in tests.
var (
	loadSettings = config.LoadSettings

	newBucketStore = func(s *config.Settings) (bucketStore, error) {
		client, err := s3.NewClient(s3.Options{
			Endpoint:  s.S3Endpoint,
			Region:    s.S3Region,
			AccessKey: s.S3AccessKey,
			SecretKey: s.S3SecretKey,
			PathStyle: s.S3PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	}
)

var errS3NotConfigured = errors.New("object storage credentials missing: set " +
	config.EnvS3AccessKey + " and " + config.EnvS3SecretKey)

// resolveSettings loads settings and applies flag overrides.
func resolveSettings(opts Options) (*config.Settings, error) {
	settings, err := loadSettings(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if opts.MaxRows > 0 {
		settings.MaxRows = opts.MaxRows
	}
	return settings, nil
}

// resolveDestination returns the destination for target.
func resolveDestination(ctx context.Context, settings *config.Settings, target Target) (table.Destination, error) {
	if target.Bucket == "" {
		return table.FileDestination{Path: target.Path}, nil
	}

	if !settings.S3Enabled() {
		return nil, errS3NotConfigured
	}
	store, err := newBucketStore(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	if err := store.EnsureBucket(ctx, target.Bucket); err != nil {
		return nil, fmt.Errorf("failed to prepare bucket: %w", err)
	}

	key := target.Key
	if key == "" {
		key = filepath.Base(target.Path)
	}
	return table.ObjectDestination{Store: store, Bucket: target.Bucket, Key: key}, nil
}

// generate builds the table under the configured row ceiling.
func generate(ctx context.Context, settings *config.Settings, columns []table.ColumnSpec, variants []string) (*table.Table, error) {
	log := logr.FromContextOrDiscard(ctx)

	gen := table.NewGenerator(settings.MaxRows, log)
	t, err := gen.Generate(columns, variants)
	if err != nil {
		return nil, fmt.Errorf("failed to generate table: %w", err)
	}
	return t, nil
}

// generateAndWrite builds the table and hands it to dest.
func generateAndWrite(ctx context.Context, settings *config.Settings, columns []table.ColumnSpec, variants []string, dest table.Destination) (*table.Table, error) {
	log := logr.FromContextOrDiscard(ctx)

	t, err := generate(ctx, settings, columns, variants)
	if err != nil {
		return nil, err
	}

	if err := dest.Put(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to write table: %w", err)
	}

	log.Info("table written", "destination", dest.String(), "rows", len(t.Rows), "columns", t.Width())
	return t, nil
}

// Hint returns advice for a failed command, or "" when there is none.
func Hint(err error) string {
	switch {
	case errors.Is(err, table.ErrCapacityExceeded):
		return fmt.Sprintf("Reduce the number of variants, or raise the limit with --max-rows or %s.", config.EnvMaxRows)
	case errors.Is(err, table.ErrShapeMismatch):
		return "The number of variant values does not match the variant counts of the columns."
	case errors.Is(err, table.ErrIO):
		return "Check that the destination exists and is writable."
	case errors.Is(err, errS3NotConfigured):
		return fmt.Sprintf("Object storage settings can also be placed in %s.", config.DefaultEnvFile)
	}
	return ""
}
