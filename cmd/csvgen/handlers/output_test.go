package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/csvgen/internal/config"
	"github.com/imamik/csvgen/internal/table"
)

func TestResolveSettings(t *testing.T) {
	t.Run("keeps configured limit", func(t *testing.T) {
		saveAndRestoreFactories(t)

		settings, err := resolveSettings(Options{})
		require.NoError(t, err)
		assert.Equal(t, table.DefaultMaxRows, settings.MaxRows)
	})

	t.Run("flag overrides limit", func(t *testing.T) {
		saveAndRestoreFactories(t)

		settings, err := resolveSettings(Options{MaxRows: 42})
		require.NoError(t, err)
		assert.Equal(t, 42, settings.MaxRows)
	})

	t.Run("passes env file", func(t *testing.T) {
		saveAndRestoreFactories(t)
		var got string
		loadSettings = func(envFile string) (*config.Settings, error) {
			got = envFile
			return &config.Settings{MaxRows: 1}, nil
		}

		_, err := resolveSettings(Options{EnvFile: "custom.env"})
		require.NoError(t, err)
		assert.Equal(t, "custom.env", got)
	})

	t.Run("load error", func(t *testing.T) {
		saveAndRestoreFactories(t)
		loadSettings = func(string) (*config.Settings, error) { return nil, errBoom }

		_, err := resolveSettings(Options{})
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "failed to load settings")
	})
}

func TestResolveDestination(t *testing.T) {
	ctx := context.Background()

	t.Run("local file", func(t *testing.T) {
		saveAndRestoreFactories(t)
		newBucketStore = func(*config.Settings) (bucketStore, error) {
			t.Fatal("no client is needed for local files")
			return nil, nil
		}

		dest, err := resolveDestination(ctx, &config.Settings{}, Target{Path: "out.csv"})
		require.NoError(t, err)
		assert.Equal(t, table.FileDestination{Path: "out.csv"}, dest)
	})

	t.Run("bucket without credentials", func(t *testing.T) {
		saveAndRestoreFactories(t)

		_, err := resolveDestination(ctx, &config.Settings{}, Target{Path: "out.csv", Bucket: "tables"})
		assert.ErrorIs(t, err, errS3NotConfigured)
	})

	t.Run("key defaults to file name", func(t *testing.T) {
		saveAndRestoreFactories(t)
		store := newFakeBucketStore()
		newBucketStore = func(*config.Settings) (bucketStore, error) { return store, nil }
		settings := &config.Settings{S3AccessKey: "a", S3SecretKey: "s"}

		dest, err := resolveDestination(ctx, settings, Target{Path: "runs/out.csv", Bucket: "tables"})
		require.NoError(t, err)
		assert.Equal(t, "s3://tables/out.csv", dest.String())
		assert.Equal(t, []string{"tables"}, store.ensured)
	})

	t.Run("client error", func(t *testing.T) {
		saveAndRestoreFactories(t)
		newBucketStore = func(*config.Settings) (bucketStore, error) { return nil, errBoom }
		settings := &config.Settings{S3AccessKey: "a", S3SecretKey: "s"}

		_, err := resolveDestination(ctx, settings, Target{Path: "out.csv", Bucket: "tables"})
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "failed to create object storage client")
	})

	t.Run("bucket error", func(t *testing.T) {
		saveAndRestoreFactories(t)
		store := newFakeBucketStore()
		store.ensureErr = errBoom
		newBucketStore = func(*config.Settings) (bucketStore, error) { return store, nil }
		settings := &config.Settings{S3AccessKey: "a", S3SecretKey: "s"}

		_, err := resolveDestination(ctx, settings, Target{Path: "out.csv", Bucket: "tables"})
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "failed to prepare bucket")
	})
}

func TestGenerateAndWrite_ShapeMismatchWritesNothing(t *testing.T) {
	settings := &config.Settings{MaxRows: table.DefaultMaxRows}
	store := newFakeBucketStore()
	dest := table.ObjectDestination{Store: store, Bucket: "tables", Key: "out.csv"}
	columns := []table.ColumnSpec{{Title: "A", Name: "a", VariantCount: 2}}

	_, err := generateAndWrite(context.Background(), settings, columns, []string{"only one"}, dest)

	assert.ErrorIs(t, err, table.ErrShapeMismatch)
	assert.Empty(t, store.objects)
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"capacity", fmt.Errorf("wrapped: %w", &table.CapacityError{Rows: 10, Limit: 5}), "--max-rows"},
		{"shape", &table.ShapeError{Want: 2, Got: 1}, "does not match"},
		{"io", &table.IOError{Op: "write", Path: "x", Err: errBoom}, "writable"},
		{"s3", errS3NotConfigured, config.DefaultEnvFile},
		{"other", errBoom, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hint(tt.err)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}
