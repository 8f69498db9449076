package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/csvgen/internal/config"
	"github.com/imamik/csvgen/internal/table"
)

// saveAndRestoreFactories saves and restores every factory function.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadSettings := loadSettings
	origNewBucketStore := newBucketStore
	origFileExists := fileExists
	origIsInteractive := isInteractive
	origConfirmOverwrite := confirmOverwrite
	origRunWizard := runWizard
	origSaveLayout := saveLayout
	origLoadLayout := loadLayout

	t.Cleanup(func() {
		loadSettings = origLoadSettings
		newBucketStore = origNewBucketStore
		fileExists = origFileExists
		isInteractive = origIsInteractive
		confirmOverwrite = origConfirmOverwrite
		runWizard = origRunWizard
		saveLayout = origSaveLayout
		loadLayout = origLoadLayout
	})

	loadSettings = func(string) (*config.Settings, error) {
		return &config.Settings{MaxRows: table.DefaultMaxRows, S3Region: config.DefaultS3Region}, nil
	}
}

// withS3Credentials makes loadSettings report usable credentials.
func withS3Credentials(t *testing.T) {
	t.Helper()
	loadSettings = func(string) (*config.Settings, error) {
		return &config.Settings{
			MaxRows:     table.DefaultMaxRows,
			S3Region:    config.DefaultS3Region,
			S3AccessKey: "access",
			S3SecretKey: "secret",
		}, nil
	}
}

type fakeBucketStore struct {
	ensured   []string
	objects   map[string][]byte
	ensureErr error
}

func newFakeBucketStore() *fakeBucketStore {
	return &fakeBucketStore{objects: make(map[string][]byte)}
}

func (s *fakeBucketStore) EnsureBucket(_ context.Context, bucket string) error {
	if s.ensureErr != nil {
		return s.ensureErr
	}
	s.ensured = append(s.ensured, bucket)
	return nil
}

func (s *fakeBucketStore) PutObject(_ context.Context, bucket, key string, data []byte) error {
	s.objects[bucket+"/"+key] = data
	return nil
}

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

var errBoom = errors.New("boom")
