package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// filePerm is the mode of files written by WriteFile.
const filePerm = 0o644

// emptyRecord is how a record holding one empty field is encoded.
// csv.Writer would emit a blank line, which csv.Reader skips.
const emptyRecord = `""` + "\n"

// Write encodes t as comma-separated records to w.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	for _, record := range t.Records() {
		if len(record) == 1 && record[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return &IOError{Op: "write", Err: err}
			}
			if _, err := io.WriteString(w, emptyRecord); err != nil {
				return &IOError{Op: "write", Err: err}
			}
			continue
		}
		if err := cw.Write(record); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// WriteFile writes t to path. The table is written to a temporary file in
// the same directory and renamed over path once complete, so a failed write
// never leaves a partial file behind.
func WriteFile(path string, t *Table) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "create directory", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := Write(tmp, t); err != nil {
		return &IOError{Op: "write", Path: path, Err: unwrapIO(err)}
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: fmt.Errorf("%s: %w", tmpPath, err)}
	}

	return nil
}

// unwrapIO strips one IOError layer so paths are not reported twice.
func unwrapIO(err error) error {
	if ioErr, ok := err.(*IOError); ok {
		return ioErr.Err
	}
	return err
}
