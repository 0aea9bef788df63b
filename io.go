// File: lixenwraith/apacheconf/io.go
package apacheconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ParseFile parses the file at path with opts. The file name becomes the tree's source
// unless opts.Source is set.
func ParseFile(path string, opts Options) (*Tree, error) {
	return NewParser(opts, nil).ParseFile(path)
}

// ParseFile reads and parses the file at path, honoring Options.MaxFileSize.
func (p *Parser) ParseFile(path string) (*Tree, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat config file '%s': %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("config path '%s' is a directory", path)
	}

	maxSize := p.opts.MaxFileSize
	if maxSize > 0 && fileInfo.Size() > maxSize {
		return nil, fmt.Errorf("%w: '%s' has %d bytes, limit %d", ErrFileTooLarge, path, fileInfo.Size(), maxSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer file.Close()

	// Guard against growth between Stat and Open
	var reader io.Reader = file
	if maxSize > 0 {
		data, err := readLimited(file, maxSize)
		if err != nil {
			return nil, fmt.Errorf("config file '%s': %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	fp := p
	if p.opts.Source == DefaultSource {
		clone := *p
		clone.opts.Source = path
		fp = &clone
	}
	return fp.Parse(reader)
}

// readLimited reads r to the end, failing with ErrFileTooLarge once more than maxSize
// bytes arrive.
func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, maxSize)
	}
	return data, nil
}

// Save renders the tree, terminated by a newline, and writes it atomically to path.
func (t *Tree) Save(path string) error {
	data := append(t.Render(), '\n')
	return atomicWriteFile(path, data)
}

// atomicWriteFile writes data to a temporary file in the target directory and renames
// it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, mode); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}
