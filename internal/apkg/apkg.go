// Package apkg handles the zip container of a collection package: one
// collection.anki2 database and one media index document.
package apkg

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// DatabaseName is the zip entry holding the collection database.
	DatabaseName = "collection.anki2"
	// MediaName is the zip entry holding the media index document.
	MediaName = "media"
)

// EmptyMediaIndex is the media document for collections without media
// content. Media files are not handled by this library.
const EmptyMediaIndex = "{}"

// Write packages the database file and media index into path. The zip is
// assembled in a temporary file and renamed into place, so a failure never
// leaves a partially written package behind.
func Write(path, databasePath string, mediaIndex string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".apkg-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary package file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := writeArchive(tmp, databasePath, mediaIndex); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to finish package file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move package to %s: %w", path, err)
	}
	return nil
}

func writeArchive(w io.Writer, databasePath string, mediaIndex string) error {
	zw := zip.NewWriter(w)

	db, err := os.Open(databasePath)
	if err != nil {
		return fmt.Errorf("failed to open collection database %s: %w", databasePath, err)
	}
	defer db.Close()

	entry, err := zw.Create(DatabaseName)
	if err != nil {
		return fmt.Errorf("failed to add %s entry: %w", DatabaseName, err)
	}
	if _, err := io.Copy(entry, db); err != nil {
		return fmt.Errorf("failed to write %s entry: %w", DatabaseName, err)
	}

	media, err := zw.Create(MediaName)
	if err != nil {
		return fmt.Errorf("failed to add %s entry: %w", MediaName, err)
	}
	if _, err := media.Write([]byte(mediaIndex)); err != nil {
		return fmt.Errorf("failed to write %s entry: %w", MediaName, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish package archive: %w", err)
	}
	return nil
}

// ExtractDatabase unpacks the collection database entry of the package at
// path into destDir and returns the extracted file's path.
func ExtractDatabase(path, destDir string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open package %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != DatabaseName {
			continue
		}
		src, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open %s entry: %w", DatabaseName, err)
		}
		defer src.Close()

		dbPath := filepath.Join(destDir, DatabaseName)
		dst, err := os.Create(dbPath)
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dbPath, err)
		}
		defer dst.Close()

		if _, err := io.Copy(dst, src); err != nil {
			return "", fmt.Errorf("failed to extract %s: %w", DatabaseName, err)
		}
		return dbPath, nil
	}
	return "", fmt.Errorf("package %s has no %s entry", path, DatabaseName)
}
