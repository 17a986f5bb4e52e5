package anki

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/ankipkg/internal/apkg"
	"github.com/mrlokans/ankipkg/internal/database"
)

// WriteFile converts the collection to the persisted schema and packages it
// into an .apkg file at path. The target file is either fully written or
// left untouched.
func WriteFile(path string, c *Collection) error {
	workDir, err := os.MkdirTemp("", "ankipkg-write-*")
	if err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	dbPath := filepath.Join(workDir, apkg.DatabaseName)
	store, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	if err := store.CreateSchema(); err != nil {
		store.Close()
		return err
	}
	if err := store.WriteCollection(collectionToSchema(c)); err != nil {
		store.Close()
		return err
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("failed to close collection database: %w", err)
	}

	return apkg.Write(path, dbPath, apkg.EmptyMediaIndex)
}
