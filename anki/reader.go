package anki

import (
	"fmt"
	"os"

	"github.com/mrlokans/ankipkg/internal/apkg"
	"github.com/mrlokans/ankipkg/internal/database"
)

// ReadFile reads an .apkg file and rebuilds the domain collection it
// contains, preserving all entity ids. Review history and deletion records
// in the file are not representable in the domain model and are dropped.
func ReadFile(path string) (*Collection, error) {
	workDir, err := os.MkdirTemp("", "ankipkg-read-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	dbPath, err := apkg.ExtractDatabase(path, workDir)
	if err != nil {
		return nil, err
	}

	store, err := database.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	projection, err := store.ReadCollection()
	if err != nil {
		return nil, err
	}

	return collectionFromSchema(projection)
}
