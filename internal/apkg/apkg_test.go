package apkg

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_ProducesBothEntries(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "collection.anki2")
	require.NoError(t, os.WriteFile(dbPath, []byte("sqlite bytes"), 0o644))

	pkgPath := filepath.Join(dir, "out.apkg")
	require.NoError(t, Write(pkgPath, dbPath, EmptyMediaIndex))

	zr, err := zip.OpenReader(pkgPath)
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{DatabaseName, MediaName}, names)
}

func TestWrite_MissingDatabaseLeavesNoPackage(t *testing.T) {
	dir := t.TempDir()
	pkgPath := filepath.Join(dir, "out.apkg")

	err := Write(pkgPath, filepath.Join(dir, "missing.anki2"), EmptyMediaIndex)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractDatabase_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "collection.anki2")
	require.NoError(t, os.WriteFile(dbPath, []byte("sqlite bytes"), 0o644))

	pkgPath := filepath.Join(dir, "out.apkg")
	require.NoError(t, Write(pkgPath, dbPath, EmptyMediaIndex))

	destDir := t.TempDir()
	extracted, err := ExtractDatabase(pkgPath, destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, DatabaseName), extracted)

	content, err := os.ReadFile(extracted)
	require.NoError(t, err)
	assert.Equal(t, []byte("sqlite bytes"), content)
}

func TestExtractDatabase_MissingEntryFails(t *testing.T) {
	dir := t.TempDir()
	pkgPath := filepath.Join(dir, "bare.apkg")

	f, err := os.Create(pkgPath)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	entry, err := zw.Create("unrelated.txt")
	require.NoError(t, err)
	_, err = entry.Write([]byte("nothing"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = ExtractDatabase(pkgPath, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), DatabaseName)
}
