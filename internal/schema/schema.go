// Package schema mirrors the Anki collection file schema (version 11): the
// single col row with its embedded JSON documents, and the flat notes,
// cards, revlog and graves rows. Field names, JSON keys and numeric codes
// are an external contract with the host application and must not change.
package schema

// Version is the collection schema version this package produces and
// understands.
const Version = 11

// FieldSeparator joins a note's field values into the flds column.
const FieldSeparator = "\x1f"

// Collection is the projection of a whole collection file: the col row
// with its documents parsed, plus the flat row tables.
type Collection struct {
	ID             int64
	Created        int64
	Modified       int64
	SchemaModified int64
	Version        int64
	Dirty          int64
	UpdateSequence int64
	LastSync       int64
	Config         Config
	Models         map[int64]Model
	Decks          map[int64]Deck
	DeckConfigs    map[int64]DeckConfig
	Tags           string

	Notes   []Note
	Cards   []Card
	RevLogs []RevLog
	Graves  []Grave
}

// Note is one row of the notes table. Fields holds the individual field
// values; they are joined with FieldSeparator in the flds column.
type Note struct {
	ID             int64
	GUID           string
	ModelID        int64
	Modified       int64
	UpdateSequence int64
	Tags           string
	Fields         []string
	SortField      string
	Checksum       int64
	Flags          int64
	Data           string
}

// Card learning types, stored in the cards.type column.
const (
	CardLearningTypeNew      = int64(0)
	CardLearningTypeLearning = int64(1)
	CardLearningTypeReview   = int64(2)
	CardLearningTypeRelearn  = int64(3)
)

// Card is one row of the cards table.
type Card struct {
	ID             int64
	NoteID         int64
	DeckID         int64
	Ordinal        int64
	Modified       int64
	UpdateSequence int64
	LearningType   int64
	Queue          int64
	Due            int64
	Interval       int64
	EaseFactor     int64
	Reviews        int64
	Lapses         int64
	Left           int64
	OriginalDue    int64
	OriginalDeckID int64
	Flags          int64
	Data           string
}

// RevLog is one row of the revlog table. Not produced by this library;
// present so persisted files can be read without loss at the storage layer.
type RevLog struct {
	ID             int64
	CardID         int64
	UpdateSequence int64
	Ease           int64
	Interval       int64
	LastInterval   int64
	Factor         int64
	TimeTookMs     int64
	Type           int64
}

// Grave is one row of the graves table, recording a deleted entity. Always
// empty in output.
type Grave struct {
	UpdateSequence int64
	ObjectID       int64
	Type           int64
}
