package database

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mrlokans/ankipkg/internal/schema"
)

// The col documents are stored as JSON text keyed by entity id. Go
// marshals integer-keyed maps with string object keys, matching the
// format.

func colToRow(c *schema.Collection) (colRow, error) {
	conf, err := json.Marshal(c.Config)
	if err != nil {
		return colRow{}, fmt.Errorf("failed to encode conf document: %w", err)
	}
	models, err := json.Marshal(c.Models)
	if err != nil {
		return colRow{}, fmt.Errorf("failed to encode models document: %w", err)
	}
	decks, err := json.Marshal(c.Decks)
	if err != nil {
		return colRow{}, fmt.Errorf("failed to encode decks document: %w", err)
	}
	dconf, err := json.Marshal(c.DeckConfigs)
	if err != nil {
		return colRow{}, fmt.Errorf("failed to encode dconf document: %w", err)
	}

	return colRow{
		ID:             c.ID,
		Created:        c.Created,
		Modified:       c.Modified,
		SchemaModified: c.SchemaModified,
		Version:        c.Version,
		Dirty:          c.Dirty,
		UpdateSequence: c.UpdateSequence,
		LastSync:       c.LastSync,
		Config:         string(conf),
		Models:         string(models),
		Decks:          string(decks),
		DeckConfigs:    string(dconf),
		Tags:           c.Tags,
	}, nil
}

func rowToCol(row colRow) (*schema.Collection, error) {
	c := &schema.Collection{
		ID:             row.ID,
		Created:        row.Created,
		Modified:       row.Modified,
		SchemaModified: row.SchemaModified,
		Version:        row.Version,
		Dirty:          row.Dirty,
		UpdateSequence: row.UpdateSequence,
		LastSync:       row.LastSync,
		Tags:           row.Tags,
	}
	if err := json.Unmarshal([]byte(row.Config), &c.Config); err != nil {
		return nil, fmt.Errorf("failed to decode conf document: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Models), &c.Models); err != nil {
		return nil, fmt.Errorf("failed to decode models document: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Decks), &c.Decks); err != nil {
		return nil, fmt.Errorf("failed to decode decks document: %w", err)
	}
	if err := json.Unmarshal([]byte(row.DeckConfigs), &c.DeckConfigs); err != nil {
		return nil, fmt.Errorf("failed to decode dconf document: %w", err)
	}
	return c, nil
}

func noteToRow(n schema.Note) noteRow {
	return noteRow{
		ID:             n.ID,
		GUID:           n.GUID,
		ModelID:        n.ModelID,
		Modified:       n.Modified,
		UpdateSequence: n.UpdateSequence,
		Tags:           n.Tags,
		Fields:         strings.Join(n.Fields, schema.FieldSeparator),
		SortField:      n.SortField,
		Checksum:       n.Checksum,
		Flags:          n.Flags,
		Data:           n.Data,
	}
}

func rowToNote(row noteRow) schema.Note {
	// An empty flds column means no field values at all; a split would
	// instead produce a single empty value.
	var fields []string
	if row.Fields != "" {
		fields = strings.Split(row.Fields, schema.FieldSeparator)
	}
	return schema.Note{
		ID:             row.ID,
		GUID:           row.GUID,
		ModelID:        row.ModelID,
		Modified:       row.Modified,
		UpdateSequence: row.UpdateSequence,
		Tags:           row.Tags,
		Fields:         fields,
		SortField:      row.SortField,
		Checksum:       row.Checksum,
		Flags:          row.Flags,
		Data:           row.Data,
	}
}

func cardToRow(c schema.Card) cardRow {
	return cardRow{
		ID:             c.ID,
		NoteID:         c.NoteID,
		DeckID:         c.DeckID,
		Ordinal:        c.Ordinal,
		Modified:       c.Modified,
		UpdateSequence: c.UpdateSequence,
		LearningType:   c.LearningType,
		Queue:          c.Queue,
		Due:            c.Due,
		Interval:       c.Interval,
		EaseFactor:     c.EaseFactor,
		Reviews:        c.Reviews,
		Lapses:         c.Lapses,
		Left:           c.Left,
		OriginalDue:    c.OriginalDue,
		OriginalDeckID: c.OriginalDeckID,
		Flags:          c.Flags,
		Data:           c.Data,
	}
}

func rowToCard(row cardRow) schema.Card {
	return schema.Card{
		ID:             row.ID,
		NoteID:         row.NoteID,
		DeckID:         row.DeckID,
		Ordinal:        row.Ordinal,
		Modified:       row.Modified,
		UpdateSequence: row.UpdateSequence,
		LearningType:   row.LearningType,
		Queue:          row.Queue,
		Due:            row.Due,
		Interval:       row.Interval,
		EaseFactor:     row.EaseFactor,
		Reviews:        row.Reviews,
		Lapses:         row.Lapses,
		Left:           row.Left,
		OriginalDue:    row.OriginalDue,
		OriginalDeckID: row.OriginalDeckID,
		Flags:          row.Flags,
		Data:           row.Data,
	}
}

func revLogToRow(r schema.RevLog) revLogRow {
	return revLogRow(r)
}

func rowToRevLog(row revLogRow) schema.RevLog {
	return schema.RevLog(row)
}

func graveToRow(g schema.Grave) graveRow {
	return graveRow(g)
}

func rowToGrave(row graveRow) schema.Grave {
	return schema.Grave(row)
}
