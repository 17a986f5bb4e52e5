package database

import "github.com/mrlokans/ankipkg/internal/schema"

// WriteCollection persists a whole schema projection into the (freshly
// initialized) database.
func (s *Store) WriteCollection(c *schema.Collection) error {
	col, err := colToRow(c)
	if err != nil {
		return err
	}
	if _, err := newTableRepo[colRow](s.db, "col").add([]colRow{col}); err != nil {
		return err
	}

	notes := make([]noteRow, 0, len(c.Notes))
	for _, n := range c.Notes {
		notes = append(notes, noteToRow(n))
	}
	if _, err := newTableRepo[noteRow](s.db, "notes").add(notes); err != nil {
		return err
	}

	cards := make([]cardRow, 0, len(c.Cards))
	for _, card := range c.Cards {
		cards = append(cards, cardToRow(card))
	}
	if _, err := newTableRepo[cardRow](s.db, "cards").add(cards); err != nil {
		return err
	}

	revLogs := make([]revLogRow, 0, len(c.RevLogs))
	for _, r := range c.RevLogs {
		revLogs = append(revLogs, revLogToRow(r))
	}
	if _, err := newTableRepo[revLogRow](s.db, "revlog").add(revLogs); err != nil {
		return err
	}

	graves := make([]graveRow, 0, len(c.Graves))
	for _, g := range c.Graves {
		graves = append(graves, graveToRow(g))
	}
	if _, err := newTableRepo[graveRow](s.db, "graves").add(graves); err != nil {
		return err
	}

	return nil
}

// ReadCollection loads the whole schema projection back out of the
// database.
func (s *Store) ReadCollection() (*schema.Collection, error) {
	colRows, err := newTableRepo[colRow](s.db, "col").readAll()
	if err != nil {
		return nil, err
	}
	if len(colRows) == 0 {
		return nil, errMissingColRow
	}

	c, err := rowToCol(colRows[0])
	if err != nil {
		return nil, err
	}

	noteRows, err := newTableRepo[noteRow](s.db, "notes").readAll()
	if err != nil {
		return nil, err
	}
	c.Notes = make([]schema.Note, 0, len(noteRows))
	for _, row := range noteRows {
		c.Notes = append(c.Notes, rowToNote(row))
	}

	cardRows, err := newTableRepo[cardRow](s.db, "cards").readAll()
	if err != nil {
		return nil, err
	}
	c.Cards = make([]schema.Card, 0, len(cardRows))
	for _, row := range cardRows {
		c.Cards = append(c.Cards, rowToCard(row))
	}

	revLogRows, err := newTableRepo[revLogRow](s.db, "revlog").readAll()
	if err != nil {
		return nil, err
	}
	c.RevLogs = make([]schema.RevLog, 0, len(revLogRows))
	for _, row := range revLogRows {
		c.RevLogs = append(c.RevLogs, rowToRevLog(row))
	}

	graveRows, err := newTableRepo[graveRow](s.db, "graves").readAll()
	if err != nil {
		return nil, err
	}
	c.Graves = make([]schema.Grave, 0, len(graveRows))
	for _, row := range graveRows {
		c.Graves = append(c.Graves, rowToGrave(row))
	}

	return c, nil
}
