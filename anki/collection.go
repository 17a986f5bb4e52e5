package anki

import (
	"fmt"
	"sort"
)

const (
	// DefaultDeckID is the reserved id of the deck every collection owns.
	DefaultDeckID = int64(1)
	// DefaultDeckName is the reserved name of that deck.
	DefaultDeckName = "Default"
)

// Collection is the aggregate root owning all decks, note types, notes and
// cards. Entities are created only through its creation operations and are
// never mutated or deleted afterwards; every mutating operation either
// fully succeeds or leaves the collection unchanged.
//
// A Collection is not safe for concurrent mutation; callers building a
// collection from multiple goroutines must serialize access themselves.
type Collection struct {
	noteTypes map[int64]*NoteType
	decks     map[int64]*Deck
	notes     map[int64]*Note
	cards     map[int64]*Card
}

// NewCollection creates an empty collection holding only the default deck.
func NewCollection() *Collection {
	c := &Collection{
		noteTypes: make(map[int64]*NoteType),
		decks:     make(map[int64]*Deck),
		notes:     make(map[int64]*Note),
		cards:     make(map[int64]*Card),
	}
	c.decks[DefaultDeckID] = &Deck{id: DefaultDeckID, name: DefaultDeckName}
	return c
}

// DefaultDeck returns the deck with the reserved id 1.
func (c *Collection) DefaultDeck() *Deck {
	return c.decks[DefaultDeckID]
}

// Decks lists all decks of the collection, ordered by id.
func (c *Collection) Decks() []*Deck {
	decks := make([]*Deck, 0, len(c.decks))
	for _, d := range c.decks {
		decks = append(decks, d)
	}
	sort.Slice(decks, func(i, j int) bool { return decks[i].id < decks[j].id })
	return decks
}

// NoteTypes lists all note types of the collection, ordered by id.
func (c *Collection) NoteTypes() []*NoteType {
	noteTypes := make([]*NoteType, 0, len(c.noteTypes))
	for _, nt := range c.noteTypes {
		noteTypes = append(noteTypes, nt)
	}
	sort.Slice(noteTypes, func(i, j int) bool { return noteTypes[i].id < noteTypes[j].id })
	return noteTypes
}

// Notes lists all notes of the collection, ordered by id.
func (c *Collection) Notes() []*Note {
	notes := make([]*Note, 0, len(c.notes))
	for _, n := range c.notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].id < notes[j].id })
	return notes
}

// DeckByID looks up a deck by id.
func (c *Collection) DeckByID(id int64) (*Deck, bool) {
	d, ok := c.decks[id]
	return d, ok
}

// DeckByName looks up a deck by its unique name, case-sensitively.
func (c *Collection) DeckByName(name string) (*Deck, bool) {
	for _, d := range c.Decks() {
		if d.name == name {
			return d, true
		}
	}
	return nil, false
}

// NoteTypeByID looks up a note type by id.
func (c *Collection) NoteTypeByID(id int64) (*NoteType, bool) {
	nt, ok := c.noteTypes[id]
	return nt, ok
}

// NoteTypeByName looks up a note type by name. If several note types share
// the name, the one with the smallest id wins.
func (c *Collection) NoteTypeByName(name string) (*NoteType, bool) {
	for _, nt := range c.NoteTypes() {
		if nt.name == name {
			return nt, true
		}
	}
	return nil, false
}

// NoteByID looks up a note by id.
func (c *Collection) NoteByID(id int64) (*Note, bool) {
	n, ok := c.notes[id]
	return n, ok
}

// CardByID looks up a card by id.
func (c *Collection) CardByID(id int64) (*Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// CreateNoteType validates and registers a new note type and returns its
// allocated id. At least one card type is required; card type names and
// field names must be pairwise distinct.
func (c *Collection) CreateNoteType(name string, cardTypes []CardType, fieldNames []string, css string) (int64, error) {
	id := nextID(func(id int64) bool {
		_, exists := c.noteTypes[id]
		return exists
	})

	nt, err := newNoteType(id, name, cardTypes, fieldNames, css)
	if err != nil {
		return 0, err
	}
	if err := c.addNoteType(nt); err != nil {
		return 0, err
	}
	return id, nil
}

// CreateDeck registers a new deck under an allocated id and returns the id.
// The reserved default name and names already in use are rejected.
func (c *Collection) CreateDeck(name string) (int64, error) {
	if name == DefaultDeckName {
		return 0, fmt.Errorf("deck name %q is reserved: %w", DefaultDeckName, ErrInvalidArgument)
	}

	id := nextID(func(id int64) bool {
		_, exists := c.decks[id]
		return exists
	})
	if err := c.addDeck(&Deck{id: id, name: name}); err != nil {
		return 0, err
	}
	return id, nil
}

// AddDeck registers a deck under a caller-supplied id. It exists for
// rebuilding a collection from a persisted file, where deck ids must be
// preserved. The reserved default id and ids or names already in use are
// rejected.
func (c *Collection) AddDeck(id int64, name string) error {
	if id == DefaultDeckID {
		return fmt.Errorf("deck id %d is reserved: %w", DefaultDeckID, ErrInvalidArgument)
	}
	return c.addDeck(&Deck{id: id, name: name})
}

// CreateNote creates one note from the given note type and, for every card
// type of that note type in declared order, one card appended to the given
// deck. The number of field values must not exceed the note type's field
// count; missing fields are implicitly empty.
func (c *Collection) CreateNote(deckID, noteTypeID int64, fields ...string) error {
	deck, ok := c.decks[deckID]
	if !ok {
		return fmt.Errorf("unknown deck id %d: %w", deckID, ErrInvalidArgument)
	}
	noteType, ok := c.noteTypes[noteTypeID]
	if !ok {
		return fmt.Errorf("unknown note type id %d: %w", noteTypeID, ErrInvalidArgument)
	}
	if len(fields) > len(noteType.fieldNames) {
		return fmt.Errorf("note has %d field values but note type %q has %d fields: %w",
			len(fields), noteType.name, len(noteType.fieldNames), ErrInvalidArgument)
	}

	noteID := nextID(func(id int64) bool {
		_, exists := c.notes[id]
		return exists
	})
	note := &Note{
		id:          noteID,
		noteTypeID:  noteTypeID,
		fieldValues: append([]string(nil), fields...),
	}
	c.notes[noteID] = note

	for _, cardType := range noteType.cardTypes {
		cardID := nextID(func(id int64) bool {
			_, exists := c.cards[id]
			return exists
		})
		c.cards[cardID] = &Card{id: cardID, noteID: noteID, ordinal: cardType.Ordinal}
		deck.addCard(cardID)
	}
	return nil
}

// cardRef pairs a card id with the ordinal of the card type that produced
// it, for the id-preserving reconstruction path.
type cardRef struct {
	ordinal int64
	id      int64
}

// addNoteWithCards rebuilds a note and its cards under pre-existing ids.
// Used only when reconstructing a collection from its persisted form; fresh
// creation goes through CreateNote. All invariants are checked before
// anything is registered.
func (c *Collection) addNoteWithCards(noteID, deckID, noteTypeID int64, fields []string, cards []cardRef) error {
	deck, ok := c.decks[deckID]
	if !ok {
		return fmt.Errorf("unknown deck id %d: %w", deckID, ErrInvalidArgument)
	}
	noteType, ok := c.noteTypes[noteTypeID]
	if !ok {
		return fmt.Errorf("unknown note type id %d: %w", noteTypeID, ErrInvalidArgument)
	}
	if len(fields) > len(noteType.fieldNames) {
		return fmt.Errorf("note %d has %d field values but note type %q has %d fields: %w",
			noteID, len(fields), noteType.name, len(noteType.fieldNames), ErrInvalidArgument)
	}
	if _, exists := c.notes[noteID]; exists {
		return fmt.Errorf("note id %d already in use: %w", noteID, ErrInvalidArgument)
	}
	seen := make(map[int64]struct{}, len(cards))
	for _, ref := range cards {
		if _, exists := c.cards[ref.id]; exists {
			return fmt.Errorf("card id %d already in use: %w", ref.id, ErrInvalidArgument)
		}
		if _, dup := seen[ref.id]; dup {
			return fmt.Errorf("duplicate card id %d: %w", ref.id, ErrInvalidArgument)
		}
		seen[ref.id] = struct{}{}
	}

	note := &Note{
		id:          noteID,
		noteTypeID:  noteTypeID,
		fieldValues: append([]string(nil), fields...),
	}
	c.notes[noteID] = note

	for _, ref := range cards {
		c.cards[ref.id] = &Card{id: ref.id, noteID: noteID, ordinal: ref.ordinal}
		deck.addCard(ref.id)
	}
	return nil
}

func (c *Collection) addNoteType(nt *NoteType) error {
	if _, exists := c.noteTypes[nt.id]; exists {
		return fmt.Errorf("note type id %d already in use: %w", nt.id, ErrInvalidArgument)
	}
	c.noteTypes[nt.id] = nt
	return nil
}

func (c *Collection) addDeck(deck *Deck) error {
	if _, exists := c.decks[deck.id]; exists {
		return fmt.Errorf("deck id %d already in use: %w", deck.id, ErrInvalidArgument)
	}
	for _, d := range c.decks {
		if d.name == deck.name {
			return fmt.Errorf("deck name %q already in use: %w", deck.name, ErrInvalidArgument)
		}
	}
	c.decks[deck.id] = deck
	return nil
}

// renameDeck is used by the reverse converter to carry over the persisted
// name of the default deck. The new name must not collide with another
// deck.
func (c *Collection) renameDeck(id int64, name string) error {
	deck, ok := c.decks[id]
	if !ok {
		return fmt.Errorf("unknown deck id %d: %w", id, ErrInvalidArgument)
	}
	for _, d := range c.decks {
		if d.id != id && d.name == name {
			return fmt.Errorf("deck name %q already in use: %w", name, ErrInvalidArgument)
		}
	}
	deck.name = name
	return nil
}
