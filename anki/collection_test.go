package anki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicCardTypes() []CardType {
	return []CardType{
		{Name: "Forward", Ordinal: 0, QuestionFormat: "{{Front}}", AnswerFormat: "{{Back}}"},
	}
}

func TestNewCollection_HasDefaultDeck(t *testing.T) {
	c := NewCollection()

	assert.Empty(t, c.NoteTypes())
	require.Len(t, c.Decks(), 1)

	deck := c.Decks()[0]
	assert.Equal(t, DefaultDeckID, deck.ID())
	assert.Equal(t, DefaultDeckName, deck.Name())
	assert.Same(t, deck, c.DefaultDeck())
}

func TestCreateDeck_ReservedNameFails(t *testing.T) {
	c := NewCollection()

	_, err := c.CreateDeck("Default")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Len(t, c.Decks(), 1)
}

func TestAddDeck_ReservedIDFails(t *testing.T) {
	c := NewCollection()

	err := c.AddDeck(1, "Some deck")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Len(t, c.Decks(), 1)
}

func TestCreateDeck_DuplicateNameFails(t *testing.T) {
	c := NewCollection()

	_, err := c.CreateDeck("New")
	require.NoError(t, err)

	_, err = c.CreateDeck("New")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAddDeck_DuplicateNameFails(t *testing.T) {
	c := NewCollection()

	_, err := c.CreateDeck("New")
	require.NoError(t, err)

	err = c.AddDeck(42, "New")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAddDeck_DuplicateIDFails(t *testing.T) {
	c := NewCollection()

	require.NoError(t, c.AddDeck(15, "New deck 1"))
	err := c.AddDeck(15, "New deck 2")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeckLookups(t *testing.T) {
	c := NewCollection()
	id, err := c.CreateDeck("Vocabulary")
	require.NoError(t, err)

	byID, ok := c.DeckByID(id)
	require.True(t, ok)
	assert.Equal(t, "Vocabulary", byID.Name())

	byName, ok := c.DeckByName("Vocabulary")
	require.True(t, ok)
	assert.Equal(t, id, byName.ID())

	_, ok = c.DeckByID(999)
	assert.False(t, ok)
	_, ok = c.DeckByName("vocabulary") // case-sensitive
	assert.False(t, ok)
}

func TestNoteTypeLookups(t *testing.T) {
	c := NewCollection()
	id, err := c.CreateNoteType("Basic", basicCardTypes(), []string{"Front", "Back"}, "")
	require.NoError(t, err)

	byID, ok := c.NoteTypeByID(id)
	require.True(t, ok)
	assert.Equal(t, "Basic", byID.Name())

	byName, ok := c.NoteTypeByName("Basic")
	require.True(t, ok)
	assert.Equal(t, id, byName.ID())

	_, ok = c.NoteTypeByID(999)
	assert.False(t, ok)
	_, ok = c.NoteTypeByName("Missing")
	assert.False(t, ok)
}

func TestCreateNote_UnknownDeckFails(t *testing.T) {
	c := NewCollection()
	ntID, err := c.CreateNoteType("Basic", basicCardTypes(), []string{"Front", "Back"}, "")
	require.NoError(t, err)

	err = c.CreateNote(50, ntID, "A", "B")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, c.Notes())
}

func TestCreateNote_UnknownNoteTypeFails(t *testing.T) {
	c := NewCollection()

	err := c.CreateNote(DefaultDeckID, 15, "A", "B")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, c.Notes())
}

func TestCreateNote_TooManyFieldsFails(t *testing.T) {
	c := NewCollection()
	ntID, err := c.CreateNoteType("Basic", basicCardTypes(), []string{"Front", "Back"}, "")
	require.NoError(t, err)

	err = c.CreateNote(DefaultDeckID, ntID, "A", "B", "C")
	require.ErrorIs(t, err, ErrInvalidArgument)

	// All-or-nothing: nothing may have been registered.
	assert.Empty(t, c.Notes())
	assert.Empty(t, c.DefaultDeck().CardIDs())
}

func TestCreateNote_FewerFieldsThanNoteTypeIsAllowed(t *testing.T) {
	c := NewCollection()
	ntID, err := c.CreateNoteType("Basic", basicCardTypes(), []string{"Front", "Back", "Help"}, "")
	require.NoError(t, err)

	require.NoError(t, c.CreateNote(DefaultDeckID, ntID, "A"))
	require.Len(t, c.Notes(), 1)
	assert.Equal(t, []string{"A"}, c.Notes()[0].FieldValues())
}

func TestCreateNote_CreatesOneCardPerCardType(t *testing.T) {
	const ordinal1 = int64(23)
	const ordinal2 = int64(55)

	c := NewCollection()
	ntID, err := c.CreateNoteType(
		"NT",
		[]CardType{
			{Name: "CT1", Ordinal: ordinal1, QuestionFormat: "Q1", AnswerFormat: "A1"},
			{Name: "CT2", Ordinal: ordinal2, QuestionFormat: "Q2", AnswerFormat: "A2"},
		},
		[]string{"A", "B"},
		"",
	)
	require.NoError(t, err)

	require.NoError(t, c.CreateNote(DefaultDeckID, ntID, "Hello", "World"))

	require.Len(t, c.Notes(), 1)
	note := c.Notes()[0]
	assert.Equal(t, ntID, note.NoteTypeID())
	assert.Equal(t, []string{"Hello", "World"}, note.FieldValues())

	cardIDs := c.DefaultDeck().CardIDs()
	require.Len(t, cardIDs, 2)

	ordinals := make([]int64, 0, 2)
	for _, id := range cardIDs {
		card, ok := c.CardByID(id)
		require.True(t, ok)
		assert.Equal(t, note.ID(), card.NoteID())
		ordinals = append(ordinals, card.Ordinal())
	}
	assert.Equal(t, []int64{ordinal1, ordinal2}, ordinals)
}

func TestTwoNotesWithTwoCardTypes_DeckHoldsFourCards(t *testing.T) {
	c := NewCollection()
	ntID, err := c.CreateNoteType(
		"NT",
		[]CardType{
			{Name: "CT1", Ordinal: 0, QuestionFormat: "Q1", AnswerFormat: "A1"},
			{Name: "CT2", Ordinal: 1, QuestionFormat: "Q2", AnswerFormat: "A2"},
		},
		[]string{"A", "B", "C"},
		"",
	)
	require.NoError(t, err)

	deckID, err := c.CreateDeck("Extra")
	require.NoError(t, err)

	require.NoError(t, c.CreateNote(deckID, ntID, "1a", "1b"))
	require.NoError(t, c.CreateNote(deckID, ntID, "2a", "2b", "2c"))

	deck, ok := c.DeckByID(deckID)
	require.True(t, ok)
	assert.Len(t, deck.CardIDs(), 4)
	assert.Empty(t, c.DefaultDeck().CardIDs())

	for _, note := range c.Notes() {
		assert.LessOrEqual(t, len(note.FieldValues()), 3)
	}
}

func TestAddNoteWithCards_PreservesIDs(t *testing.T) {
	c := NewCollection()
	ntID, err := c.CreateNoteType("Basic", basicCardTypes(), []string{"Front", "Back"}, "")
	require.NoError(t, err)
	require.NoError(t, c.AddDeck(77, "Imported"))

	err = c.addNoteWithCards(1000, 77, ntID, []string{"F", "B"}, []cardRef{
		{ordinal: 0, id: 2000},
		{ordinal: 1, id: 2001},
	})
	require.NoError(t, err)

	note, ok := c.NoteByID(1000)
	require.True(t, ok)
	assert.Equal(t, []string{"F", "B"}, note.FieldValues())

	deck, _ := c.DeckByID(77)
	assert.Equal(t, []int64{2000, 2001}, deck.CardIDs())
}

func TestAddNoteWithCards_DuplicateNoteIDFails(t *testing.T) {
	c := NewCollection()
	ntID, err := c.CreateNoteType("Basic", basicCardTypes(), []string{"Front"}, "")
	require.NoError(t, err)

	require.NoError(t, c.addNoteWithCards(1, DefaultDeckID, ntID, []string{"A"}, []cardRef{{ordinal: 0, id: 10}}))
	err = c.addNoteWithCards(1, DefaultDeckID, ntID, []string{"B"}, []cardRef{{ordinal: 0, id: 11}})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// The failed call must not have touched the deck.
	assert.Equal(t, []int64{10}, c.DefaultDeck().CardIDs())
}
