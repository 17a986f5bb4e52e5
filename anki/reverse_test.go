package anki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/ankipkg/internal/schema"
)

func minimalProjection() *schema.Collection {
	return &schema.Collection{
		ID:      1,
		Version: schema.Version,
		Models: map[int64]schema.Model{
			100: {
				ID:   100,
				Name: "Basic",
				Templates: []schema.Template{
					{Name: "Forward", Ordinal: 0, QuestionFormat: "{{Front}}", AnswerFormat: "{{Back}}"},
				},
				Fields: []schema.Field{
					{Name: "Front", Ordinal: 0},
					{Name: "Back", Ordinal: 1},
				},
				CSS: ".card {}",
			},
		},
		Decks: map[int64]schema.Deck{
			1:  {ID: 1, Name: "Default"},
			50: {ID: 50, Name: "Extra"},
		},
		DeckConfigs: map[int64]schema.DeckConfig{1: {ID: 1, Name: "Default"}},
		Tags:        "{}",
	}
}

func TestCollectionFromSchema_RebuildsEntities(t *testing.T) {
	in := minimalProjection()
	in.Notes = []schema.Note{
		{ID: 1000, GUID: "abcdefghij", ModelID: 100, Fields: []string{"Bonjour", "Hello"}, SortField: "Bonjour"},
	}
	in.Cards = []schema.Card{
		{ID: 2000, NoteID: 1000, DeckID: 50, Ordinal: 0},
	}

	c, err := collectionFromSchema(in)
	require.NoError(t, err)

	require.Len(t, c.NoteTypes(), 1)
	nt := c.NoteTypes()[0]
	assert.Equal(t, int64(100), nt.ID())
	assert.Equal(t, "Basic", nt.Name())
	assert.Equal(t, ".card {}", nt.CSS())
	assert.Equal(t, []string{"Front", "Back"}, nt.FieldNames())
	require.Len(t, nt.CardTypes(), 1)
	assert.Equal(t, "Forward", nt.CardTypes()[0].Name)

	require.Len(t, c.Decks(), 2)
	extra, ok := c.DeckByID(50)
	require.True(t, ok)
	assert.Equal(t, "Extra", extra.Name())

	note, ok := c.NoteByID(1000)
	require.True(t, ok)
	assert.Equal(t, int64(100), note.NoteTypeID())
	assert.Equal(t, []string{"Bonjour", "Hello"}, note.FieldValues())

	card, ok := c.CardByID(2000)
	require.True(t, ok)
	assert.Equal(t, int64(1000), card.NoteID())
	assert.Equal(t, int64(0), card.Ordinal())
	assert.Equal(t, []int64{2000}, extra.CardIDs())
}

func TestCollectionFromSchema_PreservesRenamedDefaultDeck(t *testing.T) {
	in := minimalProjection()
	decks := in.Decks
	decks[1] = schema.Deck{ID: 1, Name: "My renamed default"}

	c, err := collectionFromSchema(in)
	require.NoError(t, err)

	assert.Equal(t, "My renamed default", c.DefaultDeck().Name())
	_, ok := c.DeckByName("Default")
	assert.False(t, ok)
}

func TestCollectionFromSchema_CardsSplitAcrossDecksFails(t *testing.T) {
	in := minimalProjection()
	in.Notes = []schema.Note{
		{ID: 1000, ModelID: 100, Fields: []string{"A", "B"}},
	}
	in.Cards = []schema.Card{
		{ID: 2000, NoteID: 1000, DeckID: 1, Ordinal: 0},
		{ID: 2001, NoteID: 1000, DeckID: 50, Ordinal: 1},
	}

	_, err := collectionFromSchema(in)
	require.ErrorIs(t, err, ErrInconsistentData)
}

func TestCollectionFromSchema_NoteWithoutCardsFails(t *testing.T) {
	in := minimalProjection()
	in.Notes = []schema.Note{
		{ID: 1000, ModelID: 100, Fields: []string{"A", "B"}},
	}

	_, err := collectionFromSchema(in)
	require.ErrorIs(t, err, ErrInconsistentData)
}

func TestCollectionFromSchema_InvalidModelFails(t *testing.T) {
	in := minimalProjection()
	models := in.Models
	model := models[100]
	model.Templates = nil // a model without templates cannot produce cards
	models[100] = model

	_, err := collectionFromSchema(in)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCollectionFromSchema_DiscardsRevLogsAndGraves(t *testing.T) {
	in := minimalProjection()
	in.RevLogs = []schema.RevLog{{ID: 1, CardID: 2000, Ease: 3}}
	in.Graves = []schema.Grave{{ObjectID: 42, Type: 0}}

	c, err := collectionFromSchema(in)
	require.NoError(t, err)
	assert.Empty(t, c.Notes())
}
