package anki

import (
	"fmt"
	"sort"

	"github.com/mrlokans/ankipkg/internal/schema"
)

// collectionFromSchema rebuilds a domain collection from its persisted
// projection, preserving every id. Deck ownership of a note is not stored
// on the note row; it is re-derived by requiring all of the note's cards to
// sit in a single deck. Review-log and grave rows are read but dropped, as
// the domain model does not represent them.
func collectionFromSchema(in *schema.Collection) (*Collection, error) {
	c := NewCollection()

	modelIDs := make([]int64, 0, len(in.Models))
	for id := range in.Models {
		modelIDs = append(modelIDs, id)
	}
	sort.Slice(modelIDs, func(i, j int) bool { return modelIDs[i] < modelIDs[j] })

	for _, id := range modelIDs {
		model := in.Models[id]
		nt, err := noteTypeFromModel(model)
		if err != nil {
			return nil, err
		}
		if err := c.addNoteType(nt); err != nil {
			return nil, err
		}
	}

	deckIDs := make([]int64, 0, len(in.Decks))
	for id := range in.Decks {
		deckIDs = append(deckIDs, id)
	}
	sort.Slice(deckIDs, func(i, j int) bool { return deckIDs[i] < deckIDs[j] })

	for _, id := range deckIDs {
		deck := in.Decks[id]
		if id == DefaultDeckID {
			// The fresh collection already owns the default deck; carry
			// over its persisted name in case the user renamed it.
			if deck.Name != DefaultDeckName {
				if err := c.renameDeck(DefaultDeckID, deck.Name); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := c.AddDeck(id, deck.Name); err != nil {
			return nil, err
		}
	}

	cardsByNote := make(map[int64][]schema.Card, len(in.Notes))
	for _, card := range in.Cards {
		cardsByNote[card.NoteID] = append(cardsByNote[card.NoteID], card)
	}

	for _, note := range in.Notes {
		cards := cardsByNote[note.ID]
		if len(cards) == 0 {
			return nil, fmt.Errorf("note %d has no cards: %w", note.ID, ErrInconsistentData)
		}

		deckID := cards[0].DeckID
		refs := make([]cardRef, 0, len(cards))
		for _, card := range cards {
			if card.DeckID != deckID {
				return nil, fmt.Errorf("cards of note %d are split across decks %d and %d: %w",
					note.ID, deckID, card.DeckID, ErrInconsistentData)
			}
			refs = append(refs, cardRef{ordinal: card.Ordinal, id: card.ID})
		}

		if err := c.addNoteWithCards(note.ID, deckID, note.ModelID, note.Fields, refs); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func noteTypeFromModel(model schema.Model) (*NoteType, error) {
	cardTypes := make([]CardType, 0, len(model.Templates))
	for _, tmpl := range model.Templates {
		cardTypes = append(cardTypes, CardType{
			Name:           tmpl.Name,
			Ordinal:        tmpl.Ordinal,
			QuestionFormat: tmpl.QuestionFormat,
			AnswerFormat:   tmpl.AnswerFormat,
		})
	}

	fieldNames := make([]string, 0, len(model.Fields))
	for _, field := range model.Fields {
		fieldNames = append(fieldNames, field.Name)
	}

	nt, err := newNoteType(model.ID, model.Name, cardTypes, fieldNames, model.CSS)
	if err != nil {
		return nil, fmt.Errorf("model %d: %w", model.ID, err)
	}
	return nt, nil
}
