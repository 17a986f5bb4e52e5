package anki

import (
	"github.com/google/uuid"

	"github.com/mrlokans/ankipkg/internal/schema"
)

// Latex wrappers Anki expects on every model, even when latex is unused.
const (
	latexPre = "\\documentclass[12pt]{article}\n\\special{papersize=3in,5in}\n\\usepackage[utf8]{inputenc}\n\\usepackage{amssymb,amsmath}\n\\pagestyle{empty}\n\\setlength{\\parindent}{0in}\n\\begin{document}\n"
	latexPost = "\\end{ document }"
)

// Neutral defaults for model fields the domain model does not track.
const (
	defaultFieldFont     = "Arial"
	defaultFieldFontSize = 20
)

// collectionToSchema projects a domain collection onto the persisted
// schema. Every field the domain model does not track is synthesized with
// the host format's neutral default, timestamps and sync counters zeroed.
// Output is deterministic for a given collection and wall-clock instant,
// except for the per-note GUIDs.
func collectionToSchema(c *Collection) *schema.Collection {
	out := &schema.Collection{
		ID:      1, // single row, id is arbitrary
		Version: schema.Version,
		Config: schema.Config{
			CurrentDeck:    DefaultDeckID,
			ActiveDecks:    []int64{DefaultDeckID},
			CollapseTime:   1200,
			EstimateTimes:  true,
			DueCounts:      true,
			CurrentModel:   currentModelID(c),
			NextPosition:   1,
			SortType:       "noteFld",
			AddToCurrent:   true,
			SchedulerVer:   2,
			CreationOffset: -480,
		},
		Models:      make(map[int64]schema.Model, len(c.noteTypes)),
		Decks:       make(map[int64]schema.Deck, len(c.decks)),
		DeckConfigs: map[int64]schema.DeckConfig{DefaultDeckID: defaultDeckConfig()},
		Tags:        "{}",
		Notes:       []schema.Note{},
		Cards:       []schema.Card{},
		RevLogs:     []schema.RevLog{},
		Graves:      []schema.Grave{},
	}

	for _, nt := range c.NoteTypes() {
		out.Models[nt.id] = modelFromNoteType(nt)
	}
	for _, d := range c.Decks() {
		out.Decks[d.id] = schema.Deck{
			ID:            d.id,
			Name:          d.name,
			NewToday:      []int64{0, 0},
			ReviewedToday: []int64{0, 0},
			LearnedToday:  []int64{0, 0},
			TimeToday:     []int64{0, 0},
			ConfigID:      DefaultDeckID,
		}
	}

	// Flatten all cards deck by deck, recovering the owning deck id from
	// the deck that holds each card. Notes follow in order of first
	// reference so output is stable.
	seenNotes := make(map[int64]struct{})
	for _, d := range c.Decks() {
		for _, cardID := range d.cardIDs {
			card := c.cards[cardID]
			out.Cards = append(out.Cards, schema.Card{
				ID:           card.id,
				NoteID:       card.noteID,
				DeckID:       d.id,
				Ordinal:      card.ordinal,
				LearningType: schema.CardLearningTypeNew,
				Data:         "",
			})

			if _, seen := seenNotes[card.noteID]; seen {
				continue
			}
			seenNotes[card.noteID] = struct{}{}
			out.Notes = append(out.Notes, noteRowFrom(c.notes[card.noteID]))
		}
	}

	return out
}

func noteRowFrom(n *Note) schema.Note {
	sortField := ""
	if len(n.fieldValues) > 0 {
		sortField = n.fieldValues[0]
	}
	return schema.Note{
		ID:        n.id,
		GUID:      noteGUID(),
		ModelID:   n.noteTypeID,
		Fields:    append([]string(nil), n.fieldValues...),
		SortField: sortField,
		Data:      "",
	}
}

func modelFromNoteType(nt *NoteType) schema.Model {
	templates := make([]schema.Template, 0, len(nt.cardTypes))
	for _, ct := range nt.cardTypes {
		templates = append(templates, schema.Template{
			Name:           ct.Name,
			Ordinal:        ct.Ordinal,
			QuestionFormat: ct.QuestionFormat,
			AnswerFormat:   ct.AnswerFormat,
		})
	}

	fields := make([]schema.Field, 0, len(nt.fieldNames))
	for i, name := range nt.fieldNames {
		fields = append(fields, schema.Field{
			Name:     name,
			Ordinal:  int64(i),
			Font:     defaultFieldFont,
			FontSize: defaultFieldFontSize,
		})
	}

	return schema.Model{
		ID:            nt.id,
		Name:          nt.name,
		Templates:     templates,
		Fields:        fields,
		CSS:           nt.css,
		LatexPre:      latexPre,
		LatexPost:     latexPost,
		Required:      []any{int64(0), "any", []any{int64(0)}},
		Tags:          []string{},
		LegacyVersion: []any{},
	}
}

func defaultDeckConfig() schema.DeckConfig {
	return schema.DeckConfig{
		ID:             DefaultDeckID,
		Name:           DefaultDeckName,
		Autoplay:       true,
		ReplayQuestion: true,
		Lapse: schema.LapseConfig{
			Delays:          []float64{10},
			LeechAction:     1,
			LeechFails:      8,
			MinimumInterval: 1,
		},
		New: schema.NewCardsConfig{
			Delays:        []float64{1, 10},
			InitialFactor: 2500,
			Intervals:     []int64{1, 4, 0},
			PerDay:        20,
			Order:         1,
		},
		Review: schema.ReviewCardsConfig{
			PerDay:         200,
			Ease4:          1.3,
			HardFactor:     1.2,
			IntervalFactor: 1,
			MaxInterval:    36500,
		},
	}
}

// currentModelID picks the note type advertised as current in the synced
// configuration. With no user state to draw from, the smallest id keeps
// output deterministic; 0 when the collection has no note types.
func currentModelID(c *Collection) int64 {
	noteTypes := c.NoteTypes()
	if len(noteTypes) == 0 {
		return 0
	}
	return noteTypes[0].id
}

// noteGUID returns the 10-character opaque note identity the host uses for
// cross-file dedup. Only local distinctness matters, not stability across
// conversions.
func noteGUID() string {
	return uuid.NewString()[:10]
}
