package http

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/ankipkg/anki"
)

// ExportRequest describes a collection to build. Deck entries with an
// empty name target the default deck.
type ExportRequest struct {
	Name      string            `json:"name" binding:"required"`
	NoteTypes []NoteTypePayload `json:"note_types" binding:"required,min=1"`
	Decks     []DeckPayload     `json:"decks"`
}

type NoteTypePayload struct {
	Name      string            `json:"name" binding:"required"`
	Fields    []string          `json:"fields" binding:"required,min=1"`
	CSS       string            `json:"css"`
	CardTypes []CardTypePayload `json:"card_types" binding:"required,min=1"`
}

type CardTypePayload struct {
	Name           string `json:"name" binding:"required"`
	Ordinal        int64  `json:"ordinal"`
	QuestionFormat string `json:"question_format" binding:"required"`
	AnswerFormat   string `json:"answer_format" binding:"required"`
}

type DeckPayload struct {
	Name  string        `json:"name"`
	Notes []NotePayload `json:"notes"`
}

type NotePayload struct {
	NoteType string   `json:"note_type" binding:"required"`
	Fields   []string `json:"fields"`
}

type ExportController struct {
	spoolDir string
}

func NewExportController(spoolDir string) *ExportController {
	return &ExportController{spoolDir: spoolDir}
}

// Export builds a collection from the request payload, writes it to the
// spool directory and streams the package back as a download.
func (ec *ExportController) Export(ctx *gin.Context) {
	var req ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection, err := buildCollection(&req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, anki.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if err := os.MkdirAll(ec.spoolDir, 0o755); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare spool directory"})
		return
	}

	path := filepath.Join(ec.spoolDir, uuid.NewString()+".apkg")
	if err := anki.WriteFile(path, collection); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.FileAttachment(path, req.Name+".apkg")
}

func buildCollection(req *ExportRequest) (*anki.Collection, error) {
	collection := anki.NewCollection()

	noteTypeIDs := make(map[string]int64, len(req.NoteTypes))
	for _, nt := range req.NoteTypes {
		cardTypes := make([]anki.CardType, 0, len(nt.CardTypes))
		for _, ct := range nt.CardTypes {
			cardTypes = append(cardTypes, anki.CardType{
				Name:           ct.Name,
				Ordinal:        ct.Ordinal,
				QuestionFormat: ct.QuestionFormat,
				AnswerFormat:   ct.AnswerFormat,
			})
		}
		id, err := collection.CreateNoteType(nt.Name, cardTypes, nt.Fields, nt.CSS)
		if err != nil {
			return nil, fmt.Errorf("note type %q: %w", nt.Name, err)
		}
		noteTypeIDs[nt.Name] = id
	}

	for _, deck := range req.Decks {
		deckID := anki.DefaultDeckID
		if deck.Name != "" && deck.Name != anki.DefaultDeckName {
			id, err := collection.CreateDeck(deck.Name)
			if err != nil {
				return nil, fmt.Errorf("deck %q: %w", deck.Name, err)
			}
			deckID = id
		}

		for _, note := range deck.Notes {
			noteTypeID, ok := noteTypeIDs[note.NoteType]
			if !ok {
				return nil, fmt.Errorf("note references unknown note type %q: %w", note.NoteType, anki.ErrInvalidArgument)
			}
			if err := collection.CreateNote(deckID, noteTypeID, note.Fields...); err != nil {
				return nil, fmt.Errorf("deck %q: %w", deck.Name, err)
			}
		}
	}

	return collection, nil
}
