// Command generate_demo builds a sample .apkg package with a two-template
// note type and a handful of French vocabulary notes.
// Usage: go run cmd/generate_demo/main.go [-out path/to/demo.apkg]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/ankipkg/anki"
)

const defaultDemoPackagePath = "./demo/demo.apkg"

const demoCSS = `.card {
    font-family: arial;
    font-size: 20px;
    text-align: center;
    color: black;
    background-color: white;
}`

func main() {
	outPath := flag.String("out", defaultDemoPackagePath, "path to the demo package file")
	flag.Parse()

	log.Printf("Generating demo package at %s...", *outPath)

	// Start fresh if a previous demo package exists
	if err := os.Remove(*outPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo package: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	collection := anki.NewCollection()

	noteTypeID, err := collection.CreateNoteType(
		"Basic (with hints)",
		[]anki.CardType{
			{
				Name:           "Forward",
				Ordinal:        0,
				QuestionFormat: "{{Front}}<br/>{{hint:Help}}",
				AnswerFormat:   "{{Front}}<hr id=\"answer\">{{Back}}",
			},
			{
				Name:           "Backward",
				Ordinal:        1,
				QuestionFormat: "{{Back}}<br/>{{hint:Help}}",
				AnswerFormat:   "{{Back}}<hr id=\"answer\">{{Front}}",
			},
		},
		[]string{"Front", "Back", "Help"},
		demoCSS,
	)
	if err != nil {
		log.Fatalf("Failed to create note type: %v", err)
	}

	deckID, err := collection.CreateDeck("French vocabulary")
	if err != nil {
		log.Fatalf("Failed to create deck: %v", err)
	}

	notes := [][]string{
		{"Bonjour", "Hello", "B... H..."},
		{"Salut", "Hi", "S... Hi..."},
		{"Merci", "Thank you", "M... T..."},
	}
	for _, fields := range notes {
		if err := collection.CreateNote(deckID, noteTypeID, fields...); err != nil {
			log.Fatalf("Failed to create note %q: %v", fields[0], err)
		}
	}

	if err := anki.WriteFile(*outPath, collection); err != nil {
		log.Fatalf("Failed to write demo package: %v", err)
	}

	deck, _ := collection.DeckByID(deckID)
	log.Printf("Done: %d notes, %d cards in deck %q", len(notes), len(deck.CardIDs()), deck.Name())
}
