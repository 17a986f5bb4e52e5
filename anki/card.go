package anki

// Card is one renderable question/answer instance, produced from a Note via
// one of its NoteType's card types and placed in exactly one Deck. Many
// cards may reference the same note.
type Card struct {
	id      int64
	noteID  int64
	ordinal int64
}

func (c *Card) ID() int64 {
	return c.id
}

// NoteID is the id of the note this card renders.
func (c *Card) NoteID() int64 {
	return c.noteID
}

// Ordinal is copied from the card type that produced this card and selects
// which of the note type's templates renders it.
func (c *Card) Ordinal() int64 {
	return c.ordinal
}
