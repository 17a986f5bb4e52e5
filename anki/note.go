package anki

// Note is one set of field values produced against exactly one NoteType.
// It may carry fewer values than the note type has fields; missing fields
// are implicitly empty.
type Note struct {
	id          int64
	noteTypeID  int64
	fieldValues []string
}

func (n *Note) ID() int64 {
	return n.id
}

// NoteTypeID is the id of the NoteType this note was created against.
func (n *Note) NoteTypeID() int64 {
	return n.noteTypeID
}

// FieldValues returns the note's field values in field order.
func (n *Note) FieldValues() []string {
	return append([]string(nil), n.fieldValues...)
}
