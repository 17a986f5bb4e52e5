package anki

import "fmt"

// CardType is one question/answer rendering rule within a NoteType. The
// ordinal is the per-note card discriminator; it is stable but not required
// to be contiguous or zero-based. Question and answer formats are template
// strings referencing field names by placeholder syntax; they are opaque
// text to this package.
type CardType struct {
	Name           string
	Ordinal        int64
	QuestionFormat string
	AnswerFormat   string
}

// NoteType defines the fields and card templates used to produce notes and
// their cards. This is called "model" in the Anki database. Immutable after
// construction.
type NoteType struct {
	id         int64
	name       string
	cardTypes  []CardType
	fieldNames []string
	css        string
}

func newNoteType(id int64, name string, cardTypes []CardType, fieldNames []string, css string) (*NoteType, error) {
	if name == "" {
		return nil, fmt.Errorf("note type name must not be empty: %w", ErrInvalidArgument)
	}
	if len(cardTypes) == 0 {
		return nil, fmt.Errorf("note type %q needs at least one card type: %w", name, ErrInvalidArgument)
	}

	cardTypeNames := make(map[string]struct{}, len(cardTypes))
	for _, ct := range cardTypes {
		if _, dup := cardTypeNames[ct.Name]; dup {
			return nil, fmt.Errorf("note type %q has duplicate card type name %q: %w", name, ct.Name, ErrInvalidArgument)
		}
		cardTypeNames[ct.Name] = struct{}{}
	}

	seenFields := make(map[string]struct{}, len(fieldNames))
	for _, f := range fieldNames {
		if _, dup := seenFields[f]; dup {
			return nil, fmt.Errorf("note type %q has duplicate field name %q: %w", name, f, ErrInvalidArgument)
		}
		seenFields[f] = struct{}{}
	}

	nt := &NoteType{
		id:         id,
		name:       name,
		cardTypes:  append([]CardType(nil), cardTypes...),
		fieldNames: append([]string(nil), fieldNames...),
		css:        css,
	}
	return nt, nil
}

func (nt *NoteType) ID() int64 {
	return nt.id
}

func (nt *NoteType) Name() string {
	return nt.name
}

// CardTypes returns the card types in declaration order.
func (nt *NoteType) CardTypes() []CardType {
	return append([]CardType(nil), nt.cardTypes...)
}

// FieldNames returns the field names in declaration order.
func (nt *NoteType) FieldNames() []string {
	return append([]string(nil), nt.fieldNames...)
}

// CSS returns the style sheet applied to the card templates.
func (nt *NoteType) CSS() string {
	return nt.css
}
