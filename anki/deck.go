package anki

// Deck is a named, ordered collection of cards. Cards are referenced by id;
// all traversal goes through the owning Collection.
type Deck struct {
	id      int64
	name    string
	cardIDs []int64
}

func (d *Deck) ID() int64 {
	return d.id
}

func (d *Deck) Name() string {
	return d.name
}

// CardIDs returns the ids of the deck's cards in the order they were added.
func (d *Deck) CardIDs() []int64 {
	return append([]int64(nil), d.cardIDs...)
}

func (d *Deck) addCard(cardID int64) {
	d.cardIDs = append(d.cardIDs, cardID)
}
