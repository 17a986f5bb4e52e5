package database

// Physical row shapes of the collection database. Column names and order
// are fixed by the host format; every column must be present even when the
// value is a neutral default.

type colRow struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	Created        int64  `gorm:"column:crt"`
	Modified       int64  `gorm:"column:mod"`
	SchemaModified int64  `gorm:"column:scm"`
	Version        int64  `gorm:"column:ver"`
	Dirty          int64  `gorm:"column:dty"`
	UpdateSequence int64  `gorm:"column:usn"`
	LastSync       int64  `gorm:"column:ls"`
	Config         string `gorm:"column:conf"`
	Models         string `gorm:"column:models"`
	Decks          string `gorm:"column:decks"`
	DeckConfigs    string `gorm:"column:dconf"`
	Tags           string `gorm:"column:tags"`
}

func (colRow) TableName() string {
	return "col"
}

type noteRow struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	GUID           string `gorm:"column:guid"`
	ModelID        int64  `gorm:"column:mid"`
	Modified       int64  `gorm:"column:mod"`
	UpdateSequence int64  `gorm:"column:usn"`
	Tags           string `gorm:"column:tags"`
	Fields         string `gorm:"column:flds"`
	SortField      string `gorm:"column:sfld"`
	Checksum       int64  `gorm:"column:csum"`
	Flags          int64  `gorm:"column:flags"`
	Data           string `gorm:"column:data"`
}

func (noteRow) TableName() string {
	return "notes"
}

type cardRow struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	NoteID         int64  `gorm:"column:nid"`
	DeckID         int64  `gorm:"column:did"`
	Ordinal        int64  `gorm:"column:ord"`
	Modified       int64  `gorm:"column:mod"`
	UpdateSequence int64  `gorm:"column:usn"`
	LearningType   int64  `gorm:"column:type"`
	Queue          int64  `gorm:"column:queue"`
	Due            int64  `gorm:"column:due"`
	Interval       int64  `gorm:"column:ivl"`
	EaseFactor     int64  `gorm:"column:factor"`
	Reviews        int64  `gorm:"column:reps"`
	Lapses         int64  `gorm:"column:lapses"`
	Left           int64  `gorm:"column:left"`
	OriginalDue    int64  `gorm:"column:odue"`
	OriginalDeckID int64  `gorm:"column:odid"`
	Flags          int64  `gorm:"column:flags"`
	Data           string `gorm:"column:data"`
}

func (cardRow) TableName() string {
	return "cards"
}

type revLogRow struct {
	ID             int64 `gorm:"column:id;primaryKey"`
	CardID         int64 `gorm:"column:cid"`
	UpdateSequence int64 `gorm:"column:usn"`
	Ease           int64 `gorm:"column:ease"`
	Interval       int64 `gorm:"column:ivl"`
	LastInterval   int64 `gorm:"column:lastIvl"`
	Factor         int64 `gorm:"column:factor"`
	TimeTookMs     int64 `gorm:"column:time"`
	Type           int64 `gorm:"column:type"`
}

func (revLogRow) TableName() string {
	return "revlog"
}

type graveRow struct {
	UpdateSequence int64 `gorm:"column:usn"`
	ObjectID       int64 `gorm:"column:oid"`
	Type           int64 `gorm:"column:type"`
}

func (graveRow) TableName() string {
	return "graves"
}
