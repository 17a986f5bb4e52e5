package schema

// Config is the synced configuration document stored in col.conf.
type Config struct {
	CurrentDeck    int64   `json:"curDeck"`
	ActiveDecks    []int64 `json:"activeDecks"`
	NewSpread      int64   `json:"newSpread"`
	CollapseTime   int64   `json:"collapseTime"`
	TimeLimit      int64   `json:"timeLim"`
	EstimateTimes  bool    `json:"estTimes"`
	DueCounts      bool    `json:"dueCounts"`
	CurrentModel   int64   `json:"curModel"`
	NextPosition   int64   `json:"nextPos"`
	SortType       string  `json:"sortType"`
	SortBackwards  bool    `json:"sortBackwards"`
	AddToCurrent   bool    `json:"addToCur"`
	DayLearnFirst  bool    `json:"dayLearnFirst"`
	SchedulerVer   int64   `json:"schedVer"`
	CreationOffset int64   `json:"creationOffset"`
	NewBury        bool    `json:"newBury"`
	LastUnburied   int64   `json:"lastUnburied"`
}

// Model is one note type document, stored keyed by id in col.models.
type Model struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Type           int64      `json:"type"`
	Modified       int64      `json:"mod"`
	UpdateSequence int64      `json:"usn"`
	SortFieldIndex int64      `json:"sortf"`
	DeckID         *int64     `json:"did"`
	Templates      []Template `json:"tmpls"`
	Fields         []Field    `json:"flds"`
	CSS            string     `json:"css"`
	LatexPre       string     `json:"latexPre"`
	LatexPost      string     `json:"latexPost"`
	LatexSVG       bool       `json:"latexsvg"`
	Required       []any      `json:"req"`
	Tags           []string   `json:"tags"`
	LegacyVersion  []any      `json:"vers"`
}

// Template is one card template entry of a model.
type Template struct {
	Name                  string `json:"name"`
	Ordinal               int64  `json:"ord"`
	DeckOverrideID        *int64 `json:"did"`
	QuestionFormat        string `json:"qfmt"`
	AnswerFormat          string `json:"afmt"`
	BrowserQuestionFormat string `json:"bqfmt"`
	BrowserAnswerFormat   string `json:"bafmt"`
	BrowserFont           string `json:"bfont"`
	BrowserFontSize       int64  `json:"bsize"`
}

// Field is one field descriptor entry of a model.
type Field struct {
	Name        string   `json:"name"`
	Ordinal     int64    `json:"ord"`
	RightToLeft bool     `json:"rtl"`
	Sticky      bool     `json:"sticky"`
	Font        string   `json:"font"`
	FontSize    int64    `json:"size"`
	Description string   `json:"description"`
	Media       []string `json:"media"`
}

// Deck is one deck document, stored keyed by id in col.decks.
type Deck struct {
	ID                  int64   `json:"id"`
	Modified            int64   `json:"mod"`
	Name                string  `json:"name"`
	UpdateSequence      int64   `json:"usn"`
	NewToday            []int64 `json:"newToday"`
	ReviewedToday       []int64 `json:"revToday"`
	LearnedToday        []int64 `json:"lrnToday"`
	TimeToday           []int64 `json:"timeToday"`
	Collapsed           bool    `json:"collapsed"`
	BrowserCollapsed    bool    `json:"browserCollapsed"`
	Description         string  `json:"desc"`
	Dynamic             int64   `json:"dyn"`
	ConfigID            int64   `json:"conf"`
	ExtendedNewLimit    int64   `json:"extendNew"`
	ExtendedReviewLimit int64   `json:"extendRev"`
}

// DeckConfig is one deck options document, stored keyed by id in col.dconf.
// This library always emits exactly one, under the default deck id.
type DeckConfig struct {
	ID             int64             `json:"id"`
	Modified       int64             `json:"mod"`
	Name           string            `json:"name"`
	UpdateSequence int64             `json:"usn"`
	Autoplay       bool              `json:"autoplay"`
	ReplayQuestion bool              `json:"replayq"`
	Timer          int64             `json:"timer"`
	Dynamic        bool              `json:"dyn"`
	MaxTaken       int64             `json:"maxTaken"`
	Lapse          LapseConfig       `json:"lapse"`
	New            NewCardsConfig    `json:"new"`
	Review         ReviewCardsConfig `json:"rev"`
}

// LapseConfig holds the lapsed-card scheduling parameters.
type LapseConfig struct {
	Delays          []float64 `json:"delays"`
	Multiplier      int64     `json:"mult"`
	LeechAction     int64     `json:"leechAction"`
	LeechFails      int64     `json:"leechFails"`
	MinimumInterval int64     `json:"minInt"`
}

// NewCardsConfig holds the new-card scheduling parameters.
type NewCardsConfig struct {
	Bury          bool      `json:"bury"`
	Delays        []float64 `json:"delays"`
	InitialFactor int64     `json:"initialFactor"`
	Intervals     []int64   `json:"ints"`
	PerDay        int64     `json:"perDay"`
	Order         int64     `json:"order"`
	Separate      int64     `json:"separate"`
}

// ReviewCardsConfig holds the review-card scheduling parameters.
type ReviewCardsConfig struct {
	Bury           bool    `json:"bury"`
	PerDay         int64   `json:"perDay"`
	Ease4          float64 `json:"ease4"`
	Fuzz           float64 `json:"fuzz"`
	HardFactor     float64 `json:"hardFactor"`
	IntervalFactor float64 `json:"ivlFct"`
	MaxInterval    int64   `json:"maxIvl"`
	MinSpace       int64   `json:"minSpace"`
}
