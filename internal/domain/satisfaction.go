package domain

// PlatformSatisfaction counts satisfaction events for one introduce-text
// tone within one company.
type PlatformSatisfaction struct {
	Company string
	Tone    string
	Count   int64
}

func (p PlatformSatisfaction) GroupKey() string { return p.Company }
func (p PlatformSatisfaction) Total() int64     { return p.Count }

// CategorySatisfaction is the same count grouped by product category.
type CategorySatisfaction struct {
	Category string
	Tone     string
	Count    int64
}

func (c CategorySatisfaction) GroupKey() string { return c.Category }
func (c CategorySatisfaction) Total() int64     { return c.Count }

// ToneCount is one cell of the company x tone matrix.
type ToneCount struct {
	Tone  string
	Count int64
}

// PlatformDetail is one company row of the completed matrix: its full
// list of per-tone counts, zero-filled entries included.
type PlatformDetail struct {
	Company string
	Tones   []ToneCount
}

// SatisfactionEvent is one user preference observation; the aggregate
// queries count these.
type SatisfactionEvent struct {
	UserID    int64
	ProductID int64
	Tone      string
}
