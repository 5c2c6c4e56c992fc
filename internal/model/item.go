package model

// Item is the domain model for a todo entry.
// ID is assigned by the store and never changes.
type Item struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Complete bool   `json:"isComplete"`
}

// Stats aggregates an item list. PercentCompleted is a fraction in [0,1].
type Stats struct {
	TotalNum            int     `json:"totalNum"`
	TotalCompletedNum   int     `json:"totalCompletedNum"`
	TotalUncompletedNum int     `json:"totalUncompletedNum"`
	PercentCompleted    float64 `json:"percentCompleted"`
}
