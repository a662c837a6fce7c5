package models

// Match is the Postgres record of a match, live or finished.
type Match struct {
	Id      string
	Name    string
	Status  string // "lobby", "in progress", "finished"
	Players int
	Seed    int64
}

// MatchResult is one row of a finished match's final ranking.
type MatchResult struct {
	Id      string
	MatchId string
	Seat    int
	Rank    int
	Capital int
	Balance int
}

type MatchCreateDto struct {
	Name    string `json:"name"`
	Players int    `json:"players"`
	// Seed is optional; 0 means "not reproducible, pick one".
	Seed int64 `json:"seed"`
}
