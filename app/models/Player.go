package models

// PlayerDto is the wire shape of one seat, derived from engine state
// for the REST and socket layers.
type PlayerDto struct {
	Seat     int   `json:"seat"`
	Balance  int   `json:"balance"`
	Pos      int   `json:"pos"`
	Active   bool  `json:"active"`
	Jail     bool  `json:"jail"`
	JailCard bool  `json:"jail_card"`
	Cards    []int `json:"cards"`
	Current  bool  `json:"current"`
}

// StandingDto is one row of a ranking response.
type StandingDto struct {
	Seat    int `json:"seat"`
	Rank    int `json:"rank"`
	Capital int `json:"capital"`
	Balance int `json:"balance"`
}
