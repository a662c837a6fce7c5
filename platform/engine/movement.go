package engine

// Move computes the landing position for a roll. crossedStart is true
// iff the start cell (position 0) lies strictly inside the forward arc
// walked from pos, i.e. the token passed over or wrapped onto it with
// nonzero displacement. Pure function, no engine state involved.
func Move(pos, d1, d2, boardSize int) (newPos int, crossedStart bool, err error) {
	if d1 < 1 || d1 > 6 || d2 < 1 || d2 > 6 {
		return 0, false, ErrDie
	}
	steps := d1 + d2
	newPos = (pos + steps) % boardSize
	// Start is crossed exactly when the walk wraps past index 0.
	crossedStart = pos+steps >= boardSize
	return newPos, crossedStart, nil
}
