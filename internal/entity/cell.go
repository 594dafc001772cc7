package entity

import "strconv"

// Cell holds either its original position label or the side that claimed it.
type Cell struct {
	position int
	owner    Turn
	claimed  bool
}

func unclaimedCell(position int) Cell {
	return Cell{position: position}
}

func (that Cell) Position() int {
	return that.position
}

func (that Cell) IsClaimed() bool {
	return that.claimed
}

// Owner - the side holding the cell; ok is false for an unclaimed cell.
func (that Cell) Owner() (Turn, bool) {
	return that.owner, that.claimed
}

// Label - the text shown on the board: the position digit or the owner's marker.
func (that Cell) Label() string {
	if that.claimed {
		return that.owner.Marker()
	}
	return strconv.Itoa(that.position)
}
