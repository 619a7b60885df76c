package entity

import (
	"fmt"
	"strings"
)

// Position is one of the nine named cells of the board.
type Position int

const (
	NoPosition Position = iota
	TL
	TM
	TR
	ML
	MM
	MR
	BL
	BM
	BR
)

// Positions lists every cell in row-major order.
var Positions = [9]Position{TL, TM, TR, ML, MM, MR, BL, BM, BR}

var positionNames = map[Position]string{
	TL: "TL",
	TM: "TM",
	TR: "TR",
	ML: "ML",
	MM: "MM",
	MR: "MR",
	BL: "BL",
	BM: "BM",
	BR: "BR",
}

func (that Position) String() string {
	if name, ok := positionNames[that]; ok {
		return name
	}

	return "Invalid"
}

// IsValid reports whether the position names a cell on the board.
func (that Position) IsValid() bool {
	return that >= TL && that <= BR
}

// ParsePosition - case-insensitive lookup of a move code, NoPosition when nothing matches.
func ParsePosition(input string) Position {
	input = strings.TrimSpace(input)

	for _, position := range Positions {
		if strings.EqualFold(positionNames[position], input) {
			return position
		}
	}

	return NoPosition
}

// Mark is what occupies a cell: nothing, a nought or a cross.
type Mark int

const (
	MarkEmpty Mark = iota
	PlayerO
	PlayerX
)

// Players lists the marks that can be placed, in the order they are checked for a win.
var Players = [2]Mark{PlayerO, PlayerX}

func (that Mark) String() string {
	switch that {
	case PlayerO:
		return "O"
	case PlayerX:
		return "X"
	default:
		return "Empty"
	}
}

// Opponent returns the other player, MarkEmpty for MarkEmpty.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerO:
		return PlayerX
	case PlayerX:
		return PlayerO
	default:
		return MarkEmpty
	}
}

// WinLines holds the eight winning triples: columns, then rows, then diagonals.
var WinLines = [8][3]Position{
	{TL, ML, BL},
	{TM, MM, BM},
	{TR, MR, BR},
	{TL, TM, TR},
	{ML, MM, MR},
	{BL, BM, BR},
	{TL, MM, BR},
	{TR, MM, BL},
}

// BoardFormat is the fixed 3x3 rendering template.
const BoardFormat = "%s | %s | %s\n-----------\n%s | %s | %s\n-----------\n%s | %s | %s"

// Board maps every position to its mark.
type Board [9]Mark

// At returns the mark at position, MarkEmpty for an invalid position.
func (that *Board) At(position Position) Mark {
	if !position.IsValid() {
		return MarkEmpty
	}

	return that[position-TL]
}

// Set places mark at position. Invalid positions are ignored.
func (that *Board) Set(position Position, mark Mark) {
	if !position.IsValid() {
		return
	}

	that[position-TL] = mark
}

// IsFull reports whether no empty cell remains.
func (that *Board) IsFull() bool {
	for _, mark := range that {
		if mark == MarkEmpty {
			return false
		}
	}

	return true
}

// HasLine reports whether mark fills any winning line.
func (that *Board) HasLine(mark Mark) bool {
	if mark == MarkEmpty {
		return false
	}

	for _, line := range WinLines {
		if that.At(line[0]) == mark && that.At(line[1]) == mark && that.At(line[2]) == mark {
			return true
		}
	}

	return false
}

// Render formats the board in canonical order, asking empty for the label of every empty cell.
func (that *Board) Render(empty func(Position) string) string {
	cells := make([]any, 0, len(Positions))

	for _, position := range Positions {
		mark := that.At(position)
		if mark == MarkEmpty {
			cells = append(cells, empty(position))
			continue
		}

		cells = append(cells, mark.String())
	}

	return fmt.Sprintf(BoardFormat, cells...)
}
