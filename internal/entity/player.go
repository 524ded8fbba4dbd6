package entity

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// MarkForTurn maps even turns to X and odd turns to O.
func MarkForTurn(turn int) Mark {
	if turn%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}
