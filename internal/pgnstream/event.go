package pgnstream

import "fmt"

// Kind identifies an Event.
type Kind uint8

const (
	GameStart Kind = iota
	Tag
	Move
	VariationStart
	VariationEnd
	Result
	GameEnd
)

func (k Kind) String() string {
	switch k {
	case GameStart:
		return "game-start"
	case Tag:
		return "tag"
	case Move:
		return "move"
	case VariationStart:
		return "variation-start"
	case VariationEnd:
		return "variation-end"
	case Result:
		return "result"
	case GameEnd:
		return "game-end"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event is one step of a PGN stream.
//
//	Tag:    Name and Value hold the tag pair.
//	Move:   Value holds the SAN token as written, e.g. "Nxe5+".
//	Result: Value holds "1-0", "0-1", "1/2-1/2" or "*".
type Event struct {
	Kind  Kind
	Name  string
	Value string
	Line  int
}

func (e Event) String() string {
	switch e.Kind {
	case Tag:
		return fmt.Sprintf("%s [%s %q]", e.Kind, e.Name, e.Value)
	case Move, Result:
		return fmt.Sprintf("%s %s", e.Kind, e.Value)
	}
	return e.Kind.String()
}

// SyntaxError reports malformed PGN.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pgn: line %d: %s", e.Line, e.Msg)
}
