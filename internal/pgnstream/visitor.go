package pgnstream

import "io"

// Visitor receives the callbacks of Walk in stream order.
type Visitor interface {
	BeginGame()
	Tag(name, value string)
	// BeginVariation is called on '('. Returning true skips the whole
	// variation, including nested ones, without further callbacks.
	BeginVariation() (skip bool)
	EndVariation()
	SAN(san string) error
	EndGame() error
}

// Walk feeds every event of r to v until the input is exhausted or a
// callback fails. Errors from r and v are returned unchanged.
func Walk(r *Reader, v Visitor) error {
	skip := 0
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if skip > 0 {
			switch ev.Kind {
			case VariationStart:
				skip++
			case VariationEnd:
				skip--
			}
			continue
		}

		switch ev.Kind {
		case GameStart:
			v.BeginGame()
		case Tag:
			v.Tag(ev.Name, ev.Value)
		case Move:
			if err := v.SAN(ev.Value); err != nil {
				return err
			}
		case VariationStart:
			if v.BeginVariation() {
				skip = 1
			}
		case VariationEnd:
			v.EndVariation()
		case GameEnd:
			if err := v.EndGame(); err != nil {
				return err
			}
		}
	}
}
