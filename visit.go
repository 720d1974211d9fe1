package lustream

// WalkFunc is called for each unit by Walk.
//
// Calling next visits the children of a Chunk; it is a no-op for other units.
// Not calling it skips them.
type WalkFunc func(unit Unit, next func() error) error

// Walk units depth-first, in stream order.
func Walk(units []Unit, fn WalkFunc) error {
	for _, unit := range units {
		if err := walk(unit, fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(unit Unit, fn WalkFunc) error {
	return fn(unit, func() error {
		if chunk, ok := unit.(*Chunk); ok {
			return Walk(chunk.Children, fn)
		}
		return nil
	})
}

// SubUnits calls fn for every SubUnit in units, including chunk heads and
// joined components, in stream order.
func SubUnits(units []Unit, fn func(su *SubUnit)) {
	_ = Walk(units, func(unit Unit, next func() error) error {
		switch unit := unit.(type) {
		case *LexicalUnit:
			for _, su := range unit.Analyses {
				fn(su)
			}
		case *JoinedLexicalUnit:
			for _, slot := range unit.Analyses {
				for _, su := range slot {
					fn(su)
				}
			}
		case *Chunk:
			fn(unit.Head)
		}
		return next()
	})
}
