package direction

// Reversible is implemented by types with an opposite value.
type Reversible[T any] interface {
	Reverse() T
}

// Mirror pairs v with its reverse.
func Mirror[T Reversible[T]](v T) (T, T) {
	return v, v.Reverse()
}

// Heading is a direction of travel together with the direction it turns
// back on. It is what Mirror produces for a Direction.
type Heading struct {
	Forward Direction
	Back    Direction
}

// HeadingOf returns the Heading of d.
func HeadingOf(d Direction) Heading {
	forward, back := Mirror(d)
	return Heading{Forward: forward, Back: back}
}

func (h Heading) String() string {
	return h.Forward.String() + "/" + h.Back.String()
}
