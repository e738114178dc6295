package adtfn

// Either holds a value of one of two types. By convention Right is the
// expected case and Left the alternative.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right returns an Either holding a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft reports whether e holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether e holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value or panics on Right.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("adtfn: LeftValue called on Right")
	}
	return e.left
}

// RightValue returns the right value or panics on Left.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic("adtfn: RightValue called on Left")
	}
	return e.right
}

// Swap exchanges the sides of e.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// MapRight applies fn to a right value; left values pass through.
func MapRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MatchEither calls onLeft or onRight depending on the side held by e.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
