package repository

// Optional distinguishes "field absent from the update" from "field set to
// its zero value". Partial updates use it for nullable columns where a plain
// pointer cannot express absent-vs-null.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}
