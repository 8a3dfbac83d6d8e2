package simulation

// InsectRecord is one raw insect entry as read from a scenario.
type InsectRecord struct {
	Color  string
	Kind   string
	Row    int
	Column int
}

// FoodRecord is one raw food entry as read from a scenario.
type FoodRecord struct {
	Value  int
	Row    int
	Column int
}

// Source yields the fields of a scenario in reading order. Load calls the
// methods in this order: BoardSize, InsectCount, FoodCount, NextInsect once
// per insect, NextFood once per food point. It stops at the first error, so
// implementations may read lazily. When NextInsect fails part way through a
// record it returns the fields it did read together with the error.
type Source interface {
	BoardSize() (int, error)
	InsectCount() (int, error)
	FoodCount() (int, error)
	NextInsect() (InsectRecord, error)
	NextFood() (FoodRecord, error)
}
