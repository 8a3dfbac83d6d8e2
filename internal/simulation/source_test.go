package simulation

import "io"

// memSource is an in-memory Source for tests. Counts default to the slice
// lengths unless overridden.
type memSource struct {
	size        int
	insectCount *int
	foodCount   *int
	insects     []InsectRecord
	foods       []FoodRecord
	partial     InsectRecord // returned with the error once insects run out
}

func (s *memSource) BoardSize() (int, error) { return s.size, nil }

func (s *memSource) InsectCount() (int, error) {
	if s.insectCount != nil {
		return *s.insectCount, nil
	}
	return len(s.insects), nil
}

func (s *memSource) FoodCount() (int, error) {
	if s.foodCount != nil {
		return *s.foodCount, nil
	}
	return len(s.foods), nil
}

func (s *memSource) NextInsect() (InsectRecord, error) {
	if len(s.insects) == 0 {
		return s.partial, Reject(MalformedInput, "%v", io.ErrUnexpectedEOF)
	}
	rec := s.insects[0]
	s.insects = s.insects[1:]
	return rec, nil
}

func (s *memSource) NextFood() (FoodRecord, error) {
	if len(s.foods) == 0 {
		return FoodRecord{}, Reject(MalformedInput, "%v", io.ErrUnexpectedEOF)
	}
	rec := s.foods[0]
	s.foods = s.foods[1:]
	return rec, nil
}

func intPtr(v int) *int { return &v }
