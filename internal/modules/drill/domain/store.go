package domain

// WordStore holds the words of one lesson and a cursor into them. The cursor
// is always a valid index, or zero when the store is empty.
type WordStore struct {
	words  []Word
	cursor int
}

// SetWords replaces the word list and resets the cursor.
func (s *WordStore) SetWords(words []Word) {
	s.words = append([]Word(nil), words...)
	s.cursor = 0
}

func (s WordStore) Current() (Word, bool) {
	if len(s.words) == 0 {
		return Word{}, false
	}
	return s.words[s.cursor], true
}

func (s *WordStore) Advance() bool {
	if s.cursor >= len(s.words)-1 {
		return false
	}
	s.cursor++
	return true
}

func (s *WordStore) Retreat() bool {
	if s.cursor == 0 || len(s.words) == 0 {
		return false
	}
	s.cursor--
	return true
}

func (s WordStore) Cursor() int { return s.cursor }

func (s WordStore) Len() int { return len(s.words) }

// AtEnd reports whether there is no word after the current one.
func (s WordStore) AtEnd() bool {
	return s.cursor >= len(s.words)-1
}
