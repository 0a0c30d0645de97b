package domain

import "strings"

type Word struct {
	ID              string
	HindiWord       string
	EnglishMeaning  string
	ExampleSentence string
	ImageURL        string
	Pronunciation   string
	Level           int
}

// SpokenForm is the text that pronunciation and verification act on.
func (w Word) SpokenForm() string {
	return w.HindiWord
}

func (w Word) HasSpokenForm() bool {
	return strings.TrimSpace(w.HindiWord) != ""
}
