package textscore

import (
	"reflect"
	"testing"
)

func TestKeyQuotesFindsQuotedSentences(t *testing.T) {
	a := NewWithBackend(stubScorer{})

	text := `The minister spoke today. She said "the plan is final". ` +
		`Reporters pressed on. He replied “no further comment”.`
	got, degraded := a.KeyQuotes(text, 2)
	if degraded {
		t.Fatal("want degraded=false")
	}
	want := []string{
		`She said "the plan is final".`,
		"He replied “no further comment”.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}

func TestKeyQuotesHonorsMax(t *testing.T) {
	a := NewWithBackend(stubScorer{})

	text := `One said "a". Two said "b". Three said "c".`
	got, _ := a.KeyQuotes(text, 2)
	if len(got) != 2 {
		t.Errorf("got %d quotes, want 2", len(got))
	}

	// Zero falls back to the default cap.
	got, _ = a.KeyQuotes(text, 0)
	if len(got) != DefaultMaxQuotes {
		t.Errorf("got %d quotes, want default %d", len(got), DefaultMaxQuotes)
	}
}

func TestKeyQuotesEmptyIsNonNil(t *testing.T) {
	a := NewWithBackend(stubScorer{})

	got, degraded := a.KeyQuotes("Nothing quoted in here. Plain reporting only.", 2)
	if degraded {
		t.Fatal("want degraded=false")
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", got)
	}
}
