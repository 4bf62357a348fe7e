package textutil

import (
	"math"
	"testing"
)

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("hello world"), 0},
		{"b nil", NewFingerprint("hello world"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIdentical(t *testing.T) {
	text := "Smith v. Jones, 12 U.S. 345 (1870)"
	got := CosineSimilarity(NewFingerprint(text), NewFingerprint(text))
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("CosineSimilarity(identical) = %v, want 1.0", got)
	}
}

func TestCosineSimilarityDisjoint(t *testing.T) {
	a := NewFingerprint("apple banana cherry")
	b := NewFingerprint("dog elephant frog")

	if got := CosineSimilarity(a, b); got != 0 {
		t.Errorf("CosineSimilarity(disjoint) = %v, want 0", got)
	}
}

func TestCosineSimilarityPartialOverlap(t *testing.T) {
	a := NewFingerprint("the quick brown fox")
	b := NewFingerprint("the slow brown cat")

	got := CosineSimilarity(a, b)
	if got <= 0 || got >= 1 {
		t.Errorf("CosineSimilarity(partial) = %v, want between 0 and 1", got)
	}
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	a := NewFingerprint("opinion of the court")
	b := NewFingerprint("court opinion delivered")

	if ab, ba := CosineSimilarity(a, b), CosineSimilarity(b, a); ab != ba {
		t.Errorf("CosineSimilarity not symmetric: (%v, %v)", ab, ba)
	}
}

func TestSimilarityEmptyInput(t *testing.T) {
	if got := Similarity("", "some text"); got != 0 {
		t.Errorf("Similarity(empty, text) = %v, want 0", got)
	}
	if got := Similarity("", ""); got != 0 {
		t.Errorf("Similarity(empty, empty) = %v, want 0", got)
	}
}

func TestTokenizeKeepsShortTokens(t *testing.T) {
	got := Tokenize("No. 12-345-CV")
	want := []string{"no", "12", "345", "cv"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokenize()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDocketNumberSimilarity(t *testing.T) {
	// Punctuation-stripped docket numbers still need a strong score when
	// one extends the other.
	got := Similarity("12 345", "no 12 345 cv")
	if got <= 0.5 {
		t.Errorf("Similarity(docket forms) = %v, want > 0.5", got)
	}
}

func TestWithIDFDownweightsCommonTerms(t *testing.T) {
	corpus := NewCorpus()
	docs := []*Fingerprint{
		NewFingerprint("the court holds the judgment is affirmed"),
		NewFingerprint("the court holds the judgment is reversed"),
		NewFingerprint("the appellant argues novel jurisdictional grounds"),
	}
	for _, d := range docs {
		corpus.Add(d)
	}
	idf := corpus.IDF()
	if idf == nil {
		t.Fatal("IDF() = nil, want weights")
	}

	plain := CosineSimilarity(docs[0], docs[1])
	weighted := CosineSimilarity(docs[0].WithIDF(idf), docs[1].WithIDF(idf))
	if weighted >= plain {
		t.Errorf("IDF weighting should reduce similarity dominated by shared boilerplate: plain=%v weighted=%v", plain, weighted)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jones, smith", "Jones, Smith"},
		{"per curiam", "Per Curiam"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
