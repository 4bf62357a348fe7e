package merge

import (
	"errors"
	"strings"
	"testing"

	"gavel/internal/store"
)

func TestResolveLongTextKeepsNearDuplicate(t *testing.T) {
	// Punctuation differences only; tokenized forms are identical.
	conflict := Conflict{
		Field:    FieldSyllabus,
		Imported: "The court holds, that the judgment below is affirmed.",
		Existing: "The court holds that the judgment below is affirmed",
	}
	decision, err := Resolve(conflict, &store.Cluster{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if decision.Apply {
		t.Fatal("near-duplicate long text should keep the existing value")
	}
}

func TestResolveLongTextPrefersLongerWhenDivergent(t *testing.T) {
	conflict := Conflict{
		Field:    FieldHistory,
		Imported: "Appeal from the circuit court of the United States for the district of Massachusetts, sitting in admiralty, upon a libel for collision damages.",
		Existing: "Error to the supreme court of Ohio.",
	}
	decision, err := Resolve(conflict, &store.Cluster{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !decision.Apply || decision.Value != conflict.Imported {
		t.Fatalf("divergent longer imported text should win, got apply=%v", decision.Apply)
	}

	// Same pair reversed: the shorter imported value never overwrites.
	reversed := Conflict{Field: FieldHistory, Imported: conflict.Existing, Existing: conflict.Imported}
	decision, err = Resolve(reversed, &store.Cluster{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if decision.Apply {
		t.Fatal("shorter imported text should not overwrite")
	}
}

func TestResolveLongTextSimilarityFloorIsInclusive(t *testing.T) {
	// Token counts 9/3 against 8/3/4/1 put both squared norms at exactly
	// 90 and the dot product at 81, so the cosine score is exactly 0.9.
	// The imported text is longer in characters, so any drift toward a
	// strict comparison would flip this case to an overwrite.
	existing := strings.TrimSpace(
		strings.Repeat("writ ", 9) + strings.Repeat("mandamus ", 3))
	imported := strings.TrimSpace(
		strings.Repeat("writ ", 8) + strings.Repeat("mandamus ", 3) +
			strings.Repeat("quo ", 4) + "warranto")
	if len(imported) <= len(existing) {
		t.Fatalf("imported must be longer: %d vs %d", len(imported), len(existing))
	}

	decision, err := Resolve(Conflict{
		Field:    FieldSyllabus,
		Imported: imported,
		Existing: existing,
	}, &store.Cluster{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if decision.Apply {
		t.Fatal("a score exactly at the floor should keep the existing value")
	}

	// One more repetition of the unshared word drops the score below the
	// floor while keeping the imported side longer, so it wins.
	below := strings.TrimSpace(
		strings.Repeat("writ ", 8) + strings.Repeat("mandamus ", 3) +
			strings.Repeat("quo ", 4) + strings.Repeat("warranto ", 4))
	decision, err = Resolve(Conflict{
		Field:    FieldSyllabus,
		Imported: below,
		Existing: existing,
	}, &store.Cluster{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !decision.Apply || decision.Value != below {
		t.Fatalf("longer imported text below the floor should win, got apply=%v", decision.Apply)
	}
}

func TestResolveShortTextPrefersLonger(t *testing.T) {
	conflict := Conflict{
		Field:    FieldAttorneys,
		Imported: "Mr. Webster and Mr. Choate, for the appellant.",
		Existing: "Mr. Webster.",
	}
	decision, err := Resolve(conflict, &store.Cluster{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !decision.Apply || decision.Value != conflict.Imported {
		t.Fatal("longer imported attorneys line should win")
	}
}

func TestResolveJudgesSupersetOverwrites(t *testing.T) {
	conflict := Conflict{
		Field:    FieldJudges,
		Imported: "SMITH and JONES, JJ.",
		Existing: "Smith",
	}
	decision, err := Resolve(conflict, &store.Cluster{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !decision.Apply {
		t.Fatal("strict superset roster should overwrite")
	}
	if decision.Value != "Jones, Smith" {
		t.Fatalf("roster = %q, want %q", decision.Value, "Jones, Smith")
	}
}

func TestResolveJudgesDisjointAborts(t *testing.T) {
	conflict := Conflict{
		Field:    FieldJudges,
		Imported: "BROWN, J.",
		Existing: "Smith",
	}
	if _, err := Resolve(conflict, &store.Cluster{}); !errors.Is(err, ErrJudgeConflict) {
		t.Fatalf("err = %v, want ErrJudgeConflict", err)
	}
}

func TestResolveJudgesPartialOverlapKeepsExisting(t *testing.T) {
	conflict := Conflict{
		Field:    FieldJudges,
		Imported: "Smith, Brown",
		Existing: "Smith, Jones",
	}
	decision, err := Resolve(conflict, &store.Cluster{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if decision.Apply {
		t.Fatal("partial overlap should keep the existing roster")
	}
}

func TestResolveDateUpgradesApproximateOnly(t *testing.T) {
	conflict := Conflict{Field: FieldDateFiled, Imported: "1889-11-01", Existing: "1889-01-01"}

	decision, err := Resolve(conflict, &store.Cluster{DateFiledIsApproximate: true})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !decision.Apply || decision.Approximate {
		t.Fatal("exact imported date should replace an approximate one")
	}
	if decision.Value != "1889-11-01" {
		t.Fatalf("date = %q", decision.Value)
	}

	decision, err = Resolve(conflict, &store.Cluster{DateFiledIsApproximate: false})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if decision.Apply {
		t.Fatal("an exact existing date should never be overwritten")
	}

	approximate := Conflict{Field: FieldDateFiled, Imported: "1889", Existing: "1889-01-01"}
	decision, err = Resolve(approximate, &store.Cluster{DateFiledIsApproximate: true})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if decision.Apply {
		t.Fatal("an approximate imported date should not replace anything")
	}
}

func TestResolveDocketNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		imported string
		want     string
		adopt    bool
	}{
		{name: "equal", existing: "12-345", imported: "12-345"},
		{name: "empty imported", existing: "12-345", imported: ""},
		{name: "empty existing", existing: "", imported: "No. 17", want: "No. 17", adopt: true},
		{name: "substring extension", existing: "12-345", imported: "No. 12-345-CV", want: "No. 12-345-CV", adopt: true},
		{name: "similar and longer", existing: "12 345", imported: "12-345 67", want: "12-345 67", adopt: true},
		{name: "unrelated", existing: "12-345", imported: "98-7654"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, adopt := ResolveDocketNumber(tt.existing, tt.imported)
			if adopt != tt.adopt || got != tt.want {
				t.Fatalf("ResolveDocketNumber(%q, %q) = %q, %v; want %q, %v",
					tt.existing, tt.imported, got, adopt, tt.want, tt.adopt)
			}
		})
	}
}

func TestResolveCaseNamesAdoptsLonger(t *testing.T) {
	res := ResolveCaseNames(
		"Smith v. Jones", "",
		"Smith vs Jones Shipping Co.", "Smith and Others v. Jones Shipping Company of Baltimore",
	)
	if !res.UpdateName || res.CaseName != "Smith v. Jones Shipping Co" {
		t.Fatalf("case name = %q, update=%v", res.CaseName, res.UpdateName)
	}
	if !res.UpdateNameFull || res.CaseNameFull != "Smith and Others v. Jones Shipping Company of Baltimore" {
		t.Fatalf("full name = %q, update=%v", res.CaseNameFull, res.UpdateNameFull)
	}
}

func TestResolveCaseNamesSwapsInsteadOfTruncating(t *testing.T) {
	res := ResolveCaseNames(
		"Lessee of Livingston v. Moore and Others", "Livingston v. Moore",
		"", "",
	)
	if res.CaseName != "Livingston v. Moore" {
		t.Fatalf("case name = %q", res.CaseName)
	}
	if res.CaseNameFull != "Lessee of Livingston v. Moore and Others" {
		t.Fatalf("full name = %q", res.CaseNameFull)
	}
	if !res.UpdateName || !res.UpdateNameFull {
		t.Fatal("a swap must write both names")
	}
}
