package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDocument = `{
  "docket_number": "No. 12-345-CV",
  "name": "John Smith, Appellant v. Richard Jones, Appellee",
  "name_abbreviation": "Smith v. Jones",
  "casebody": {
    "data": "<casebody><judges>Marshall and Story, JJ.</judges><attorneys>Mr. Webster, for appellant.</attorneys><syllabus>First point.</syllabus><syllabus>Second point.</syllabus><otherdate>1870-03</otherdate><opinion><author>Marshall, J.</author><p>Judgment affirmed.</p></opinion></casebody>"
  }
}`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dataset, err := Load(writeDocument(t, sampleDocument))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dataset.DocketNumber != "No. 12-345-CV" {
		t.Errorf("docket number = %q", dataset.DocketNumber)
	}
	if dataset.NameAbbreviation != "Smith v. Jones" {
		t.Errorf("name abbreviation = %q", dataset.NameAbbreviation)
	}
	if dataset.Casebody.Data == "" {
		t.Error("casebody data empty")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Load(absent) succeeded")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	if _, err := Load(writeDocument(t, "{not json")); err == nil {
		t.Fatal("Load(malformed) succeeded")
	}
}

func TestAuxiliaryFields(t *testing.T) {
	dataset, err := Load(writeDocument(t, sampleDocument))
	if err != nil {
		t.Fatal(err)
	}
	fields, err := dataset.AuxiliaryFields()
	if err != nil {
		t.Fatalf("AuxiliaryFields: %v", err)
	}

	// Judges come from both the judges tag and the opinion author tag.
	if got := fields[FieldJudges]; got != "Marshall, Story" {
		t.Errorf("judges = %q, want %q", got, "Marshall, Story")
	}
	if got := fields[FieldAttorneys]; got != "Mr. Webster, for appellant." {
		t.Errorf("attorneys = %q", got)
	}
	if got := fields[FieldSyllabus]; got != "First point.\n\nSecond point." {
		t.Errorf("syllabus = %q", got)
	}
	if got := fields[FieldOtherDates]; got != "1870-03" {
		t.Errorf("other_dates = %q", got)
	}
	if _, present := fields[FieldSummary]; present {
		t.Error("empty summary should be dropped")
	}
}

func TestAuxiliaryFieldsSparseCasebody(t *testing.T) {
	dataset := &Dataset{}
	dataset.Casebody.Data = "<casebody><opinion><p>Only a body.</p></opinion></casebody>"
	fields, err := dataset.AuxiliaryFields()
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 0 {
		t.Errorf("fields = %v, want empty", fields)
	}
}
