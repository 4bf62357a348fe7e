package merge

import "gavel/internal/store"

// Field identifies one reconcilable cluster field. The set is closed:
// dispatch to a merge strategy happens through the table below, never
// through runtime string matching.
type Field int

const (
	FieldSyllabus Field = iota
	FieldSummary
	FieldHistory
	FieldHeadnotes
	FieldCorrection
	FieldCrossReference
	FieldDisposition
	FieldJudges
	FieldAttorneys
	FieldDateFiled
	FieldOtherDates
)

type fieldClass int

const (
	classLongText fieldClass = iota
	classShortText
	classJudges
	classDate
)

type fieldSpec struct {
	name   string
	class  fieldClass
	column store.ClusterColumn
}

var fieldSpecs = map[Field]fieldSpec{
	FieldSyllabus:       {name: "syllabus", class: classLongText, column: store.ColSyllabus},
	FieldSummary:        {name: "summary", class: classLongText, column: store.ColSummary},
	FieldHistory:        {name: "history", class: classLongText, column: store.ColHistory},
	FieldHeadnotes:      {name: "headnotes", class: classLongText, column: store.ColHeadnotes},
	FieldCorrection:     {name: "correction", class: classLongText, column: store.ColCorrection},
	FieldCrossReference: {name: "cross_reference", class: classLongText, column: store.ColCrossReference},
	FieldDisposition:    {name: "disposition", class: classLongText, column: store.ColDisposition},
	FieldJudges:         {name: "judges", class: classJudges, column: store.ColJudges},
	FieldAttorneys:      {name: "attorneys", class: classShortText, column: store.ColAttorneys},
	FieldDateFiled:      {name: "date_filed", class: classDate},
	FieldOtherDates:     {name: "other_dates", class: classShortText, column: store.ColOtherDates},
}

var fieldsByName = func() map[string]Field {
	byName := make(map[string]Field, len(fieldSpecs))
	for field, spec := range fieldSpecs {
		byName[spec.name] = field
	}
	return byName
}()

// FieldByName resolves a canonical field name from the imported dataset.
// Unknown names report false; the orchestrator logs and skips them.
func FieldByName(name string) (Field, bool) {
	field, ok := fieldsByName[name]
	return field, ok
}

func (f Field) String() string {
	return fieldSpecs[f].name
}

// ExistingValue reads the field's current value from a cluster record.
func (f Field) ExistingValue(cluster *store.Cluster) string {
	if f == FieldDateFiled {
		return cluster.DateFiled
	}
	return fieldSpecs[f].column.Value(cluster)
}
