package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
)

// AggregateSemesterRows reduces flat grade fact rows into per-student,
// per-subject weighted results. Students and subjects keep their first-seen
// order. All arithmetic stays in exact decimals; rounding happens only at
// the final division, half-up to two places. A subject whose weight sum is
// zero gets a nil average and is excluded from the overall denominator.
func AggregateSemesterRows(rows []model.SemesterGradeRow) []dto.StudentSemesterResult {
	type subjectAccumulator struct {
		result      dto.SubjectResult
		weightedSum decimal.Decimal
		weightSum   decimal.Decimal
	}
	type studentAccumulator struct {
		result       dto.StudentSemesterResult
		subjectOrder []uuid.UUID
		subjects     map[uuid.UUID]*subjectAccumulator
	}

	var studentOrder []uuid.UUID
	students := make(map[uuid.UUID]*studentAccumulator)

	for _, row := range rows {
		student, ok := students[row.StudentID]
		if !ok {
			student = &studentAccumulator{
				result: dto.StudentSemesterResult{
					StudentID:        row.StudentID,
					StudentFirstName: row.StudentFirstName,
					StudentLastName:  row.StudentLastName,
				},
				subjects: make(map[uuid.UUID]*subjectAccumulator),
			}
			students[row.StudentID] = student
			studentOrder = append(studentOrder, row.StudentID)
		}

		subject, ok := student.subjects[row.SubjectID]
		if !ok {
			subject = &subjectAccumulator{
				result: dto.SubjectResult{
					SubjectID:   row.SubjectID,
					SubjectName: row.SubjectName,
				},
			}
			student.subjects[row.SubjectID] = subject
			student.subjectOrder = append(student.subjectOrder, row.SubjectID)
		}

		subject.result.Grades = append(subject.result.Grades, dto.GradeItem{
			GradeID:  row.GradeID,
			TestID:   row.TestID,
			TestName: row.TestName,
			TestDate: row.TestDate,
			Value:    row.Value,
			Weight:   row.Weight,
			Comment:  row.GradeComment,
		})
		subject.weightedSum = subject.weightedSum.Add(row.Value.Mul(row.Weight))
		subject.weightSum = subject.weightSum.Add(row.Weight)
	}

	results := make([]dto.StudentSemesterResult, 0, len(studentOrder))
	for _, studentID := range studentOrder {
		student := students[studentID]

		totalWeightedSum := decimal.Zero
		totalWeight := decimal.Zero
		for _, subjectID := range student.subjectOrder {
			subject := student.subjects[subjectID]

			if subject.weightSum.IsPositive() {
				avg := subject.weightedSum.DivRound(subject.weightSum, 2)
				subject.result.CalculatedGrade = &avg
				totalWeightedSum = totalWeightedSum.Add(subject.weightedSum)
				totalWeight = totalWeight.Add(subject.weightSum)
			}
			student.result.Subjects = append(student.result.Subjects, subject.result)
		}

		if totalWeight.IsPositive() {
			overall := totalWeightedSum.DivRound(totalWeight, 2)
			student.result.OverallGrade = &overall
		}
		results = append(results, student.result)
	}
	return results
}
