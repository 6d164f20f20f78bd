package service

import (
	"context"

	"github.com/google/uuid"

	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
)

type fakeSubjectRepo struct {
	subjects map[uuid.UUID]*model.Subject
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[uuid.UUID]*model.Subject)}
}

func (r *fakeSubjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	if subject.ID == uuid.Nil {
		subject.ID = uuid.New()
	}
	r.subjects[subject.ID] = subject
	return nil
}

func (r *fakeSubjectRepo) Save(ctx context.Context, subject *model.Subject) error {
	r.subjects[subject.ID] = subject
	return nil
}

func (r *fakeSubjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	subject, ok := r.subjects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return subject, nil
}

func (r *fakeSubjectRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, subject := range r.subjects {
		if subject.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSubjectRepo) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Subject, int64, error) {
	all := make([]*model.Subject, 0, len(r.subjects))
	for _, subject := range r.subjects {
		all = append(all, subject)
	}
	return all, int64(len(all)), nil
}

func (r *fakeSubjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.subjects, id)
	return nil
}

type fakeSemesterRepo struct {
	semesters map[uuid.UUID]*model.Semester
}

func newFakeSemesterRepo() *fakeSemesterRepo {
	return &fakeSemesterRepo{semesters: make(map[uuid.UUID]*model.Semester)}
}

func (r *fakeSemesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	if semester.ID == uuid.Nil {
		semester.ID = uuid.New()
	}
	r.semesters[semester.ID] = semester
	return nil
}

func (r *fakeSemesterRepo) Save(ctx context.Context, semester *model.Semester) error {
	r.semesters[semester.ID] = semester
	return nil
}

func (r *fakeSemesterRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Semester, error) {
	semester, ok := r.semesters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return semester, nil
}

func (r *fakeSemesterRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, semester := range r.semesters {
		if semester.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSemesterRepo) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Semester, int64, error) {
	all := make([]*model.Semester, 0, len(r.semesters))
	for _, semester := range r.semesters {
		all = append(all, semester)
	}
	return all, int64(len(all)), nil
}

func (r *fakeSemesterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.semesters, id)
	return nil
}

type fakeSemesterSubjectRepo struct {
	pairs map[uuid.UUID]*model.SemesterSubject
}

func newFakeSemesterSubjectRepo() *fakeSemesterSubjectRepo {
	return &fakeSemesterSubjectRepo{pairs: make(map[uuid.UUID]*model.SemesterSubject)}
}

func (r *fakeSemesterSubjectRepo) Create(ctx context.Context, semesterSubject *model.SemesterSubject) error {
	if semesterSubject.ID == uuid.Nil {
		semesterSubject.ID = uuid.New()
	}
	r.pairs[semesterSubject.ID] = semesterSubject
	return nil
}

func (r *fakeSemesterSubjectRepo) Save(ctx context.Context, semesterSubject *model.SemesterSubject) error {
	r.pairs[semesterSubject.ID] = semesterSubject
	return nil
}

func (r *fakeSemesterSubjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SemesterSubject, error) {
	pair, ok := r.pairs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return pair, nil
}

func (r *fakeSemesterSubjectRepo) ExistsByPair(ctx context.Context, semesterID, subjectID uuid.UUID) (bool, error) {
	for _, pair := range r.pairs {
		if pair.SemesterID == semesterID && pair.SubjectID == subjectID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSemesterSubjectRepo) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.SemesterSubject, int64, error) {
	all := make([]*model.SemesterSubject, 0, len(r.pairs))
	for _, pair := range r.pairs {
		all = append(all, pair)
	}
	return all, int64(len(all)), nil
}

func (r *fakeSemesterSubjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.pairs, id)
	return nil
}

type fakeSchoolClassRepo struct {
	classes map[uuid.UUID]*model.SchoolClass
}

func newFakeSchoolClassRepo() *fakeSchoolClassRepo {
	return &fakeSchoolClassRepo{classes: make(map[uuid.UUID]*model.SchoolClass)}
}

func (r *fakeSchoolClassRepo) Create(ctx context.Context, schoolClass *model.SchoolClass) error {
	if schoolClass.ID == uuid.Nil {
		schoolClass.ID = uuid.New()
	}
	r.classes[schoolClass.ID] = schoolClass
	return nil
}

func (r *fakeSchoolClassRepo) Save(ctx context.Context, schoolClass *model.SchoolClass) error {
	r.classes[schoolClass.ID] = schoolClass
	return nil
}

func (r *fakeSchoolClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SchoolClass, error) {
	schoolClass, ok := r.classes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return schoolClass, nil
}

func (r *fakeSchoolClassRepo) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.SchoolClass, int64, error) {
	all := make([]*model.SchoolClass, 0, len(r.classes))
	for _, schoolClass := range r.classes {
		all = append(all, schoolClass)
	}
	return all, int64(len(all)), nil
}

func (r *fakeSchoolClassRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.classes, id)
	return nil
}
