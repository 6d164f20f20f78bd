package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
	saves int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *model.User) error {
	r.saves++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.User, int64, error) {
	all := r.sorted()
	return page(all, offset, limit), int64(len(all)), nil
}

func (r *fakeUserRepo) FindActive(ctx context.Context, sort string, offset, limit int) ([]*model.User, int64, error) {
	var active []*model.User
	for _, user := range r.sorted() {
		if user.Active {
			active = append(active, user)
		}
	}
	return page(active, offset, limit), int64(len(active)), nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) sorted() []*model.User {
	all := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	return all
}

func page(users []*model.User, offset, limit int) []*model.User {
	if offset >= len(users) {
		return nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end]
}

type fakeTestRepo struct {
	tests map[uuid.UUID]*model.Test
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: make(map[uuid.UUID]*model.Test)}
}

func (r *fakeTestRepo) Create(ctx context.Context, test *model.Test) error {
	if test.ID == uuid.Nil {
		test.ID = uuid.New()
	}
	r.tests[test.ID] = test
	return nil
}

func (r *fakeTestRepo) Save(ctx context.Context, test *model.Test) error {
	r.tests[test.ID] = test
	return nil
}

func (r *fakeTestRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Test, error) {
	test, ok := r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return test, nil
}

func (r *fakeTestRepo) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Test, int64, error) {
	all := make([]*model.Test, 0, len(r.tests))
	for _, test := range r.tests {
		all = append(all, test)
	}
	return all, int64(len(all)), nil
}

func (r *fakeTestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.tests, id)
	return nil
}

type fakeGradeRepo struct {
	grades    map[uuid.UUID]*model.Grade
	rows      []model.SemesterGradeRow
	lastQuery repository.GradeQuery
	lastSort  string

	// optional backing stores for search matching
	users *fakeUserRepo
	tests *fakeTestRepo
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{grades: make(map[uuid.UUID]*model.Grade)}
}

func (r *fakeGradeRepo) Create(ctx context.Context, grade *model.Grade) error {
	if grade.ID == uuid.Nil {
		grade.ID = uuid.New()
	}
	r.grades[grade.ID] = grade
	return nil
}

func (r *fakeGradeRepo) Save(ctx context.Context, grade *model.Grade) error {
	r.grades[grade.ID] = grade
	return nil
}

func (r *fakeGradeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Grade, error) {
	grade, ok := r.grades[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return grade, nil
}

func (r *fakeGradeRepo) Find(ctx context.Context, query repository.GradeQuery, sort string, offset, limit int) ([]*model.Grade, int64, error) {
	r.lastQuery = query
	r.lastSort = sort
	var matched []*model.Grade
	for _, grade := range r.grades {
		if query.StudentID != nil && grade.StudentID != *query.StudentID {
			continue
		}
		if query.TestID != nil && (grade.TestID == nil || *grade.TestID != *query.TestID) {
			continue
		}
		if query.Search != "" && !r.matchesSearch(grade, query.Search) {
			continue
		}
		matched = append(matched, grade)
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeGradeRepo) matchesSearch(grade *model.Grade, search string) bool {
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), strings.ToLower(search))
	}
	if r.users != nil {
		if user, ok := r.users.users[grade.StudentID]; ok {
			if contains(user.Username) {
				return true
			}
			if user.FirstName != nil && contains(*user.FirstName) {
				return true
			}
			if user.LastName != nil && contains(*user.LastName) {
				return true
			}
		}
	}
	if r.tests != nil && grade.TestID != nil {
		if test, ok := r.tests.tests[*grade.TestID]; ok && contains(test.Name) {
			return true
		}
	}
	return false
}

func (r *fakeGradeRepo) SemesterGradeRows(ctx context.Context, semesterID uuid.UUID, studentID *uuid.UUID) ([]model.SemesterGradeRow, error) {
	if studentID == nil {
		return r.rows, nil
	}
	var matched []model.SemesterGradeRow
	for _, row := range r.rows {
		if row.StudentID == *studentID {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func (r *fakeGradeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.grades, id)
	return nil
}

type fakeThrottle struct {
	failures map[string]int
	max      int
}

func newFakeThrottle(max int) *fakeThrottle {
	return &fakeThrottle{failures: make(map[string]int), max: max}
}

func (t *fakeThrottle) Blocked(ctx context.Context, username string) (bool, error) {
	return t.failures[username] >= t.max, nil
}

func (t *fakeThrottle) RecordFailure(ctx context.Context, username string) error {
	t.failures[username]++
	return nil
}

func (t *fakeThrottle) Reset(ctx context.Context, username string) error {
	delete(t.failures, username)
	return nil
}
