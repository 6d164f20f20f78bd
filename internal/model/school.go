package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subject struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Semester struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
}

func (s *Semester) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SemesterSubject joins a semester and a subject, unique per pair. Deleting
// a referenced semester or subject is blocked at the store.
type SemesterSubject struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SemesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_semester_subject_pair" json:"semester_id"`
	Semester   Semester  `gorm:"constraint:OnDelete:RESTRICT" json:"semester,omitempty"`
	SubjectID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_semester_subject_pair" json:"subject_id"`
	Subject    Subject   `gorm:"constraint:OnDelete:RESTRICT" json:"subject,omitempty"`
}

func (s *SemesterSubject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type SchoolClass struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	SemesterSubjectID uuid.UUID       `gorm:"type:uuid;not null" json:"semester_subject_id"`
	SemesterSubject   SemesterSubject `gorm:"constraint:OnDelete:RESTRICT" json:"semester_subject,omitempty"`
	Tests             []Test          `gorm:"foreignKey:SchoolClassID;constraint:OnDelete:CASCADE" json:"tests,omitempty"`
}

func (s *SchoolClass) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Test struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string          `gorm:"size:100;not null" json:"name"`
	Date              time.Time       `gorm:"not null" json:"date"`
	Comment           *string         `gorm:"size:1000" json:"comment,omitempty"`
	SemesterSubjectID uuid.UUID       `gorm:"type:uuid;not null" json:"semester_subject_id"`
	SemesterSubject   SemesterSubject `gorm:"constraint:OnDelete:RESTRICT" json:"semester_subject,omitempty"`
	SchoolClassID     uuid.UUID       `gorm:"type:uuid;not null" json:"school_class_id"`
}

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
