package models

import "gorm.io/gorm"

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"size:255;not null"`
	Description  string `json:"description" gorm:"type:text"`
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	Instructor   User   `json:"-" gorm:"foreignKey:InstructorID"`
	PriceCents   int64  `json:"price_cents" gorm:"default:0"`
	Published    bool   `json:"published" gorm:"default:false"`

	Lessons   []Lesson   `json:"-" gorm:"foreignKey:CourseID"`
	Resources []Resource `json:"-" gorm:"foreignKey:CourseID"`
	Quizzes   []Quiz     `json:"-" gorm:"foreignKey:CourseID"`
}

// Lesson represents ordered course content
type Lesson struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Title    string `json:"title" gorm:"size:255;not null"`
	Content  string `json:"content" gorm:"type:text"` // markdown or html
	VideoURL string `json:"video_url" gorm:"size:1024"`
	Position int    `json:"position" gorm:"default:0"` // display order within the course
}

// Resource represents an external material attached to a course
type Resource struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Title        string `json:"title" gorm:"size:255;not null"`
	ResourceType string `json:"resource_type" gorm:"size:50;not null"` // pdf, link, file
	URL          string `json:"url" gorm:"size:1024;not null"`
}
