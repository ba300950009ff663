package models

// Lesson (Урок)
type Lesson struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"not null" json:"title"`
	Content    string `gorm:"not null" json:"content"`
	OrderIndex int    `gorm:"not null" json:"order_index"`
	CourseID   uint   `gorm:"index;not null" json:"course_id"`
	SectionID  *uint  `gorm:"index" json:"-"`

	Materials []LessonMaterial `json:"materials" gorm:"constraint:OnDelete:CASCADE;"`
}

// LessonMaterial (Материал урока): видео с YouTube или файл из папки materials.
type LessonMaterial struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	LessonID  uint   `gorm:"index;not null" json:"-"`
	Type      string `gorm:"not null" json:"type"` // "video", "file"
	Title     string `gorm:"not null" json:"title"`
	YoutubeID string `json:"youtube_id"`
	FilePath  string `json:"file_path"`
}
