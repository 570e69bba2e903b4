package domain

// SubjectMark is a single subject entry inside a semester result.
type SubjectMark struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Marks       int    `json:"marks"`
	TotalMarks  int    `json:"total_marks"`
	Grade       string `json:"grade"`
}

// AcademicResult is a student's consolidated result for one semester.
type AcademicResult struct {
	ID       string
	UserID   string
	Semester int
	SGPA     float64
	Subjects []SubjectMark
}

// AttendanceRecord tracks a student's lecture attendance per subject.
type AttendanceRecord struct {
	UserID           string
	SubjectCode      string
	SubjectName      string
	TotalLectures    int
	LecturesAttended int
	Percentage       float64
	Department       *string
}
