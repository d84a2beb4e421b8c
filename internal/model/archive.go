package model

// StudentProfile 往届学生档案（只读静态数据）
type StudentProfile struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	University    string  `json:"university" yaml:"university"`
	Field         string  `json:"field" yaml:"field"`
	Country       string  `json:"country" yaml:"country"`
	Degree        string  `json:"degree" yaml:"degree"`
	IELTSScore    float64 `json:"ieltsScore" yaml:"ielts_score"`
	GPA           float64 `json:"gpa" yaml:"gpa"`
	AdmitYear     int     `json:"admitYear" yaml:"admit_year"`
	SOPPreview    string  `json:"sopPreview" yaml:"sop_preview"`
	ResumePreview string  `json:"resumePreview" yaml:"resume_preview"`
}

type ArchiveFilterOptions struct {
	Countries []string `json:"countries" yaml:"countries"`
	Degrees   []string `json:"degrees" yaml:"degrees"`
	Fields    []string `json:"fields" yaml:"fields"`
}

// ArchiveQuery 档案页的筛选条件，"All" 或空值表示不过滤
type ArchiveQuery struct {
	Search  string `form:"q"`
	Country string `form:"country"`
	Field   string `form:"field"`
	Degree  string `form:"degree"`
}
