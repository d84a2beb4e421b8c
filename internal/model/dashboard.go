package model

type UpcomingTask struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Status  string `json:"status" yaml:"status"`
	DueDate string `json:"dueDate" yaml:"due_date"`
}

type DashboardFixture struct {
	StudentName     string         `yaml:"student_name"`
	ProgressPercent int            `yaml:"progress_percent"`
	UpcomingTasks   []UpcomingTask `yaml:"upcoming_tasks"`
	QuickLinks      []QuickLink    `yaml:"quick_links"`
}

type QuickLink struct {
	Title string `json:"title" yaml:"title"`
	Path  string `json:"path" yaml:"path"`
}
