package model

type RoadmapTaskStatus string

const (
	RoadmapTaskPending RoadmapTaskStatus = "pending"
	RoadmapTaskDone    RoadmapTaskStatus = "done"
)

type RoadmapTask struct {
	ID      int               `json:"id" yaml:"id"`
	Title   string            `json:"title" yaml:"title"`
	Status  RoadmapTaskStatus `json:"status" yaml:"status"`
	DueDate string            `json:"dueDate,omitempty" yaml:"due_date"`
}

type RoadmapTaskGroup struct {
	ID    string        `json:"id" yaml:"id"`
	Title string        `json:"title" yaml:"title"`
	Tasks []RoadmapTask `json:"tasks" yaml:"tasks"`
}

// Toggle 在 pending 与 done 之间切换
func (t *RoadmapTask) Toggle() {
	if t.Status == RoadmapTaskDone {
		t.Status = RoadmapTaskPending
		return
	}
	t.Status = RoadmapTaskDone
}

// CloneTaskGroups 深拷贝任务分组，避免修改只读的静态数据
func CloneTaskGroups(groups []RoadmapTaskGroup) []RoadmapTaskGroup {
	out := make([]RoadmapTaskGroup, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].Tasks = append([]RoadmapTask(nil), g.Tasks...)
	}
	return out
}
