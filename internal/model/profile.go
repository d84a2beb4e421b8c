package model

// UserInfo 个人主页上可编辑的信息，只保存在内存中
type UserInfo struct {
	Name          string `json:"name" yaml:"name" binding:"required"`
	Email         string `json:"email" yaml:"email" binding:"required,email"`
	Field         string `json:"field" yaml:"field"`
	TargetCountry string `json:"targetCountry" yaml:"target_country"`
	Degree        string `json:"degree" yaml:"degree"`
	IELTSScore    string `json:"ieltsScore" yaml:"ielts_score"`
	GPA           string `json:"gpa" yaml:"gpa"`
}

type UsageStats struct {
	RoadmapTasks int `json:"roadmapTasks" yaml:"roadmap_tasks"`
	ArchiveViews int `json:"archiveViews" yaml:"archive_views"`
	AIChats      int `json:"aiChats" yaml:"ai_chats"`
}

type PremiumBenefit struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

type ProfileFixture struct {
	UserInfo        UserInfo         `yaml:"user_info"`
	UsageStats      UsageStats       `yaml:"usage_stats"`
	PremiumBenefits []PremiumBenefit `yaml:"premium_benefits"`
}
