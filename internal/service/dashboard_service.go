package service

import (
	"fmt"

	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
)

type DashboardService struct {
	Fixtures *repository.FixtureRepository
}

func NewDashboardService(fixtures *repository.FixtureRepository) *DashboardService {
	return &DashboardService{Fixtures: fixtures}
}

type Dashboard struct {
	Greeting        string               `json:"greeting"`
	Subtitle        string               `json:"subtitle"`
	ProgressPercent int                  `json:"progressPercent"`
	UpcomingTasks   []model.UpcomingTask `json:"upcomingTasks"`
	QuickLinks      []model.QuickLink    `json:"quickLinks"`
}

// GetDashboard 仪表盘为静态展示数据，进度不随路线图变化
func (s *DashboardService) GetDashboard() Dashboard {
	d := s.Fixtures.Dashboard()
	return Dashboard{
		Greeting:        fmt.Sprintf("Hi, %s 👋", d.StudentName),
		Subtitle:        "Welcome back! Let's continue your journey to studying abroad.",
		ProgressPercent: d.ProgressPercent,
		UpcomingTasks:   d.UpcomingTasks,
		QuickLinks:      d.QuickLinks,
	}
}
