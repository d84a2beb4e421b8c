package service

import (
	"sync"

	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/util"
	"opiol_backend/pkg/clientcache"
)

// RoadmapView 路线图页面数据
type RoadmapView struct {
	Groups   []model.RoadmapTaskGroup `json:"groups"`
	Done     int                      `json:"done"`
	Total    int                      `json:"total"`
	Progress int                      `json:"progress"`
}

// RoadmapService 每个客户端一份从静态数据复制出来的任务状态
type RoadmapService struct {
	Fixtures *repository.FixtureRepository

	mu     sync.Mutex
	states *clientcache.Cache[[]model.RoadmapTaskGroup]
}

func NewRoadmapService(fixtures *repository.FixtureRepository, limits clientcache.Limits) *RoadmapService {
	return &RoadmapService{
		Fixtures: fixtures,
		states:   clientcache.New[[]model.RoadmapTaskGroup](limits, nil),
	}
}

// groupsLocked 返回的切片与缓存共享底层数组，切换状态直接修改即可
func (s *RoadmapService) groupsLocked(clientID string) []model.RoadmapTaskGroup {
	return s.states.GetOrCreate(clientID, s.Fixtures.RoadmapTaskGroups)
}

func (s *RoadmapService) GetRoadmap(clientID string) RoadmapView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildRoadmapView(s.groupsLocked(clientID))
}

// ToggleTask 切换任务状态 pending <-> done
func (s *RoadmapService) ToggleTask(clientID, groupID string, taskID int) (RoadmapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := s.groupsLocked(clientID)
	for gi := range groups {
		if groups[gi].ID != groupID {
			continue
		}
		for ti := range groups[gi].Tasks {
			if groups[gi].Tasks[ti].ID == taskID {
				groups[gi].Tasks[ti].Toggle()
				return buildRoadmapView(groups), nil
			}
		}
	}
	return RoadmapView{}, util.ErrTaskNotFound
}

func buildRoadmapView(groups []model.RoadmapTaskGroup) RoadmapView {
	view := RoadmapView{Groups: model.CloneTaskGroups(groups)}
	for _, g := range groups {
		for _, t := range g.Tasks {
			view.Total++
			if t.Status == model.RoadmapTaskDone {
				view.Done++
			}
		}
	}
	if view.Total > 0 {
		view.Progress = view.Done * 100 / view.Total
	}
	return view
}
