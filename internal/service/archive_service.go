package service

import (
	"strings"

	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/util"
)

type ArchiveService struct {
	Fixtures *repository.FixtureRepository
}

func NewArchiveService(fixtures *repository.FixtureRepository) *ArchiveService {
	return &ArchiveService{Fixtures: fixtures}
}

// Search 按姓名、学校、专业做不区分大小写的包含匹配，国家、专业、学位精确匹配
func (s *ArchiveService) Search(q model.ArchiveQuery) []model.StudentProfile {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]model.StudentProfile, 0)
	for _, p := range s.Fixtures.StudentProfiles() {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.University), term) &&
			!strings.Contains(strings.ToLower(p.Field), term) {
			continue
		}
		if !matchesFilter(q.Country, p.Country) || !matchesFilter(q.Field, p.Field) || !matchesFilter(q.Degree, p.Degree) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (s *ArchiveService) Filters() model.ArchiveFilterOptions {
	return s.Fixtures.ArchiveFilters()
}

func matchesFilter(selected, value string) bool {
	return selected == "" || selected == util.ArchiveFilterAll || selected == value
}
