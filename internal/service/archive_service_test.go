package service

import (
	"testing"

	"opiol_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func names(profiles []model.StudentProfile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.Name)
	}
	return out
}

func TestArchiveService_Search(t *testing.T) {
	s := NewArchiveService(newFixtures(t))

	tests := []struct {
		name  string
		query model.ArchiveQuery
		want  []string
	}{
		{"no filters", model.ArchiveQuery{}, []string{"Sarah Johnson", "Mohammed Ali", "Emma Chen", "Alex Rodriguez"}},
		{"all means everything", model.ArchiveQuery{Country: "All", Field: "All", Degree: "All"}, []string{"Sarah Johnson", "Mohammed Ali", "Emma Chen", "Alex Rodriguez"}},
		{"search by university is case-insensitive", model.ArchiveQuery{Search: "eth zurich"}, []string{"Emma Chen"}},
		{"search by field", model.ArchiveQuery{Search: "engineering"}, []string{"Mohammed Ali", "Alex Rodriguez"}},
		{"country filter", model.ArchiveQuery{Country: "Canada"}, []string{"Mohammed Ali"}},
		{"field filter is exact", model.ArchiveQuery{Field: "Data"}, []string{}},
		{"degree filter", model.ArchiveQuery{Degree: "PhD"}, []string{}},
		{"combined", model.ArchiveQuery{Search: "sarah", Country: "Germany", Field: "Computer Science", Degree: "MSc"}, []string{"Sarah Johnson"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(s.Search(tt.query)))
		})
	}
}

func TestArchiveService_Filters(t *testing.T) {
	s := NewArchiveService(newFixtures(t))

	f := s.Filters()
	assert.Equal(t, "All", f.Countries[0])
	assert.Equal(t, []string{"All", "BSc", "MSc", "PhD"}, f.Degrees)
}
