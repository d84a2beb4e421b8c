package repository

import (
	"testing"

	"opiol_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixtureRepository_LoadsEmbeddedFixtures(t *testing.T) {
	r, err := NewFixtureRepository()
	require.NoError(t, err)

	groups := r.RoadmapTaskGroups()
	require.Len(t, groups, 4)
	assert.Equal(t, "preparation", groups[0].ID)
	assert.Equal(t, model.RoadmapTaskDone, groups[0].Tasks[0].Status)
	assert.Equal(t, "2024-03-15", groups[0].Tasks[1].DueDate)

	assert.Len(t, r.StudentProfiles(), 4)
	assert.Contains(t, r.ArchiveFilters().Countries, "Switzerland")

	assert.Len(t, r.AdvisorCategories(), 4)
	script := r.AdvisorScript()
	assert.Equal(t, []string{"sop", "ielts", "visa", "funding"}, script.Keywords)
	for _, k := range script.Keywords {
		assert.NotEmpty(t, script.Replies[k], k)
	}
	assert.NotEmpty(t, script.Fallback)

	assert.Equal(t, "Amir", r.Dashboard().StudentName)
	assert.Equal(t, "sarah.j@example.com", r.ProfilePage().UserInfo.Email)
	assert.Len(t, r.ProfilePage().PremiumBenefits, 4)
}

func TestFixtureRepository_ReturnsCopies(t *testing.T) {
	r, err := NewFixtureRepository()
	require.NoError(t, err)

	groups := r.RoadmapTaskGroups()
	groups[0].Tasks[0].Toggle()
	assert.Equal(t, model.RoadmapTaskDone, r.RoadmapTaskGroups()[0].Tasks[0].Status)

	profiles := r.StudentProfiles()
	profiles[0].Name = "changed"
	assert.Equal(t, "Sarah Johnson", r.StudentProfiles()[0].Name)
}
