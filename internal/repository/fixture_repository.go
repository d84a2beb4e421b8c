package repository

import (
	"embed"
	"fmt"
	"opiol_backend/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

// FixtureRepository 启动时加载的只读静态数据，加载后不再修改
type FixtureRepository struct {
	taskGroups    []model.RoadmapTaskGroup
	profiles      []model.StudentProfile
	filters       model.ArchiveFilterOptions
	categories    []model.AdvisorCategory
	advisorScript model.AdvisorScript
	dashboard     model.DashboardFixture
	profilePage   model.ProfileFixture
}

func NewFixtureRepository() (*FixtureRepository, error) {
	r := &FixtureRepository{}

	var roadmap struct {
		Groups []model.RoadmapTaskGroup `yaml:"groups"`
	}
	if err := loadFixture("roadmap.yaml", &roadmap); err != nil {
		return nil, err
	}
	r.taskGroups = roadmap.Groups

	var archive struct {
		Profiles []model.StudentProfile    `yaml:"profiles"`
		Filters  model.ArchiveFilterOptions `yaml:"filters"`
	}
	if err := loadFixture("archive.yaml", &archive); err != nil {
		return nil, err
	}
	r.profiles, r.filters = archive.Profiles, archive.Filters

	var advisor struct {
		Categories []model.AdvisorCategory `yaml:"categories"`
		Script     model.AdvisorScript     `yaml:"script"`
	}
	if err := loadFixture("advisor.yaml", &advisor); err != nil {
		return nil, err
	}
	r.categories, r.advisorScript = advisor.Categories, advisor.Script

	if err := loadFixture("dashboard.yaml", &r.dashboard); err != nil {
		return nil, err
	}
	if err := loadFixture("profile.yaml", &r.profilePage); err != nil {
		return nil, err
	}

	return r, nil
}

func loadFixture(name string, out interface{}) error {
	data, err := fixtureFS.ReadFile("fixtures/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}

// 以下方法返回副本，调用方可以自由修改

func (r *FixtureRepository) RoadmapTaskGroups() []model.RoadmapTaskGroup {
	return model.CloneTaskGroups(r.taskGroups)
}

func (r *FixtureRepository) StudentProfiles() []model.StudentProfile {
	return append([]model.StudentProfile(nil), r.profiles...)
}

func (r *FixtureRepository) ArchiveFilters() model.ArchiveFilterOptions {
	return model.ArchiveFilterOptions{
		Countries: append([]string(nil), r.filters.Countries...),
		Degrees:   append([]string(nil), r.filters.Degrees...),
		Fields:    append([]string(nil), r.filters.Fields...),
	}
}

func (r *FixtureRepository) AdvisorCategories() []model.AdvisorCategory {
	return append([]model.AdvisorCategory(nil), r.categories...)
}

func (r *FixtureRepository) AdvisorScript() model.AdvisorScript {
	replies := make(map[string]string, len(r.advisorScript.Replies))
	for k, v := range r.advisorScript.Replies {
		replies[k] = v
	}
	return model.AdvisorScript{
		Keywords: append([]string(nil), r.advisorScript.Keywords...),
		Replies:  replies,
		Fallback: r.advisorScript.Fallback,
	}
}

func (r *FixtureRepository) Dashboard() model.DashboardFixture {
	d := r.dashboard
	d.UpcomingTasks = append([]model.UpcomingTask(nil), r.dashboard.UpcomingTasks...)
	d.QuickLinks = append([]model.QuickLink(nil), r.dashboard.QuickLinks...)
	return d
}

func (r *FixtureRepository) ProfilePage() model.ProfileFixture {
	p := r.profilePage
	p.PremiumBenefits = append([]model.PremiumBenefit(nil), r.profilePage.PremiumBenefits...)
	return p
}
