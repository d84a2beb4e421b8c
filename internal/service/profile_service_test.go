package service

import (
	"testing"

	"opiol_backend/internal/model"
	"opiol_backend/pkg/clientcache"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestProfileService_UpdateIsPerClient(t *testing.T) {
	s := NewProfileService(newFixtures(t), clientcache.DefaultLimits)

	initial := s.GetProfile("a")
	assert.Equal(t, "Sarah Johnson", initial.UserInfo.Name)
	assert.Len(t, initial.PremiumBenefits, 4)

	info := initial.UserInfo
	info.Name = "<b>Sara</b>"
	info.TargetCountry = "Canada"
	got := s.UpdateProfile("a", info)

	want := initial.UserInfo
	want.Name = "Sara"
	want.TargetCountry = "Canada"
	if diff := cmp.Diff(want, got.UserInfo); diff != "" {
		t.Errorf("UpdateProfile() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, initial.UsageStats, got.UsageStats)
	assert.Equal(t, "Sarah Johnson", s.GetProfile("b").UserInfo.Name)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	d := NewDashboardService(newFixtures(t)).GetDashboard()

	assert.Equal(t, "Hi, Amir 👋", d.Greeting)
	assert.Equal(t, 25, d.ProgressPercent)
	assert.Len(t, d.UpcomingTasks, 3)
	assert.Contains(t, d.QuickLinks, model.QuickLink{Title: "Roadmap", Path: "/roadmap"})
}
