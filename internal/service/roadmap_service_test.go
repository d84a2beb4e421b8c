package service

import (
	"testing"

	"opiol_backend/internal/model"
	"opiol_backend/internal/util"
	"opiol_backend/pkg/clientcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapService_ToggleIsPerClient(t *testing.T) {
	s := NewRoadmapService(newFixtures(t), clientcache.DefaultLimits)

	view := s.GetRoadmap("a")
	assert.Equal(t, 16, view.Total)
	assert.Equal(t, 1, view.Done)
	assert.Equal(t, 6, view.Progress)

	view, err := s.ToggleTask("a", "preparation", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Done)
	assert.Equal(t, model.RoadmapTaskDone, view.Groups[0].Tasks[1].Status)

	view, err = s.ToggleTask("a", "preparation", 1)
	require.NoError(t, err)
	assert.Equal(t, model.RoadmapTaskPending, view.Groups[0].Tasks[0].Status)

	other := s.GetRoadmap("b")
	assert.Equal(t, 1, other.Done)
	assert.Equal(t, model.RoadmapTaskDone, other.Groups[0].Tasks[0].Status)
}

func TestRoadmapService_ToggleUnknownTask(t *testing.T) {
	s := NewRoadmapService(newFixtures(t), clientcache.DefaultLimits)

	_, err := s.ToggleTask("a", "preparation", 99)
	assert.ErrorIs(t, err, util.ErrTaskNotFound)

	_, err = s.ToggleTask("a", "missing", 1)
	assert.ErrorIs(t, err, util.ErrTaskNotFound)
}

func TestRoadmapService_ViewIsACopy(t *testing.T) {
	s := NewRoadmapService(newFixtures(t), clientcache.DefaultLimits)

	view := s.GetRoadmap("a")
	view.Groups[0].Tasks[0].Status = model.RoadmapTaskPending

	assert.Equal(t, model.RoadmapTaskDone, s.GetRoadmap("a").Groups[0].Tasks[0].Status)
}

func TestRoadmapService_EvictedClientStartsOver(t *testing.T) {
	s := NewRoadmapService(newFixtures(t), clientcache.Limits{MaxClients: 1})

	_, err := s.ToggleTask("a", "preparation", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.GetRoadmap("a").Done)

	s.GetRoadmap("b")
	assert.Equal(t, 1, s.GetRoadmap("a").Done)
}
