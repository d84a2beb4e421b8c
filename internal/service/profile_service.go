package service

import (
	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/util"
	"opiol_backend/pkg/clientcache"
)

type ProfilePage struct {
	UserInfo        model.UserInfo         `json:"userInfo"`
	UsageStats      model.UsageStats       `json:"usageStats"`
	PremiumBenefits []model.PremiumBenefit `json:"premiumBenefits"`
}

// ProfileService 个人主页信息只保存在内存中，每个客户端从静态数据初始化
type ProfileService struct {
	Fixtures *repository.FixtureRepository

	infos *clientcache.Cache[model.UserInfo]
}

func NewProfileService(fixtures *repository.FixtureRepository, limits clientcache.Limits) *ProfileService {
	return &ProfileService{
		Fixtures: fixtures,
		infos:    clientcache.New[model.UserInfo](limits, nil),
	}
}

func (s *ProfileService) GetProfile(clientID string) ProfilePage {
	page := s.Fixtures.ProfilePage()

	if info, ok := s.infos.Get(clientID); ok {
		page.UserInfo = info
	}

	return ProfilePage{
		UserInfo:        page.UserInfo,
		UsageStats:      page.UsageStats,
		PremiumBenefits: page.PremiumBenefits,
	}
}

func (s *ProfileService) UpdateProfile(clientID string, info model.UserInfo) ProfilePage {
	info.Name = util.StripTags(info.Name)
	info.Email = util.StripTags(info.Email)
	info.Field = util.StripTags(info.Field)
	info.TargetCountry = util.StripTags(info.TargetCountry)
	info.Degree = util.StripTags(info.Degree)
	info.IELTSScore = util.StripTags(info.IELTSScore)
	info.GPA = util.StripTags(info.GPA)

	s.infos.Put(clientID, info)

	return s.GetProfile(clientID)
}
