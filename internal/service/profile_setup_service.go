package service

import (
	"context"
	"errors"

	"opiol_backend/internal/model"
	"opiol_backend/internal/util"
	"opiol_backend/internal/validation"
	"opiol_backend/pkg/mockapi"
)

// ErrSubmissionRejected 模拟接口返回 success=false
var ErrSubmissionRejected = errors.New("submission rejected")

// ProfileSetupService 服务端再次校验草稿，然后交给模拟接口提交。
// 同时作为向导的 Submitter 使用
type ProfileSetupService struct {
	Validator *validation.Validator
	Transport *mockapi.Client
}

func NewProfileSetupService(v *validation.Validator, transport *mockapi.Client) *ProfileSetupService {
	return &ProfileSetupService{Validator: v, Transport: transport}
}

// Submit 校验失败时返回 *validation.FieldError 且不会调用模拟接口；
// 接口失败时原样返回 *mockapi.Error
func (s *ProfileSetupService) Submit(ctx context.Context, draft model.Draft, lang string) (string, error) {
	valid, ferr := s.Validator.Validate(util.SanitizeDraft(draft), lang)
	if ferr != nil {
		return "", ferr
	}
	return s.post(ctx, valid)
}

// SubmitInput 用于 HTTP 请求体，englishTestTaken 缺失时同样返回 *validation.FieldError
func (s *ProfileSetupService) SubmitInput(ctx context.Context, in model.DraftInput, lang string) (string, error) {
	sanitized := model.NewDraftInput(util.SanitizeDraft(in.Draft()))
	sanitized.EnglishTestTaken = in.EnglishTestTaken

	valid, ferr := s.Validator.ValidateInput(sanitized, lang)
	if ferr != nil {
		return "", ferr
	}
	return s.post(ctx, valid)
}

func (s *ProfileSetupService) post(ctx context.Context, valid model.Draft) (string, error) {
	resp, err := s.Transport.Post(ctx, valid)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", ErrSubmissionRejected
	}
	return resp.Message, nil
}
