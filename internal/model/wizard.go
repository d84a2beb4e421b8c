package model

import "time"

type WizardState string

const (
	WizardStep1      WizardState = "step1"
	WizardStep2      WizardState = "step2"
	WizardStep3      WizardState = "step3"
	WizardSubmitting WizardState = "submitting"
	WizardSucceeded  WizardState = "succeeded"
	WizardFailed     WizardState = "failed"
)

const (
	FirstStep = 1
	LastStep  = 3
)

type NotificationKind string

const (
	NotificationLoading NotificationKind = "loading"
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification 提交结果提示，仅存在于内存中
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	// 0 表示不自动关闭（loading）
	AutoDismissMs int64 `json:"autoDismissMs"`
}

func NewNotification(kind NotificationKind, message string, autoDismiss time.Duration) *Notification {
	if kind == NotificationLoading {
		autoDismiss = 0
	}
	return &Notification{Kind: kind, Message: message, AutoDismissMs: autoDismiss.Milliseconds()}
}

// WizardView 向导的可序列化视图状态
// swagger:model WizardView
type WizardView struct {
	Step         int           `json:"step"`
	State        WizardState   `json:"state"`
	Draft        Draft         `json:"draft"`
	Submitting   bool          `json:"submitting"`
	Notification *Notification `json:"notification,omitempty"`
	// 提交成功并经过延迟后设置为跳转目标
	RedirectTo string `json:"redirectTo,omitempty"`
}

func (v WizardView) NotificationMessage() string {
	if v.Notification == nil {
		return ""
	}
	return v.Notification.Message
}
