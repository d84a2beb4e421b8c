package util

import "errors"

var (
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrWizardClosed     = errors.New("wizard session closed")
	ErrWizardFinished   = errors.New("profile already submitted")
	ErrNotOnLastStep    = errors.New("submission is only available on the last step")
	ErrTaskNotFound     = errors.New("roadmap task not found")
	ErrEmptyMessage     = errors.New("message must not be empty")
)
