package model

import (
	"fmt"
	"strconv"
)

// DraftField 草稿字段名，与前端 JSON 字段保持一致
type DraftField string

const (
	FieldEducationLevel     DraftField = "educationLevel"
	FieldGPA                DraftField = "gpa"
	FieldCurrentUniversity  DraftField = "currentUniversity"
	FieldDestinationCountry DraftField = "destinationCountry"
	FieldTargetDegree       DraftField = "targetDegree"
	FieldIntendedField      DraftField = "intendedField"
	FieldEnglishTestTaken   DraftField = "englishTestTaken"
	FieldEnglishTestScore   DraftField = "englishTestScore"
	FieldTargetYear         DraftField = "targetYear"
)

// DraftFields lists the fields in declaration order.
var DraftFields = []DraftField{
	FieldEducationLevel,
	FieldGPA,
	FieldCurrentUniversity,
	FieldDestinationCountry,
	FieldTargetDegree,
	FieldIntendedField,
	FieldEnglishTestTaken,
	FieldEnglishTestScore,
	FieldTargetYear,
}

// Draft 草稿档案：个人资料向导中尚未提交的答案
// swagger:model Draft
type Draft struct {
	EducationLevel     string `json:"educationLevel" validate:"required"`
	GPA                string `json:"gpa" validate:"required"`
	CurrentUniversity  string `json:"currentUniversity" validate:"required"`
	DestinationCountry string `json:"destinationCountry" validate:"required"`
	TargetDegree       string `json:"targetDegree" validate:"required"`
	IntendedField      string `json:"intendedField" validate:"required"`
	EnglishTestTaken   bool   `json:"englishTestTaken"`
	EnglishTestScore   string `json:"englishTestScore,omitempty"`
	TargetYear         string `json:"targetYear" validate:"required"`
}

func DefaultDraft() Draft {
	return Draft{}
}

// Set 修改单个字段。字符串字段只接受字符串，englishTestTaken 接受 bool 或 "true"/"false"
func (d *Draft) Set(field DraftField, value interface{}) error {
	if field == FieldEnglishTestTaken {
		switch v := value.(type) {
		case bool:
			d.EnglishTestTaken = v
			return nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("field %s: %w", field, ErrInvalidFieldValue)
			}
			d.EnglishTestTaken = b
			return nil
		default:
			return fmt.Errorf("field %s: %w", field, ErrInvalidFieldValue)
		}
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %s: %w", field, ErrInvalidFieldValue)
	}

	switch field {
	case FieldEducationLevel:
		d.EducationLevel = s
	case FieldGPA:
		d.GPA = s
	case FieldCurrentUniversity:
		d.CurrentUniversity = s
	case FieldDestinationCountry:
		d.DestinationCountry = s
	case FieldTargetDegree:
		d.TargetDegree = s
	case FieldIntendedField:
		d.IntendedField = s
	case FieldEnglishTestScore:
		d.EnglishTestScore = s
	case FieldTargetYear:
		d.TargetYear = s
	default:
		return fmt.Errorf("field %s: %w", field, ErrUnknownField)
	}
	return nil
}

// DraftInput 是 /profile-setup/api 的请求体。englishTestTaken 为指针，
// 缺失或为 null 时校验失败，而不是被当作 false
// swagger:model DraftInput
type DraftInput struct {
	EducationLevel     string `json:"educationLevel" validate:"required"`
	GPA                string `json:"gpa" validate:"required"`
	CurrentUniversity  string `json:"currentUniversity" validate:"required"`
	DestinationCountry string `json:"destinationCountry" validate:"required"`
	TargetDegree       string `json:"targetDegree" validate:"required"`
	IntendedField      string `json:"intendedField" validate:"required"`
	EnglishTestTaken   *bool  `json:"englishTestTaken" validate:"required"`
	EnglishTestScore   string `json:"englishTestScore,omitempty"`
	TargetYear         string `json:"targetYear" validate:"required"`
}

// NewDraftInput 把 d 包装成输入，englishTestTaken 视为已给出
func NewDraftInput(d Draft) DraftInput {
	taken := d.EnglishTestTaken
	return DraftInput{
		EducationLevel:     d.EducationLevel,
		GPA:                d.GPA,
		CurrentUniversity:  d.CurrentUniversity,
		DestinationCountry: d.DestinationCountry,
		TargetDegree:       d.TargetDegree,
		IntendedField:      d.IntendedField,
		EnglishTestTaken:   &taken,
		EnglishTestScore:   d.EnglishTestScore,
		TargetYear:         d.TargetYear,
	}
}

func (in DraftInput) Draft() Draft {
	d := Draft{
		EducationLevel:     in.EducationLevel,
		GPA:                in.GPA,
		CurrentUniversity:  in.CurrentUniversity,
		DestinationCountry: in.DestinationCountry,
		TargetDegree:       in.TargetDegree,
		IntendedField:      in.IntendedField,
		EnglishTestScore:   in.EnglishTestScore,
		TargetYear:         in.TargetYear,
	}
	if in.EnglishTestTaken != nil {
		d.EnglishTestTaken = *in.EnglishTestTaken
	}
	return d
}
