package export

import (
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	r := &model.Resume{PersonalInfo: &model.PersonalInfo{FullName: "Jane  Mary Doe"}}
	assert.Equal(t, "Jane_Mary_Doe.pdf", FileName(r, domain.FormatPDF))
	assert.Equal(t, "Jane_Mary_Doe.docx", FileName(r, domain.FormatDOCX))
	assert.Equal(t, "resume.pdf", FileName(&model.Resume{}, domain.FormatPDF))
	assert.Equal(t, "resume.docx", FileName(&model.Resume{PersonalInfo: &model.PersonalInfo{FullName: "  "}}, domain.FormatDOCX))
}
