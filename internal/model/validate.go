package model

import (
	_ "embed"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// ValidateDocument validates a raw resume JSON document against the embedded
// resume schema.
func ValidateDocument(raw []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}

// Step identifies a wizard step.
type Step string

const (
	StepPersonal   Step = "personal"
	StepEducation  Step = "education"
	StepExperience Step = "experience"
	StepSkills     Step = "skills"
	StepAdditional Step = "additional"
	StepTemplate   Step = "template"
)

var ErrUnknownStep = errors.New("unknown step")

// ValidationError lists the offending fields of one wizard step, keyed by
// their json path.
type ValidationError struct {
	Step   Step
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return fmt.Sprintf("%s step invalid: %s", e.Step, strings.Join(parts, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStep checks the fields a wizard step requires before the user may
// move on. The additional-info step has no required fields.
func ValidateStep(step Step, r *Resume) error {
	fields := map[string]string{}
	switch step {
	case StepPersonal:
		p := r.Personal()
		collect(fields, "personalInfo", validate.Struct(&p))
	case StepEducation:
		for i := range r.Education {
			collect(fields, fmt.Sprintf("education[%d]", i), validate.Struct(&r.Education[i]))
		}
	case StepExperience:
		for i := range r.Experience {
			collect(fields, fmt.Sprintf("experience[%d]", i), validate.Struct(&r.Experience[i]))
		}
	case StepSkills:
		switch n := r.Skills.ValidSkillCount(); {
		case n == 0:
			fields["skills"] = "at least one skill is required"
		case n > MaxSkills:
			fields["skills"] = fmt.Sprintf("at most %d skills are allowed", MaxSkills)
		}
		for i, l := range r.Skills.Languages {
			if !ValidLevel(l.Level) {
				fields[fmt.Sprintf("languages[%d].level", i)] = "unknown level"
			}
		}
	case StepAdditional:
	case StepTemplate:
		if r.TemplateID() == "" {
			fields["selectedTemplateId"] = "please select a template"
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStep, step)
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Step: step, Fields: fields}
}

func collect(fields map[string]string, prefix string, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			fields[prefix] = err.Error()
		}
		return
	}
	for _, fe := range verrs {
		msg := "is required"
		if fe.Tag() == "email" {
			msg = "invalid email address"
		}
		fields[prefix+"."+fe.Field()] = msg
	}
}
