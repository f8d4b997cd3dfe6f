package model

import "time"

// Go models for the resume document shared by the wizard, the document
// store and both exporters. Absent optional fields mean "omit this line".

type PersonalInfo struct {
	FullName string `json:"fullName" bson:"fullName" validate:"required"`
	Title    string `json:"title" bson:"title"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Phone    string `json:"phone" bson:"phone" validate:"required"`
	Location string `json:"location" bson:"location"`
	LinkedIn string `json:"linkedin" bson:"linkedin"`
	Website  string `json:"website" bson:"website"`
	Summary  string `json:"summary" bson:"summary"`
	PhotoURL string `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
}

// HasContact reports whether any contact line would be shown.
func (p *PersonalInfo) HasContact() bool {
	return p != nil && !(Blank(p.Email) && Blank(p.Phone) && Blank(p.Location) && Blank(p.LinkedIn) && Blank(p.Website))
}

type Education struct {
	Institution string `json:"institution" bson:"institution" validate:"required"`
	Degree      string `json:"degree" bson:"degree" validate:"required"`
	Field       string `json:"field" bson:"field"`
	StartDate   string `json:"startDate" bson:"startDate" validate:"required"`
	EndDate     string `json:"endDate" bson:"endDate"`
	Current     bool   `json:"current" bson:"current"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	Description string `json:"description" bson:"description"`
}

type Experience struct {
	Title       string `json:"title" bson:"title" validate:"required"`
	Company     string `json:"company" bson:"company" validate:"required"`
	Location    string `json:"location" bson:"location"`
	StartDate   string `json:"startDate" bson:"startDate" validate:"required"`
	EndDate     string `json:"endDate" bson:"endDate"`
	Current     bool   `json:"current" bson:"current"`
	Description string `json:"description" bson:"description"`
}

type Skill struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

type Language struct {
	Name  string `json:"name" bson:"name"`
	Level string `json:"level" bson:"level"`
}

type Skills struct {
	Skills    []Skill    `json:"skills" bson:"skills"`
	Languages []Language `json:"languages" bson:"languages"`
}

type Project struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Date        string `json:"date" bson:"date"`
	Link        string `json:"link" bson:"link"`
}

type Certification struct {
	Name   string `json:"name" bson:"name"`
	Issuer string `json:"issuer" bson:"issuer"`
	Date   string `json:"date" bson:"date"`
	Link   string `json:"link" bson:"link"`
}

type Reference struct {
	Name     string `json:"name" bson:"name"`
	Position string `json:"position" bson:"position"`
	Company  string `json:"company" bson:"company"`
	Contact  string `json:"contact" bson:"contact"`
}

type AdditionalInfo struct {
	Projects       []Project       `json:"projects" bson:"projects"`
	Certifications []Certification `json:"certifications" bson:"certifications"`
	References     []Reference     `json:"references" bson:"references"`
}

type Resume struct {
	ID                 string         `json:"id,omitempty" bson:"id"`
	PersonalInfo       *PersonalInfo  `json:"personalInfo" bson:"personalInfo"`
	Education          []Education    `json:"education" bson:"education"`
	Experience         []Experience   `json:"experience" bson:"experience"`
	Skills             Skills         `json:"skills" bson:"skills"`
	AdditionalInfo     AdditionalInfo `json:"additionalInfo" bson:"additionalInfo"`
	SelectedTemplateID *string        `json:"selectedTemplateId" bson:"selectedTemplateId"`
	UpdatedAt          time.Time      `json:"updatedAt,omitempty" bson:"updatedAt"`
}

// Personal returns the personal info or an empty value, never nil.
func (r *Resume) Personal() PersonalInfo {
	if r == nil || r.PersonalInfo == nil {
		return PersonalInfo{}
	}
	return *r.PersonalInfo
}

// TemplateID returns the selected template id or "".
func (r *Resume) TemplateID() string {
	if r == nil || r.SelectedTemplateID == nil {
		return ""
	}
	return *r.SelectedTemplateID
}
