// Package types provides type definitions for structured data used throughout the resume-forge system.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ContactInfo holds the candidate identity and contact fields.
// Optional fields are pointers so "not present" is distinguishable from
// an empty string.
type ContactInfo struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	School     string   `json:"school"`
	Degree     string   `json:"degree"`
	Location   string   `json:"location"`
	Date       string   `json:"date"`
	GPA        *string  `json:"gpa,omitempty"`
	Coursework []string `json:"coursework,omitempty"`
}

// Experience represents a single work experience entry.
type Experience struct {
	Company  string   `json:"company"`
	Position string   `json:"position"`
	Location string   `json:"location"`
	Date     string   `json:"date"`
	Bullets  []string `json:"bullets"`
}

// Project represents a single project entry.
type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
	Date         *string  `json:"date,omitempty"`
	Bullets      []string `json:"bullets"`
}

// SkillCategory is one labeled group of skills.
type SkillCategory struct {
	Name   string
	Skills []string
}

// Skills is an ordered mapping from category label to skill list.
// encoding/json maps do not preserve key order, and category order is
// the rendering order, so Skills keeps categories in a slice and
// marshals to/from a JSON object itself.
type Skills []SkillCategory

// MarshalJSON emits the categories as a JSON object in slice order.
func (s Skills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		items := cat.Skills
		if items == nil {
			items = []string{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order.
func (s *Skills) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills: expected JSON object, got %v", tok)
	}

	out := Skills{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected string key, got %v", keyTok)
		}

		var items []string
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("skills: category %q: %w", key, err)
		}
		out = append(out, SkillCategory{Name: key, Skills: items})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// Get returns the skill list for a category label, if present.
func (s Skills) Get(name string) ([]string, bool) {
	for _, cat := range s {
		if cat.Name == name {
			return cat.Skills, true
		}
	}
	return nil, false
}

// ResumeData is the canonical structured representation of a candidate
// profile. Instances are immutable once produced; tailoring creates a
// new instance rather than mutating in place.
type ResumeData struct {
	Contact    ContactInfo  `json:"contact"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects,omitempty"`
	Skills     Skills       `json:"skills"`
}

// ApplicationContext is the job context that qualifies a tailoring or
// Q&A request.
type ApplicationContext struct {
	JobTitle       string `json:"job_title" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// Validate validates the ApplicationContext using the validator.
func (c *ApplicationContext) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// QuestionResponse is one answered application question. Entries are
// append-only and associated with a single tailored resume.
type QuestionResponse struct {
	Question string `json:"question"`
	Response string `json:"response"`
}
