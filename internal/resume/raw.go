// Package resume loads raw section records and shapes them into normalized resume data.
package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Raw mirrors the per-user section records as the data layer stores them.
// Field names follow the stored records, not the normalized types.
type Raw struct {
	PersonalInfo RawPersonalInfo  `json:"personalInfo"`
	Links        *RawLinks        `json:"links,omitempty"`
	Education    []RawEducation   `json:"education,omitempty"`
	Experience   []RawExperience  `json:"experience,omitempty"`
	Projects     []RawProject     `json:"projects,omitempty"`
	Skills       *RawSkills       `json:"skills,omitempty"`
	Achievements *RawAchievements `json:"achievements,omitempty"`
}

// RawPersonalInfo is the user row
type RawPersonalInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RawLinks is the single links row per user
type RawLinks struct {
	Portfolio string `json:"portfolio"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	LeetCode  string `json:"leetcode"`
}

// RawEducation is one education row
type RawEducation struct {
	Institution         string `json:"institution"`
	InstitutionLocation string `json:"institutionLocation"`
	Degree              string `json:"degree"`
	FieldOfStudy        string `json:"fieldOfStudy"`
	StartDate           string `json:"startDate"`
	IsCurrent           bool   `json:"isCurrent"`
	EndDate             string `json:"endDate"`
	GPA                 string `json:"gpa,omitempty"`
}

// RawExperience is one experience row; Description is a JSON column
type RawExperience struct {
	CompanyName     string       `json:"companyName"`
	CompanyLocation string       `json:"companyLocation"`
	Position        string       `json:"position"`
	StartDate       string       `json:"startDate"`
	IsCurrent       bool         `json:"isCurrent"`
	EndDate         string       `json:"endDate"`
	Description     FlexibleList `json:"description"`
}

// RawProject is one project row; Description and Technologies are JSON columns
type RawProject struct {
	Title            string       `json:"title"`
	Description      FlexibleList `json:"description"`
	Technologies     FlexibleList `json:"technologies"`
	GitHubRepository string       `json:"githubrepository"`
	LiveLink         string       `json:"livelink"`
}

// RawSkills is the single skills row per user, one nullable JSON list per category column
type RawSkills struct {
	Languages      FlexibleList `json:"Languages"`
	Visualization  FlexibleList `json:"Visualization"`
	Cloud          FlexibleList `json:"Cloud"`
	Frameworks     FlexibleList `json:"Frameworks"`
	Database       FlexibleList `json:"Database"`
	Tools          FlexibleList `json:"Tools"`
	Webdevelopment FlexibleList `json:"Webdevelopment"`
}

// RawAchievements is the single achievements row per user
type RawAchievements struct {
	Text FlexibleList `json:"text"`
}

// FlexibleList absorbs JSON columns that drifted between a list and a plain string.
// A string holding an encoded JSON array is decoded as the array.
// Non-string list elements are stringified.
type FlexibleList struct {
	Items  []string
	Text   string
	IsText bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleList) UnmarshalJSON(data []byte) error {
	*f = FlexibleList{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if inner := strings.TrimSpace(s); strings.HasPrefix(inner, "[") {
			var items []any
			if err := json.Unmarshal([]byte(inner), &items); err == nil {
				f.Items = stringifyAll(items)
				return nil
			}
		}
		f.Text = s
		f.IsText = true
		return nil
	case '[':
		var items []any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		f.Items = stringifyAll(items)
		return nil
	default:
		var scalar any
		if err := json.Unmarshal(trimmed, &scalar); err != nil {
			return err
		}
		f.Text = stringify(scalar)
		f.IsText = true
		return nil
	}
}

// MarshalJSON implements json.Marshaler, writing back the shape that was read
func (f FlexibleList) MarshalJSON() ([]byte, error) {
	if f.IsText {
		return json.Marshal(f.Text)
	}
	if f.Items == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.Items)
}

// Scan implements sql.Scanner for JSON and JSONB columns
func (f *FlexibleList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = FlexibleList{}
		return nil
	case []byte:
		return f.UnmarshalJSON(v)
	case string:
		return f.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported FlexibleList source type %T", src)
	}
}

func stringifyAll(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, stringify(item))
	}
	return out
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
