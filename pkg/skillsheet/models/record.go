package models

import "strings"

// ResumeRecord is the extraction result for one document.
// A nil pointer or nil slice means the field was not found.
type ResumeRecord struct {
	// Name is the candidate's full name.
	Name *string `json:"name"`
	// Gender is "male" or "female".
	Gender *string `json:"gender"`
	// Age is the age in years as a decimal string.
	Age *string `json:"age"`
	// Birthdate is formatted as YYYY-MM-DD.
	Birthdate *string `json:"birthdate"`
	// Nationality is one of the known nationality names.
	Nationality *string `json:"nationality"`
	// ArrivalYear is the four-digit year of arrival in Japan.
	ArrivalYear *string `json:"arrival_year"`
	// Experience is the IT experience, e.g. "5年" or "3年6ヶ月".
	Experience *string `json:"experience"`
	// JapaneseLevel is a JLPT level or fluency description.
	JapaneseLevel *string `json:"japanese_level"`
	// Skills lists technologies in first-seen order.
	Skills []string `json:"skills"`
	// WorkScope lists development phases in lifecycle order.
	WorkScope []string `json:"work_scope"`
	// Roles lists role codes by seniority, highest first.
	Roles []string `json:"roles"`
}

// StringPtr returns a pointer to the trimmed value, or nil when it is blank.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Normalize replaces blank scalars and empty lists with nil.
func (r *ResumeRecord) Normalize() {
	for _, p := range []**string{
		&r.Name, &r.Gender, &r.Age, &r.Birthdate, &r.Nationality,
		&r.ArrivalYear, &r.Experience, &r.JapaneseLevel,
	} {
		if *p != nil {
			*p = StringPtr(**p)
		}
	}
	r.Skills = compact(r.Skills)
	r.WorkScope = compact(r.WorkScope)
	r.Roles = compact(r.Roles)
}

// FoundCount returns how many of the eleven fields hold a value.
func (r *ResumeRecord) FoundCount() int {
	n := 0
	for _, p := range []*string{
		r.Name, r.Gender, r.Age, r.Birthdate, r.Nationality,
		r.ArrivalYear, r.Experience, r.JapaneseLevel,
	} {
		if p != nil {
			n++
		}
	}
	for _, l := range [][]string{r.Skills, r.WorkScope, r.Roles} {
		if len(l) > 0 {
			n++
		}
	}
	return n
}

// Fields returns the names of populated fields in record order.
func (r *ResumeRecord) Fields() []string {
	var out []string
	add := func(name string, ok bool) {
		if ok {
			out = append(out, name)
		}
	}
	add("name", r.Name != nil)
	add("gender", r.Gender != nil)
	add("age", r.Age != nil)
	add("birthdate", r.Birthdate != nil)
	add("nationality", r.Nationality != nil)
	add("arrival_year", r.ArrivalYear != nil)
	add("experience", r.Experience != nil)
	add("japanese_level", r.JapaneseLevel != nil)
	add("skills", len(r.Skills) > 0)
	add("work_scope", len(r.WorkScope) > 0)
	add("roles", len(r.Roles) > 0)
	return out
}

func compact(list []string) []string {
	var out []string
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
