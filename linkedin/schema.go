package linkedin

import (
	"encoding/json"
	"strings"
)

// RawProfile is the untrusted profile document returned by the upstream
// provider. Every field is optional; unknown keys are ignored. Fields whose
// shape varies across API versions use tolerant wrapper types so that a
// malformed section degrades instead of failing the whole decode.
type RawProfile struct {
	ID       int64  `json:"id,omitempty"`
	URN      string `json:"urn,omitempty"`
	Username string `json:"username,omitempty"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Headline  string `json:"headline,omitempty"`
	Summary   string `json:"summary,omitempty"`

	IsPremium    bool `json:"isPremium,omitempty"`
	IsOpenToWork bool `json:"isOpenToWork,omitempty"`
	IsHiring     bool `json:"isHiring,omitempty"`

	ProfilePicture  string  `json:"profilePicture,omitempty"`
	ProfilePictures []Image `json:"profilePictures,omitempty"`

	Geo *Geo `json:"geo,omitempty"`

	Skills         []Skill         `json:"skills,omitempty"`
	Educations     []Education     `json:"educations,omitempty"`
	Position       []Position      `json:"position,omitempty"`
	FullPositions  []Position      `json:"fullPositions,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Projects       ProjectList     `json:"projects,omitempty"`

	SupportedLocales     []LocaleEntry     `json:"supportedLocales,omitempty"`
	MultiLocaleFirstName map[string]string `json:"multiLocaleFirstName,omitempty"`
	MultiLocaleLastName  map[string]string `json:"multiLocaleLastName,omitempty"`
	MultiLocaleHeadline  map[string]string `json:"multiLocaleHeadline,omitempty"`
}

// Geo holds the profile's location fields.
type Geo struct {
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Full        string `json:"full,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Image is one entry of a sized-image list.
type Image struct {
	URL    string `json:"url,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Skill is a single skill entry; only the name matters for display.
type Skill struct {
	Name string `json:"name,omitempty"`
}

// Language is a language entry with an optional proficiency level.
type Language struct {
	Name        string `json:"name,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// DatePart is a partial calendar date. A zero component means "not given";
// a zero Year means the whole date is unknown (or, for an end date, that the
// entry is ongoing).
type DatePart struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
}

// IsZero reports whether no component of the date is set.
func (d *DatePart) IsZero() bool {
	return d == nil || (d.Year == 0 && d.Month == 0 && d.Day == 0)
}

// Position is an employment entry under either the short "position" key or
// the full "fullPositions" key.
type Position struct {
	CompanyID          FlexString        `json:"companyId,omitempty"`
	CompanyName        string            `json:"companyName,omitempty"`
	CompanyUsername    string            `json:"companyUsername,omitempty"`
	CompanyURL         string            `json:"companyURL,omitempty"`
	CompanyLogo        string            `json:"companyLogo,omitempty"`
	CompanyIndustry    string            `json:"companyIndustry,omitempty"`
	CompanyStaffRange  string            `json:"companyStaffCountRange,omitempty"`
	Title              string            `json:"title,omitempty"`
	MultiLocaleTitle   map[string]string `json:"multiLocaleTitle,omitempty"`
	MultiLocaleCompany map[string]string `json:"multiLocaleCompanyName,omitempty"`
	Location           string            `json:"location,omitempty"`
	LocationType       string            `json:"locationType,omitempty"`
	Description        string            `json:"description,omitempty"`
	EmploymentType     string            `json:"employmentType,omitempty"`
	Start              *DatePart         `json:"start,omitempty"`
	End                *DatePart         `json:"end,omitempty"`
}

// Education is a school entry. The logo arrives as a sized-image list and
// may be null.
type Education struct {
	SchoolName   string     `json:"schoolName,omitempty"`
	SchoolID     FlexString `json:"schoolId,omitempty"`
	Degree       string     `json:"degree,omitempty"`
	FieldOfStudy string     `json:"fieldOfStudy,omitempty"`
	Grade        string     `json:"grade,omitempty"`
	Description  string     `json:"description,omitempty"`
	Activities   string     `json:"activities,omitempty"`
	URL          string     `json:"url,omitempty"`
	Logo         []Image    `json:"logo,omitempty"`
	Start        *DatePart  `json:"start,omitempty"`
	End          *DatePart  `json:"end,omitempty"`
}

// Certification entries are heterogeneous across API versions: the display
// name arrives under "name" or "title", the date under "date", "issued" or a
// numeric "year".
type Certification struct {
	Name   string     `json:"name,omitempty"`
	Title  string     `json:"title,omitempty"`
	Issuer string     `json:"issuer,omitempty"`
	Date   string     `json:"date,omitempty"`
	Issued string     `json:"issued,omitempty"`
	Year   FlexString `json:"year,omitempty"`
	URL    string     `json:"url,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// FlexString decodes a JSON string or number into a string. Anything else
// decodes to "".
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "" || s == "null":
		*f = ""
	case s[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(n.String())
	}
	return nil
}

// LocaleEntry is a supported-locale entry: either a plain locale string or
// an opaque object. Objects are kept as their raw JSON text for display.
type LocaleEntry struct {
	Value string
	Raw   json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LocaleEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.Value = s
		return nil
	}
	l.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// String renders the entry for display.
func (l LocaleEntry) String() string {
	if l.Value != "" {
		return l.Value
	}
	return string(l.Raw)
}

// MarshalJSON implements json.Marshaler.
func (l LocaleEntry) MarshalJSON() ([]byte, error) {
	if l.Raw != nil {
		return l.Raw, nil
	}
	return json.Marshal(l.Value)
}

// ProjectList accepts the two known shapes of the "projects" field: a bare
// array of projects, or an object wrapping the array under "items". Any
// other present shape is recorded as unparseable rather than failing the
// document decode; absent is distinct from unparseable.
type ProjectList struct {
	Present     bool
	Unparseable bool
	Total       int
	Items       []Project
}

type projectsWrapper struct {
	Total int       `json:"total,omitempty"`
	Items []Project `json:"items,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *ProjectList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	p.Present = true

	var items []Project
	if err := json.Unmarshal(data, &items); err == nil {
		p.Items = items
		p.Total = len(items)
		return nil
	}

	var wrapper projectsWrapper
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Items != nil {
		p.Items = wrapper.Items
		p.Total = wrapper.Total
		if p.Total == 0 {
			p.Total = len(wrapper.Items)
		}
		return nil
	}

	p.Unparseable = true
	return nil
}

// MarshalJSON implements json.Marshaler, round-tripping the parsed shape.
func (p ProjectList) MarshalJSON() ([]byte, error) {
	switch {
	case !p.Present:
		return []byte("null"), nil
	case p.Unparseable:
		return json.Marshal(map[string]string{"error": "unparseable"})
	default:
		return json.Marshal(projectsWrapper{Total: p.Total, Items: p.Items})
	}
}

// DecodeProfile decodes a raw upstream payload. Unknown keys are ignored and
// union-shaped sections degrade via their tolerant unmarshalers; the only
// decode failure is a body that is not a JSON object at all.
func DecodeProfile(data []byte) (*RawProfile, error) {
	var doc RawProfile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (f FlexString) String() string { return string(f) }
