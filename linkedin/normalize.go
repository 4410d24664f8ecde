package linkedin

import (
	"fmt"
	"sort"
	"strings"
)

// fallbackTitle is shown when neither a name nor a username is present.
const fallbackTitle = "LinkedIn User"

// Sort sentinels for the experience timeline. An entry with no end year is
// ongoing, which for ordering purposes means "infinitely recent"; an entry
// with no start year sorts last among entries sharing an end year.
const (
	ongoingEndYear   = 9999
	unknownStartYear = 0
)

// View is the display-ready model derived from a RawProfile. It is
// recomputed on every Normalize call and holds no references back into
// mutable state.
type View struct {
	Title      string `json:"title"`
	Username   string `json:"username,omitempty"`
	Headline   string `json:"headline,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Location   string `json:"location,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`

	IsPremium    bool `json:"isPremium,omitempty"`
	IsOpenToWork bool `json:"isOpenToWork,omitempty"`
	IsHiring     bool `json:"isHiring,omitempty"`

	// Experience is sorted most-recent-first; Current is the first ongoing
	// entry, or nil when every entry has an end year.
	Experience []Position `json:"experience,omitempty"`
	Current    *Position  `json:"current,omitempty"`

	Skills         []string            `json:"skills,omitempty"`
	Educations     []Education         `json:"educations,omitempty"`
	Languages      []Language          `json:"languages,omitempty"`
	Certifications []CertificationView `json:"certifications,omitempty"`
	Projects       ProjectsView        `json:"projects"`

	SupportedLocales     []LocaleEntry     `json:"supportedLocales,omitempty"`
	MultiLocaleFirstName map[string]string `json:"multiLocaleFirstName,omitempty"`
	MultiLocaleLastName  map[string]string `json:"multiLocaleLastName,omitempty"`
	MultiLocaleHeadline  map[string]string `json:"multiLocaleHeadline,omitempty"`

	ID  int64  `json:"id,omitempty"`
	URN string `json:"urn,omitempty"`
}

// CertificationView is a certification entry with its display fields
// already resolved across the upstream's naming variants.
type CertificationView struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// ProjectsView distinguishes three states: no projects section at all,
// a parsed item list, and a section that was present but not shaped like
// either known variant.
type ProjectsView struct {
	State string    `json:"state"` // "absent", "ok" or "unparseable"
	Items []Project `json:"items,omitempty"`
}

// Projects section states.
const (
	ProjectsAbsent      = "absent"
	ProjectsOK          = "ok"
	ProjectsUnparseable = "unparseable"
)

// firstNonEmpty returns the first accessor result that is non-empty after
// trimming. Fallback chains throughout normalization are expressed with it
// so the per-field policy stays an ordered list rather than nested
// conditionals.
func firstNonEmpty(accessors ...func() string) string {
	for _, accessor := range accessors {
		if v := strings.TrimSpace(accessor()); v != "" {
			return v
		}
	}
	return ""
}

// Normalize derives a View from a raw upstream document. It never fails:
// missing fields resolve through fallback chains and malformed auxiliary
// sections degrade to explicit markers.
func Normalize(doc *RawProfile) *View {
	if doc == nil {
		doc = &RawProfile{}
	}

	username := strings.TrimSpace(doc.Username)

	view := &View{
		Title: firstNonEmpty(
			func() string { return fullName(doc.FirstName, doc.LastName) },
			func() string { return username },
			func() string { return fallbackTitle },
		),
		Username:   username,
		Headline:   strings.TrimSpace(doc.Headline),
		Summary:    doc.Summary,
		Location:   resolveLocation(doc.Geo),
		AvatarURL:  resolveAvatar(doc),
		ProfileURL: ProfileURL(username),

		IsPremium:    doc.IsPremium,
		IsOpenToWork: doc.IsOpenToWork,
		IsHiring:     doc.IsHiring,

		Educations: doc.Educations,
		Languages:  doc.Languages,

		SupportedLocales:     doc.SupportedLocales,
		MultiLocaleFirstName: doc.MultiLocaleFirstName,
		MultiLocaleLastName:  doc.MultiLocaleLastName,
		MultiLocaleHeadline:  doc.MultiLocaleHeadline,

		ID:  doc.ID,
		URN: doc.URN,
	}

	view.Experience = sortedExperience(doc)
	view.Current = currentPosition(view.Experience)
	view.Skills = skillNames(doc.Skills)
	view.Certifications = certificationViews(doc.Certifications)
	view.Projects = projectsView(doc.Projects)

	return view
}

func fullName(first, last string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{first, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func resolveLocation(geo *Geo) string {
	if geo == nil {
		return ""
	}
	return firstNonEmpty(
		func() string { return geo.Full },
		func() string {
			parts := make([]string, 0, 2)
			for _, p := range []string{geo.City, geo.Country} {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
			return strings.Join(parts, ", ")
		},
	)
}

func resolveAvatar(doc *RawProfile) string {
	return firstNonEmpty(
		func() string { return doc.ProfilePicture },
		func() string {
			for _, img := range doc.ProfilePictures {
				if img.URL != "" {
					return img.URL
				}
			}
			return ""
		},
	)
}

// sortedExperience assembles the experience timeline: the full position list
// when present, else the short one, sorted most-recent-first. The sort is
// stable so equal inputs always produce the same order.
func sortedExperience(doc *RawProfile) []Position {
	src := doc.FullPositions
	if src == nil {
		src = doc.Position
	}
	if len(src) == 0 {
		return nil
	}

	positions := make([]Position, len(src))
	copy(positions, src)

	sort.SliceStable(positions, func(i, j int) bool {
		ei, ej := endYear(positions[i]), endYear(positions[j])
		if ei != ej {
			return ei > ej
		}
		return startYear(positions[i]) > startYear(positions[j])
	})
	return positions
}

func endYear(p Position) int {
	if p.End != nil && p.End.Year > 0 {
		return p.End.Year
	}
	return ongoingEndYear
}

func startYear(p Position) int {
	if p.Start != nil && p.Start.Year > 0 {
		return p.Start.Year
	}
	return unknownStartYear
}

// currentPosition picks the first ongoing entry. Membership, not order,
// determines the result; when no entry is open-ended there is no current
// position and the display must not guess one.
func currentPosition(positions []Position) *Position {
	for i := range positions {
		if positions[i].End == nil || positions[i].End.Year == 0 {
			current := positions[i]
			return &current
		}
	}
	return nil
}

func skillNames(skills []Skill) []string {
	var names []string
	for _, s := range skills {
		if name := strings.TrimSpace(s.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func certificationViews(certs []Certification) []CertificationView {
	if len(certs) == 0 {
		return nil
	}
	views := make([]CertificationView, 0, len(certs))
	for _, c := range certs {
		views = append(views, CertificationView{
			Name: firstNonEmpty(
				func() string { return c.Name },
				func() string { return c.Title },
				func() string { return "Certification" },
			),
			Issuer: c.Issuer,
			Date: firstNonEmpty(
				func() string { return c.Date },
				func() string { return c.Issued },
				func() string { return c.Year.String() },
			),
			URL: c.URL,
		})
	}
	return views
}

func projectsView(list ProjectList) ProjectsView {
	switch {
	case !list.Present:
		return ProjectsView{State: ProjectsAbsent}
	case list.Unparseable:
		return ProjectsView{State: ProjectsUnparseable}
	default:
		return ProjectsView{State: ProjectsOK, Items: list.Items}
	}
}

// FormatDatePart renders a partial date: "" without a year, "2021" with a
// year only, "2021-06" with a month.
func FormatDatePart(d *DatePart) string {
	if d == nil || d.Year == 0 {
		return ""
	}
	if d.Month == 0 {
		return fmt.Sprintf("%d", d.Year)
	}
	return fmt.Sprintf("%d-%02d", d.Year, d.Month)
}

// FormatDateRange renders a start-end pair. An absent end means the range is
// ongoing and renders as "Present"; a range with no known dates renders "".
func FormatDateRange(start, end *DatePart) string {
	s, e := FormatDatePart(start), FormatDatePart(end)
	if e == "" {
		e = "Present"
	}
	if s == "" && FormatDatePart(end) == "" {
		return ""
	}
	if s == "" {
		return e
	}
	return s + " – " + e
}
