package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/99Yash/linkview/linkedin"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginTop(1)

	entryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// renderView renders the profile card for the terminal: header, current
// role, experience timeline, then the auxiliary sections.
func renderView(view *linkedin.View) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(view.Title))
	b.WriteString("\n")
	if view.Headline != "" {
		b.WriteString(subtitleStyle.Render(view.Headline))
		b.WriteString("\n")
	}
	if view.Location != "" {
		b.WriteString(mutedStyle.Render(view.Location))
		b.WriteString("\n")
	}
	if view.ProfileURL != "" {
		b.WriteString(mutedStyle.Render("@" + view.Username + " · " + view.ProfileURL))
		b.WriteString("\n")
	}
	if badges := renderBadges(view); badges != "" {
		b.WriteString(badges)
		b.WriteString("\n")
	}

	if view.Summary != "" {
		b.WriteString(sectionStyle.Render("About"))
		b.WriteString("\n")
		b.WriteString(view.Summary)
		b.WriteString("\n")
	}

	if view.Current != nil {
		b.WriteString(sectionStyle.Render("Current role"))
		b.WriteString("\n")
		b.WriteString(entryStyle.Render(renderPosition(*view.Current)))
		b.WriteString("\n")
	}

	if len(view.Experience) > 0 {
		b.WriteString(sectionStyle.Render("Experience"))
		b.WriteString("\n")
		for _, p := range view.Experience {
			b.WriteString(entryStyle.Render(renderPosition(p)))
			b.WriteString("\n")
		}
	}

	if len(view.Skills) > 0 {
		b.WriteString(sectionStyle.Render("Skills"))
		b.WriteString("\n")
		b.WriteString(strings.Join(view.Skills, " · "))
		b.WriteString("\n")
	}

	if len(view.Educations) > 0 {
		b.WriteString(sectionStyle.Render("Education"))
		b.WriteString("\n")
		for _, e := range view.Educations {
			b.WriteString(entryStyle.Render(renderEducation(e)))
			b.WriteString("\n")
		}
	}

	if len(view.Languages) > 0 {
		b.WriteString(sectionStyle.Render("Languages"))
		b.WriteString("\n")
		for _, l := range view.Languages {
			line := l.Name
			if l.Proficiency != "" {
				line += " " + mutedStyle.Render("("+l.Proficiency+")")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if len(view.Certifications) > 0 {
		b.WriteString(sectionStyle.Render("Certifications"))
		b.WriteString("\n")
		for _, c := range view.Certifications {
			line := c.Name
			if c.Issuer != "" {
				line += " " + mutedStyle.Render("by "+c.Issuer)
			}
			if c.Date != "" {
				line += " " + mutedStyle.Render(c.Date)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	switch view.Projects.State {
	case linkedin.ProjectsOK:
		if len(view.Projects.Items) > 0 {
			b.WriteString(sectionStyle.Render("Projects"))
			b.WriteString("\n")
			for _, p := range view.Projects.Items {
				name := p.Name
				if name == "" {
					name = p.Title
				}
				if name == "" {
					name = "Project"
				}
				line := name
				if p.URL != "" {
					line += " " + mutedStyle.Render(p.URL)
				}
				b.WriteString(line)
				b.WriteString("\n")
				if p.Description != "" {
					b.WriteString(mutedStyle.Render(p.Description))
					b.WriteString("\n")
				}
			}
		}
	case linkedin.ProjectsUnparseable:
		b.WriteString(sectionStyle.Render("Projects"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("present but could not be parsed"))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderBadges(view *linkedin.View) string {
	var badges []string
	if view.IsPremium {
		badges = append(badges, badgeStyle.Render("Premium"))
	}
	if view.IsOpenToWork {
		badges = append(badges, badgeStyle.Render("Open to work"))
	}
	if view.IsHiring {
		badges = append(badges, badgeStyle.Render("Hiring"))
	}
	return strings.Join(badges, " ")
}

func renderPosition(p linkedin.Position) string {
	var lines []string

	header := p.Title
	if header == "" {
		header = "—"
	}
	if p.CompanyName != "" {
		header += " @ " + p.CompanyName
	}
	lines = append(lines, subtitleStyle.Render(header))

	if r := linkedin.FormatDateRange(p.Start, p.End); r != "" {
		lines = append(lines, mutedStyle.Render(r))
	}

	var meta []string
	for _, m := range []string{p.Location, p.EmploymentType, p.LocationType, p.CompanyIndustry} {
		if m != "" {
			meta = append(meta, m)
		}
	}
	if len(meta) > 0 {
		lines = append(lines, mutedStyle.Render(strings.Join(meta, " · ")))
	}
	if p.Description != "" {
		lines = append(lines, p.Description)
	}

	return strings.Join(lines, "\n")
}

func renderEducation(e linkedin.Education) string {
	var lines []string

	header := e.SchoolName
	if header == "" {
		header = "—"
	}
	if e.Degree != "" {
		header += " · " + e.Degree
	}
	if e.FieldOfStudy != "" {
		header += ", " + e.FieldOfStudy
	}
	lines = append(lines, subtitleStyle.Render(header))

	if r := linkedin.FormatDateRange(e.Start, e.End); r != "" {
		lines = append(lines, mutedStyle.Render(r))
	}
	if e.Grade != "" {
		lines = append(lines, mutedStyle.Render("Grade: "+e.Grade))
	}
	if e.Activities != "" {
		lines = append(lines, e.Activities)
	}

	return strings.Join(lines, "\n")
}
