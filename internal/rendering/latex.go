package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// Resume renders the section markup for a structured record.
//
// Pure and deterministic: the same record always yields byte-identical
// output. Sections appear in fixed order - contact header, Education,
// Experience, Projects, Technical Skills - and a section whose sequence
// is empty or absent is omitted entirely, heading included. Entries are
// emitted in record order; the renderer never re-sorts.
func Resume(r *types.ResumeData) string {
	var sb strings.Builder

	writeContactHeader(&sb, r.Contact)
	writeEducation(&sb, r.Education)
	writeExperience(&sb, r.Experience)
	writeProjects(&sb, r.Projects)
	writeSkills(&sb, r.Skills)

	return sb.String()
}

func writeContactHeader(sb *strings.Builder, c types.ContactInfo) {
	sb.WriteString("\\begin{center}\n")
	fmt.Fprintf(sb, "    \\textbf{\\Huge \\scshape %s} \\\\ \\vspace{1pt}\n", EscapeLaTeX(c.Name))
	sb.WriteString("    \\small ")

	var parts []string
	if c.Phone != nil {
		parts = append(parts, EscapeLaTeX(*c.Phone))
	}
	parts = append(parts, fmt.Sprintf("\\href{mailto:%s}{\\underline{%s}}", EscapeLaTeX(c.Email), EscapeLaTeX(c.Email)))
	if c.LinkedIn != nil {
		parts = append(parts, fmt.Sprintf("\\href{https://%s}{\\underline{LinkedIn}}", EscapeLaTeX(*c.LinkedIn)))
	}
	if c.GitHub != nil {
		parts = append(parts, fmt.Sprintf("\\href{https://%s}{\\underline{GitHub}}", EscapeLaTeX(*c.GitHub)))
	}
	if c.Website != nil {
		parts = append(parts, fmt.Sprintf("\\href{https://%s}{\\underline{%s}}", EscapeLaTeX(*c.Website), EscapeLaTeX(*c.Website)))
	}

	sb.WriteString(strings.Join(parts, " $|$ "))
	sb.WriteString("\n\\end{center}\n\n")
}

func writeEducation(sb *strings.Builder, entries []types.Education) {
	if len(entries) == 0 {
		return
	}

	sb.WriteString("%-----------EDUCATION-----------\n")
	sb.WriteString("\\section{Education}\n")
	sb.WriteString("  \\resumeSubHeadingListStart\n")

	for _, edu := range entries {
		sb.WriteString("    \\resumeSubheading\n")
		fmt.Fprintf(sb, "      {%s}{%s}\n", EscapeLaTeX(edu.School), EscapeLaTeX(edu.Location))
		fmt.Fprintf(sb, "      {%s}{%s}\n", EscapeLaTeX(edu.Degree), EscapeLaTeX(edu.Date))

		hasGPA := edu.GPA != nil
		hasCoursework := len(edu.Coursework) > 0
		if hasGPA || hasCoursework {
			sb.WriteString("      \\resumeItemListStart\n")
			if hasGPA {
				fmt.Fprintf(sb, "        \\resumeItem{GPA: %s}\n", EscapeLaTeX(*edu.GPA))
			}
			if hasCoursework {
				fmt.Fprintf(sb, "        \\resumeItem{Relevant Coursework: %s}\n", escapeJoin(edu.Coursework))
			}
			sb.WriteString("      \\resumeItemListEnd\n")
		}
	}

	sb.WriteString("  \\resumeSubHeadingListEnd\n\n")
}

func writeExperience(sb *strings.Builder, entries []types.Experience) {
	if len(entries) == 0 {
		return
	}

	sb.WriteString("%-----------EXPERIENCE-----------\n")
	sb.WriteString("\\section{Experience}\n")
	sb.WriteString("  \\resumeSubHeadingListStart\n")

	for _, exp := range entries {
		sb.WriteString("    \\resumeSubheading\n")
		fmt.Fprintf(sb, "      {%s}{%s}\n", EscapeLaTeX(exp.Position), EscapeLaTeX(exp.Date))
		fmt.Fprintf(sb, "      {%s}{%s}\n", EscapeLaTeX(exp.Company), EscapeLaTeX(exp.Location))

		if len(exp.Bullets) > 0 {
			sb.WriteString("      \\resumeItemListStart\n")
			for _, bullet := range exp.Bullets {
				fmt.Fprintf(sb, "        \\resumeItem{%s}\n", EscapeLaTeX(bullet))
			}
			sb.WriteString("      \\resumeItemListEnd\n")
		}
	}

	sb.WriteString("  \\resumeSubHeadingListEnd\n\n")
}

func writeProjects(sb *strings.Builder, entries []types.Project) {
	if len(entries) == 0 {
		return
	}

	sb.WriteString("%-----------PROJECTS-----------\n")
	sb.WriteString("\\section{Projects}\n")
	sb.WriteString("  \\resumeSubHeadingListStart\n")

	for _, project := range entries {
		header := fmt.Sprintf("\\textbf{%s} $|$ \\emph{%s}", EscapeLaTeX(project.Name), escapeJoin(project.Technologies))
		date := ""
		if project.Date != nil {
			date = EscapeLaTeX(*project.Date)
		}

		sb.WriteString("    \\resumeProjectHeading\n")
		fmt.Fprintf(sb, "      {%s}{%s}\n", header, date)

		if len(project.Bullets) > 0 {
			sb.WriteString("      \\resumeItemListStart\n")
			for _, bullet := range project.Bullets {
				fmt.Fprintf(sb, "        \\resumeItem{%s}\n", EscapeLaTeX(bullet))
			}
			sb.WriteString("      \\resumeItemListEnd\n")
		}
	}

	sb.WriteString("  \\resumeSubHeadingListEnd\n\n")
}

func writeSkills(sb *strings.Builder, skills types.Skills) {
	if len(skills) == 0 {
		return
	}

	sb.WriteString("%-----------TECHNICAL SKILLS-----------\n")
	sb.WriteString("\\section{Technical Skills}\n")
	sb.WriteString(" \\begin{itemize}[leftmargin=0.15in, label={}]\n")
	sb.WriteString("    \\small{\\item{\n")

	lines := make([]string, 0, len(skills))
	for _, cat := range skills {
		lines = append(lines, fmt.Sprintf("     \\textbf{%s}{: %s} \\\\", EscapeLaTeX(cat.Name), escapeJoin(cat.Skills)))
	}
	sb.WriteString(strings.Join(lines, "\n"))

	sb.WriteString("\n    }}\n")
	sb.WriteString(" \\end{itemize}\n\n")
}

// escapeJoin escapes each item and joins with the fixed ", " delimiter.
func escapeJoin(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = EscapeLaTeX(item)
	}
	return strings.Join(escaped, ", ")
}
