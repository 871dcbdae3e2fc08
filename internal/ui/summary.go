package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryFile is one written file shown in the summary.
type SummaryFile struct {
	Path string
	Rows int
}

// Summary describes a finished dataset build.
type Summary struct {
	Words   int
	Length  int
	Valid   int
	Invalid int
	Dropped int
	Train   int
	Test    int
	Files   []SummaryFile
}

// printer formats counts with thousands separators.
var printer = message.NewPrinter(language.English)

// Lines returns the summary body as plain text lines.
func (s Summary) Lines() []string {
	lines := []string{
		printer.Sprintf("Admissible words: %d", s.Words),
		printer.Sprintf("Target length:    %d", s.Length),
		printer.Sprintf("Entries:          %d valid, %d invalid, %d dropped", s.Valid, s.Invalid, s.Dropped),
		printer.Sprintf("Split:            %d train / %d test", s.Train, s.Test),
	}
	if len(s.Files) > 0 {
		lines = append(lines, "")
		for _, f := range s.Files {
			lines = append(lines, printer.Sprintf("  %s (%d rows)", f.Path, f.Rows))
		}
	}
	return lines
}

// RenderSummary renders the summary as a rounded card with a check-marked
// title. With colours disabled it returns plain text.
func RenderSummary(theme *Theme, title string, s Summary) string {
	body := strings.Join(s.Lines(), "\n")
	if theme.NoColor {
		return title + "\n\n" + body
	}

	success := lipgloss.NewStyle().Foreground(theme.Colors.Success)
	muted := lipgloss.NewStyle().Foreground(theme.Colors.Muted)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Colors.Border).
		Padding(0, 2)

	titleLine := success.Render("\u2713") + " " + lipgloss.NewStyle().Bold(true).Render(title)
	return card.Render(titleLine + "\n\n" + muted.Render(body))
}
