package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eskelund/doselog/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary    = lipgloss.Color("#7C3AED") // Purple
	colorSecondary  = lipgloss.Color("#10B981") // Green
	colorMuted      = lipgloss.Color("#6B7280") // Gray
	colorWarning    = lipgloss.Color("#F59E0B") // Yellow
	colorError      = lipgloss.Color("#EF4444") // Red
	colorSuccess    = lipgloss.Color("#10B981") // Green
	colorDaily      = lipgloss.Color("#3B82F6") // Blue
	colorMedication = colorPrimary

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleWeight = lipgloss.NewStyle().
			Bold(true)

	styleDose = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	styleDaily = lipgloss.NewStyle().
			Foreground(colorDaily)

	styleMedication = lipgloss.NewStyle().
			Foreground(colorMedication)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// TypeBadge renders an entry type label with its color.
func (c *CLIFormatter) TypeBadge(t model.EntryType) string {
	if !c.IsColorEnabled() {
		return string(t)
	}
	if t == model.TypeMedication {
		return styleMedication.Render(string(t))
	}
	return styleDaily.Render(string(t))
}

// Weight renders a formatted weight value.
func (c *CLIFormatter) Weight(kg float64) string {
	if c.IsColorEnabled() {
		return styleWeight.Render(FormatWeight(kg))
	}
	return FormatWeight(kg)
}

// Dose renders a formatted dose value.
func (c *CLIFormatter) Dose(dose string) string {
	if c.IsColorEnabled() {
		return styleDose.Render(dose)
	}
	return dose
}

// Note renders a note.
func (c *CLIFormatter) Note(note string) string {
	if c.IsColorEnabled() {
		return styleNote.Render(note)
	}
	return note
}

// PrintEntry prints one entry line for history listings.
func (c *CLIFormatter) PrintEntry(e *model.Entry) {
	c.Printf("  %s  %-10s", FormatDate(e.Date), c.TypeBadge(e.Type))
	if e.Dose != "" {
		c.Printf("  %s", c.Dose(e.Dose))
	}
	if e.Weight != nil {
		c.Printf("  %s", c.Weight(*e.Weight))
	}
	if e.Notes != "" {
		c.Printf("  %s", c.Note(e.Notes))
	}
	c.Printf("  %s\n", c.mutedInline(e.Key))
}

func (c *CLIFormatter) mutedInline(text string) string {
	if c.IsColorEnabled() {
		return styleMuted.Render(text)
	}
	return text
}
