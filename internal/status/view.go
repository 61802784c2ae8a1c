package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	sections := []string{
		renderHeader(data),
		renderConfig(data),
		renderShells(data),
	}
	return strings.Join(sections, "\n\n")
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	if data.GitCommit != "" && data.GitCommit != "unknown" {
		b.WriteString(subtleStyle.Render(fmt.Sprintf(" (%s, %s)", data.GitCommit, data.BuildTime)))
	}
	return b.String()
}

func renderConfig(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Configuration:") + "\n")

	switch {
	case data.ConfigError != "":
		b.WriteString("   " + keyStyle.Render("File: ") + valueStyle.Render(data.ConfigPath) + " " + errorStyle.Render("✗") + "\n")
		b.WriteString("   " + errorStyle.Render(data.ConfigError) + "\n")
	case data.ConfigPath != "":
		b.WriteString("   " + keyStyle.Render("File: ") + valueStyle.Render(data.ConfigPath) + " " + successStyle.Render("✓") + "\n")
	default:
		b.WriteString("   " + subtleStyle.Render("No configuration file found, using defaults") + "\n")
	}

	b.WriteString(renderField("Shell", data.Shell))
	b.WriteString(renderField("Variable", data.Var))
	b.WriteString(renderField("Program", data.Bin))
	b.WriteString(renderField("Display name", data.Name))
	b.WriteString(renderField("Completer", data.Completer))
	b.WriteString(renderField("Log level", data.LogLevel))

	return strings.TrimSuffix(b.String(), "\n")
}

func renderField(key, value string) string {
	if value == "" {
		return "   " + keyStyle.Render(key+": ") + subtleStyle.Render("(not set)") + "\n"
	}
	return "   " + keyStyle.Render(key+": ") + valueStyle.Render(value) + "\n"
}

func renderShells(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🐚 Shells:") + "\n")

	for _, name := range data.Shells {
		marker := "  "
		if name == data.Shell {
			marker = successStyle.Render("● ")
		}
		b.WriteString("   " + marker + valueStyle.Render(name) + "\n")
	}

	if !data.ShellKnown {
		b.WriteString("   " + errorStyle.Render(fmt.Sprintf("✗ Configured shell %q is not supported", data.Shell)) + "\n")
	}

	if data.NuVersion != "" {
		b.WriteString("   " + keyStyle.Render("Running in Nushell: ") + successStyle.Render(data.NuVersion) + "\n")
	} else {
		b.WriteString("   " + warningStyle.Render("Not running in Nushell") + "\n")
	}

	if data.EnvVarValue != "" {
		b.WriteString("   " + warningStyle.Render(fmt.Sprintf("%s=%s is set: programs will run in completer mode", data.Var, data.EnvVarValue)) + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
