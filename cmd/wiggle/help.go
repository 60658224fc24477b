package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/wiggle/pkg/wave"
)

type helpEntry struct {
	names string
	desc  string
}

var helpArgs = []helpEntry{
	{"text", "The text to animate."},
	{"wiggle | shm", "wiggle prints a new line per frame; shm swings the text on one line. Default wiggle."},
	{"height width delay", "Optional positional shorthand for -H, -W and -d."},
}

var helpFlags = []helpEntry{
	{"-I, --iterations N", "Frames to draw. 0 or less runs until interrupted. Default 0."},
	{"-H, --height N", fmt.Sprintf("Steps in one full wave cycle. Default %d.", wave.DefaultHeight)},
	{"-W, --width N", fmt.Sprintf("Amplitude; the wave spans twice this many columns. Default %d.", wave.DefaultWidth)},
	{"-d, --delay MS", fmt.Sprintf("Milliseconds between frames. Default %g.", wave.DefaultDelayMillis)},
	{"-s, --space C", "Fill character used for the offset. Default a space."},
	{"--config PATH", "YAML config file. Default .wiggle.yaml, then ~/.config/wiggle/.wiggle.yaml."},
	{"--usage-log PATH", "Where runs are recorded. Default ~/.config/wiggle/usage.log."},
	{"--no-usage", "Do not record this run."},
	{"--debug", "Print resolved settings to stderr."},
	{"--version", "Print version information."},
	{"-h, --help", "Show this help."},
}

// helpText renders the help screen. styled enables bold headings.
func helpText(styled bool) string {
	title := lipgloss.NewStyle()
	heading := lipgloss.NewStyle()
	name := lipgloss.NewStyle()
	if styled {
		title = title.Bold(true)
		heading = heading.Bold(true).Underline(true)
		name = name.Bold(true)
	}

	var sb strings.Builder
	sb.WriteString(title.Render("wiggle") + " - make text wiggle in the terminal\n\n")

	sb.WriteString(heading.Render("Usage") + "\n")
	sb.WriteString("  wiggle <text> [wiggle|shm] [height width delay] [flags]\n\n")

	writeSection(&sb, heading.Render("Arguments"), helpArgs, name)
	writeSection(&sb, heading.Render("Flags"), helpFlags, name)

	sb.WriteString(heading.Render("Examples") + "\n")
	sb.WriteString("  wiggle hello\n")
	sb.WriteString("  wiggle hello shm -W 20 -d 10\n")
	sb.WriteString("  wiggle '~' 20 10 30 -I 100 -s .\n")
	return sb.String()
}

func writeSection(sb *strings.Builder, title string, entries []helpEntry, name lipgloss.Style) {
	sb.WriteString(title + "\n")
	for _, e := range entries {
		sb.WriteString("  " + name.Render(e.names) + "\n")
		sb.WriteString("      " + e.desc + "\n")
	}
	sb.WriteString("\n")
}
