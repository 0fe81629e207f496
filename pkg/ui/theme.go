package ui

import "github.com/charmbracelet/lipgloss"

// Theme carries the renderer and the semantic colors every view draws with.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Bg        lipgloss.AdaptiveColor
	Panel     lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
}

// DefaultTheme returns the Dracula-based theme for r. A nil renderer uses
// lipgloss's default renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: string(ColorPrimary)},
		Secondary: lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: string(ColorSecondary)},
		Text:      lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: string(ColorText)},
		Subtext:   lipgloss.AdaptiveColor{Light: "#555555", Dark: string(ColorSubtext)},
		Muted:     lipgloss.AdaptiveColor{Light: "#888888", Dark: string(ColorMuted)},
		Border:    lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: string(ColorBgHighlight)},
		Highlight: lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: string(ColorBgHighlight)},
		Bg:        lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: string(ColorBg)},
		Panel:     lipgloss.AdaptiveColor{Light: "#F4F4F4", Dark: string(ColorBgDark)},
		Success:   lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: string(ColorSuccess)},
		Warning:   lipgloss.AdaptiveColor{Light: "#E65100", Dark: string(ColorWarning)},
	}
}

// background returns the hex of the theme background for the renderer's
// terminal background.
func (t Theme) background() string {
	if t.Renderer.HasDarkBackground() {
		return t.Bg.Dark
	}
	return t.Bg.Light
}

func (t Theme) muted() string {
	if t.Renderer.HasDarkBackground() {
		return t.Muted.Dark
	}
	return t.Muted.Light
}
