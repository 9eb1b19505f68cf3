package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/levels"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorViolet).
			Italic(true)

	explainStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorIndigo).
			Padding(0, 1)

	widgetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(colorViolet).
			Padding(0, 2)

	lockedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorAmber)

	badgeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	var body string
	switch id := m.machine.Current(); {
	case id == core.LevelWelcome:
		body = m.viewWelcome()
	case id == core.LevelCompletion:
		body = m.viewCompletion()
	default:
		body = m.viewLesson(id)
	}

	if m.backdropVisible() {
		return RenderBackdrop(m.backdrop.Frame()) + "\n" + body
	}
	return body
}

// backdropVisible hides the animation on short terminals.
func (m Model) backdropVisible() bool {
	if m.backdrop == nil || m.backdrop.Closed() {
		return false
	}
	return m.height == 0 || m.height >= backdropMinH
}

func (m Model) viewWelcome() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("🚀 Text Diffusion Adventure", m.width)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(centerText("Discover how AI creates amazing text!", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("🤖 Hi! I'm Diffi, your AI guide!", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Together we'll explore words, tokens, patterns, attention and diffusion.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(buttonStyle.Render("✨ Start Adventure!"), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.viewNotice())
	b.WriteString(helpStyle.Render(centerText("enter start • tab hall of fame • q quit", m.width)))
	return b.String()
}

func (m Model) viewLesson(id core.LevelID) string {
	lvl := levels.Get(id)
	if lvl == nil {
		return ""
	}
	lesson := m.machine.Lesson()
	prog := m.machine.Progress()

	var b strings.Builder

	header := fmt.Sprintf("Level %d: %s %s", int(id), lvl.Title, lvl.Icon)
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(levels.ProgressPercent(id)))
	b.WriteString(fmt.Sprintf("  %d/%d done", prog.CompletedCount(), core.LessonCount))
	b.WriteString("\n")
	b.WriteString(explainStyle.Width(widgetWidth(m.width)).Render(lvl.Explanation))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Activity: " + lvl.Activity))
	b.WriteString("\n")

	if m.hasText {
		b.WriteString(m.text.View())
		b.WriteString("\n")
	}

	if lesson != nil {
		m.screen.Clear()
		lesson.Render(m.screen)
		b.WriteString(widgetStyle.Render(RenderScreen(m.screen)))
		b.WriteString("\n")

		if msg := lesson.State().Message; msg != "" {
			b.WriteString(noticeStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString(m.viewNotice())

	if m.machine.CanAdvance() {
		b.WriteString(buttonStyle.Render(lvl.NextLabel + " ➜"))
	} else {
		b.WriteString(lockedStyle.Render("🔒 " + lvl.NextLabel))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.helpView()))
	return b.String()
}

func (m Model) helpView() string {
	if m.textFocused() {
		return m.help.View(textHelp{k: m.keys.Keys()})
	}
	return m.help.View(m.keys.Keys())
}

func (m Model) viewNotice() string {
	if m.notice == "" {
		return ""
	}
	return noticeStyle.Render(m.notice) + "\n"
}

func (m Model) viewCompletion() string {
	prog := m.machine.Progress()
	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("🎉 Congratulations! 🎉", m.width)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(centerText("You've mastered the art of text diffusion!", m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.viewBadges(prog))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("What you learned"))
	b.WriteString("\n")
	for _, t := range levels.Terms {
		b.WriteString(fmt.Sprintf("  • %-10s %s\n", t.Name, t.Meaning))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Pattern score: %d/%d   Attention score: %d/%d\n",
		prog.PatternScore, progress.MaxPatternScore,
		prog.AttentionScore, progress.MaxAttentionScore))
	if run := m.runs.last; run != nil {
		b.WriteString(fmt.Sprintf("Finished in %s\n", run.Duration.Round(time.Second)))
	}
	if m.runs.err != nil {
		b.WriteString(noticeStyle.Render("Could not save this run: " + m.runs.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(centerText(buttonStyle.Render("Play Again! 🔄"), m.width))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(centerText("enter play again • q quit", m.width)))
	return b.String()
}

func (m Model) viewBadges(prog progress.State) string {
	badges := make([]string, 0, core.LessonCount)
	for _, lvl := range levels.Levels {
		if lvl.Badge == "" {
			continue
		}
		label := lvl.Icon + " " + lvl.Badge
		if !prog.LevelComplete(lvl.ID) {
			badges = append(badges, lockedStyle.Render(label))
			continue
		}
		badges = append(badges, badgeStyle.Render(label))
	}
	// Two rows of three
	half := (len(badges) + 1) / 2
	top := lipgloss.JoinHorizontal(lipgloss.Top, badges[:half]...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, badges[half:]...)
	return lipgloss.JoinVertical(lipgloss.Center, top, bottom)
}
