package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/AirMile/dailysync/internal/catalog"
	"github.com/AirMile/dailysync/internal/checkin"
	"github.com/AirMile/dailysync/internal/store"
)

type checkinStep int

const (
	stepMood checkinStep = iota
	stepQuestions
	stepFollowUp
	stepActivities
	stepDone
)

type checkinModel struct {
	session *checkin.Session
	width   int
	height  int

	step       checkinStep
	moodCursor int // index into catalog.Moods()
	streak     int

	form        *huh.Form
	formActive  bool
	questions   []catalog.Question
	answerVals  []*string
	followUp    catalog.Question
	followUpVal *string
	selected    []string

	completed *store.MoodEntry
}

func newCheckinModel(session *checkin.Session) checkinModel {
	return checkinModel{session: session, moodCursor: 2} // start on "Okay"
}

func (c *checkinModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type checkinResumeMsg struct {
	entry  *store.MoodEntry
	streak int
}

// Init resumes an unfinished draft, if one was left behind.
func (c checkinModel) Init() tea.Cmd {
	return func() tea.Msg {
		entry, _ := c.session.Resume()
		return checkinResumeMsg{entry: entry, streak: c.session.Streak()}
	}
}

func (c checkinModel) update(msg tea.Msg) (checkinModel, tea.Cmd) {
	switch msg := msg.(type) {
	case checkinResumeMsg:
		c.streak = msg.streak
		if msg.entry != nil && msg.entry.HasMood() {
			return c.startQuestions(msg.entry.Questions)
		}
		return c, nil

	case tea.KeyMsg:
		if c.formActive && c.form != nil {
			return c.updateForm(msg)
		}
		switch c.step {
		case stepMood:
			return c.updateMoodPicker(msg)
		case stepDone:
			if key.Matches(msg, keys.New) || key.Matches(msg, keys.Enter) {
				c.step = stepMood
				c.completed = nil
				c.streak = c.session.Streak()
				return c, nil
			}
		}
	}
	return c, nil
}

func (c checkinModel) updateMoodPicker(msg tea.KeyMsg) (checkinModel, tea.Cmd) {
	levels := catalog.Moods()
	switch {
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
		if c.moodCursor > 0 {
			c.moodCursor--
		}
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down):
		if c.moodCursor < len(levels)-1 {
			c.moodCursor++
		}
	case key.Matches(msg, keys.Enter):
		entry, err := c.session.SubmitMood(levels[c.moodCursor].Value)
		if err != nil {
			return c, errorStatus("Could not save your mood", err)
		}
		return c.startQuestions(entry.Questions)
	}
	return c, nil
}

func (c checkinModel) startQuestions(questions []catalog.Question) (checkinModel, tea.Cmd) {
	c.questions = questions
	c.answerVals = make([]*string, len(questions))

	current := c.session.Current()
	fields := make([]huh.Field, 0, len(questions))
	for i, q := range questions {
		val := ""
		if current != nil {
			val = current.Answers[q.ID]
		}
		v := val
		c.answerVals[i] = &v
		fields = append(fields, huh.NewText().
			Title(q.Text).
			Placeholder("Your answer (minimum 10 characters)...").
			Value(c.answerVals[i]).
			Validate(validateAnswer))
	}

	c.form = huh.NewForm(
		huh.NewGroup(fields...).Title("Tell me more about your day"),
	).WithShowHelp(true).WithShowErrors(true)
	c.formActive = true
	c.step = stepQuestions
	return c, c.form.Init()
}

func (c checkinModel) startFollowUp() (checkinModel, tea.Cmd) {
	c.followUp = c.session.FollowUp()

	v := ""
	if current := c.session.Current(); current != nil {
		v = current.Answers[c.followUp.ID]
	}
	c.followUpVal = &v

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(c.followUp.Text).
				Placeholder("Optional; leave empty to skip...").
				Value(c.followUpVal).
				Validate(validateOptionalAnswer),
		).Title("One more thing"),
	).WithShowHelp(true).WithShowErrors(true)
	c.formActive = true
	c.step = stepFollowUp
	return c, c.form.Init()
}

func (c checkinModel) startActivities() (checkinModel, tea.Cmd) {
	options := make([]huh.Option[string], 0, len(catalog.Activities()))
	for _, a := range catalog.Activities() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s %s", a.Emoji, a.Label), a.ID))
	}

	c.selected = nil
	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("What did you do today?").
				Options(options...).
				Value(&c.selected).
				Height(12),
		),
	).WithShowHelp(true)
	c.formActive = true
	c.step = stepActivities
	return c, c.form.Init()
}

func (c checkinModel) updateForm(msg tea.Msg) (checkinModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		// Back out one step; the draft stays resumable.
		c.formActive = false
		c.form = nil
		c.step = stepMood
		return c, nil
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State != huh.StateCompleted {
		return c, cmd
	}

	switch c.step {
	case stepQuestions:
		for i, q := range c.questions {
			answer := strings.TrimSpace(*c.answerVals[i])
			if err := c.session.SubmitAnswer(q.ID, answer); err != nil {
				return c, errorStatus("Could not save an answer", err)
			}
		}
		if err := c.session.Flush(); err != nil {
			return c, errorStatus("Could not save your answers", err)
		}
		return c.startFollowUp()

	case stepFollowUp:
		if answer := strings.TrimSpace(*c.followUpVal); answer != "" {
			if err := c.session.SubmitAnswer(c.followUp.ID, answer); err != nil {
				return c, errorStatus("Could not save an answer", err)
			}
			if err := c.session.Flush(); err != nil {
				return c, errorStatus("Could not save your answers", err)
			}
		}
		return c.startActivities()

	case stepActivities:
		entry, err := c.session.SubmitActivities(c.selected)
		if err != nil {
			return c, errorStatus("Could not complete your check-in", err)
		}
		c.formActive = false
		c.form = nil
		c.completed = entry
		c.step = stepDone
		c.streak = c.session.Streak()
		return c, func() tea.Msg { return entryCompletedMsg{entry: entry} }
	}
	return c, cmd
}

func (c checkinModel) view() string {
	w := c.width - 4

	switch c.step {
	case stepQuestions, stepFollowUp, stepActivities:
		if c.form != nil {
			return activePanelStyle.Width(w).Render(c.form.View())
		}
		return ""
	case stepDone:
		return c.viewDone(w)
	default:
		return c.viewMoodPicker(w)
	}
}

func (c checkinModel) viewMoodPicker(w int) string {
	title := titleStyle.Render("How do you feel today?")

	levels := catalog.Moods()
	cells := make([]string, len(levels))
	for i, m := range levels {
		label := fmt.Sprintf("%s\n%s", m.Emoji, m.Label)
		style := lipgloss.NewStyle().Padding(0, 2).Align(lipgloss.Center)
		if i == c.moodCursor {
			style = style.Bold(true).Foreground(lipgloss.Color(m.Color))
			label = fmt.Sprintf("%s\n[%s]", m.Emoji, m.Label)
		} else {
			style = style.Foreground(colorMuted)
		}
		cells[i] = style.Render(label)
	}
	row := moodRowStyle.Width(w - 6).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	streakLine := mutedStyle.Render("Start your streak today")
	if c.streak > 0 {
		streakLine = successStyle.Render(fmt.Sprintf("🔥 %d-day streak", c.streak))
	}
	hint := mutedStyle.Render("←/→: choose  enter: continue")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", row, "", streakLine, hint),
	)
}

func (c checkinModel) viewDone(w int) string {
	title := titleStyle.Render("Check-in complete")
	if c.completed == nil {
		return panelStyle.Width(w).Render(title)
	}

	badge := moodBadge(c.completed.Mood)
	diaryText := diaryTextStyle.Width(w - 6).Render(c.completed.DiaryText)
	streakLine := successStyle.Render(fmt.Sprintf("🔥 %d-day streak", c.streak))
	hint := mutedStyle.Render("n: new check-in  2: diary  3: stats")

	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", badge, "", diaryText, "", streakLine, hint),
	)
}

func validateAnswer(answer string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(answer))
	if n < store.MinAnswerLength {
		return fmt.Errorf("answer must be at least %d characters", store.MinAnswerLength)
	}
	if n > store.MaxAnswerLength {
		return fmt.Errorf("answer must be at most %d characters", store.MaxAnswerLength)
	}
	return nil
}

// validateOptionalAnswer accepts an empty answer; anything typed must meet
// the usual length bounds.
func validateOptionalAnswer(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return nil
	}
	return validateAnswer(answer)
}

func errorStatus(prefix string, err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("%s: %v", prefix, err), isError: true}
	}
}
