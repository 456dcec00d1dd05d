package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// run executes a prompt model with output on stderr, so stdout remains
// available for piping. The color profile is detected for stderr,
// which handles redirected output and NO_COLOR.
func run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	return p.Run()
}
