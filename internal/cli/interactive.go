package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// promptDirectiveText collects directive text through a terminal form.
func promptDirectiveText() (string, error) {
	var text string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Directive text").
				Description("Paste or type the directives to convert.").
				Value(&text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("directive text cannot be empty")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return text, nil
}
