package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ReadSelection prompts the user to select from a list of options using huh
func ReadSelection(options []string, title string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	var selected string

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huhOptions...).
				Value(&selected),
		),
	)

	err := form.Run()
	if err != nil {
		return "", err
	}

	return selected, nil
}

// ReadIndexSelection is ReadSelection for options identified by position,
// for lists whose labels may repeat (conversation titles).
func ReadIndexSelection(options []string, title string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options provided")
	}

	var selected int

	huhOptions := make([]huh.Option[int], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, i)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(huhOptions...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return 0, err
	}

	return selected, nil
}
