package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/huh"

	"golombcheck"
)

const (
	actionAnalyze  = "analyze"
	actionGenerate = "generate"
	actionQuit     = "quit"
)

// runInteractive drives the menu loop: pick an action, run it, offer to
// start over. Quitting or declining the restart ends the loop; ctrl-c
// anywhere is treated as quitting.
func runInteractive(out io.Writer) error {
	fmt.Fprintln(out, titleStyle.Render("Golomb randomness analyzer"))
	fmt.Fprintln(out, "A bit sequence only looks random if it satisfies all three postulates.")

	for {
		var action string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Analyze a sequence", actionAnalyze),
					huh.NewOption("Generate a sequence", actionGenerate),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&action),
		))
		if err := form.Run(); err != nil {
			return quietAbort(err)
		}

		switch action {
		case actionAnalyze:
			if err := interactiveAnalyze(out); err != nil {
				return quietAbort(err)
			}
		case actionGenerate:
			if err := interactiveGenerate(out); err != nil {
				return quietAbort(err)
			}
		default:
			return nil
		}

		var again bool
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Start over?").
				Value(&again),
		))
		if err := confirm.Run(); err != nil {
			return quietAbort(err)
		}
		if !again {
			return nil
		}
	}
}

func interactiveAnalyze(out io.Writer) error {
	var sequence string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Enter your bit sequence").
			Placeholder("100101101").
			Validate(validateSequenceInput).
			Value(&sequence),
	))
	if err := form.Run(); err != nil {
		return err
	}

	report, err := golombcheck.Analyze(sequence)
	if err != nil {
		return err
	}
	renderReport(out, report)
	return nil
}

func interactiveGenerate(out io.Writer) error {
	var (
		constrained bool
		lengthInput string
		selected    []int
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("What kind of sequence?").
				Options(
					huh.NewOption("Purely random", false),
					huh.NewOption("Satisfying selected postulates", true),
				).
				Value(&constrained),
			huh.NewInput().
				Title("Sequence length").
				Placeholder("32").
				Validate(validateLengthInput).
				Value(&lengthInput),
		),
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Postulates to satisfy").
				Options(
					huh.NewOption("Postulate 1 - bit proportion", 1),
					huh.NewOption("Postulate 2 - run frequencies", 2),
					huh.NewOption("Postulate 3 - pattern absence", 3),
				).
				Value(&selected),
		).WithHideFunc(func() bool { return !constrained }),
	)
	if err := form.Run(); err != nil {
		return err
	}

	length, _ := strconv.Atoi(lengthInput)

	if !constrained || len(selected) == 0 {
		fmt.Fprintf(out, "\nRandom sequence: %s\n", golombcheck.RandomSequence(length))
		return nil
	}

	sequence, report, err := golombcheck.GenerateSatisfying(length, selected, 0)
	if err != nil {
		var exhausted *golombcheck.GenerationExhaustedError
		if errors.As(err, &exhausted) {
			fmt.Fprintf(out, "\n%s\n", badStyle.Render(exhausted.Error()))
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "\nSequence: %s\n", sequence)
	renderReport(out, report)
	return nil
}

func validateSequenceInput(input string) error {
	if err := golombcheck.ValidateSequence(input); err != nil {
		return fmt.Errorf("only bits are allowed, e.g. 100101101")
	}
	return nil
}

func validateLengthInput(input string) error {
	length, err := strconv.Atoi(input)
	if err != nil || length < 1 {
		return fmt.Errorf("enter a whole number of at least 1")
	}
	return nil
}

// quietAbort maps a ctrl-c in any form to a clean exit.
func quietAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		slog.Debug("menu aborted by user")
		return nil
	}
	return err
}
