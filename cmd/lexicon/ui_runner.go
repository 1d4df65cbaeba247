package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bytecodealliance/target-lexicon/internal/driver"
	"github.com/bytecodealliance/target-lexicon/internal/ui"
)

type checkOutcome struct {
	results []driver.CheckResult
	err     error
}

func runCheckWithUI(ctx context.Context, title string, inputs []string, opts driver.CheckOptions) ([]driver.CheckResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.CheckTriples(ctx, inputs, optsCopy)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, inputs, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// The program may quit early on ctrl+c; drain so the workers can finish.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
