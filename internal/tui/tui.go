// Package tui holds the terminal prompts of the admin provisioning tool.
//
// On a terminal the prompts are Bubble Tea programs; otherwise they fall
// back to reading plain lines, so the tool also works from scripts.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Prompter asks the operator for the decisions provisioning needs.
type Prompter struct {
	in          io.Reader
	lines       *bufio.Reader
	out         io.Writer
	interactive bool

	logger *logger.Logger
}

// New returns a Prompter on stdin and stdout. It is interactive when stdin
// is a terminal.
func New(logger *logger.Logger) *Prompter {
	return NewWithIO(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())), logger)
}

// NewWithIO returns a Prompter on the given streams.
func NewWithIO(in io.Reader, out io.Writer, interactive bool, logger *logger.Logger) *Prompter {
	return &Prompter{
		in:          in,
		lines:       bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		logger:      logger,
	}
}

// Interactive reports whether the prompts run as terminal programs.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// Password asks for the administrator password. An empty answer means the
// password is generated. It needs a terminal so the password is never echoed.
func (p *Prompter) Password(ctx context.Context) (string, error) {
	if !p.interactive {
		return "", ErrNotInteractive
	}

	final, err := p.run(ctx, newPasswordModel())
	if err != nil {
		return "", err
	}

	m := final.(passwordModel)
	if m.quit || !m.done {
		return "", ErrUserQuit
	}
	return m.password, nil
}

// Confirm asks whether the profile of existing may be overwritten. It
// satisfies service.ConfirmFunc.
func (p *Prompter) Confirm(ctx context.Context, existing models.User) (bool, error) {
	if !p.interactive {
		return p.confirmLine(existing)
	}

	final, err := p.run(ctx, confirmModel{existing: existing})
	if err != nil {
		return false, err
	}

	m := final.(confirmModel)
	return m.answered && m.yes, nil
}

func (p *Prompter) confirmLine(existing models.User) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s\n[y/N] > ", confirmQuestion(existing)); err != nil {
		return false, err
	}

	line, err := p.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("error reading answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Report prints what provisioning did. A generated password is shown once
// and, on a terminal, copied to the clipboard.
func (p *Prompter) Report(outcome models.ProvisionOutcome) error {
	var b strings.Builder

	switch {
	case outcome.Created:
		b.WriteString(successStyle.Render("Administrator created"))
	case outcome.Updated:
		b.WriteString(successStyle.Render("Administrator profile updated"))
	default:
		b.WriteString("Administrator left unchanged")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Name:  %s\n", valueOrDash(outcome.User.Name))
	fmt.Fprintf(&b, "  Email: %s\n", outcome.User.Email)

	if outcome.GeneratedPassword != "" {
		fmt.Fprintf(&b, "  Password: %s\n", outcome.GeneratedPassword)
		b.WriteString(helpStyle.Render("  Store it now, it is not shown again."))
		b.WriteString("\n")

		if p.interactive {
			if err := writeClipboard(outcome.GeneratedPassword); err != nil {
				p.logger.Warn().Err(err).Msg("copy to clipboard failed")
			} else {
				b.WriteString(helpStyle.Render("  Copied to the clipboard."))
				b.WriteString("\n")
			}
		}
	}

	_, err := io.WriteString(p.out, b.String())
	return err
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("error running prompt: %w", err)
	}
	return final, nil
}
