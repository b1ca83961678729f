package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/tagcloud/internal/config"
	"github.com/vk/tagcloud/internal/ctxlog"
)

// Prompts shown by Prompter, in the order they are asked.
const (
	PromptInput    = "Enter input file name: "
	PromptOutput   = "Enter output file name: "
	PromptNumWords = "Enter number of words: "
)

// Prompter is a config.Source that asks for each setting interactively.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading answers from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Settings implements config.Source.
func (p *Prompter) Settings(ctx context.Context) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)

	input, err := p.ask(PromptInput)
	if err != nil {
		return nil, err
	}
	output, err := p.ask(PromptOutput)
	if err != nil {
		return nil, err
	}
	count, err := p.ask(PromptNumWords)
	if err != nil {
		return nil, err
	}

	numWords, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return nil, fmt.Errorf("number of words must be an integer, got %q", strings.TrimSpace(count))
	}

	logger.Debug("Settings read from prompt.", "input", input, "output", output, "count", numWords)
	return &config.Settings{InputPath: input, OutputPath: output, NumWords: numWords}, nil
}

// ask writes prompt and reads one line, without its line terminator. A final
// line without a terminator is accepted.
func (p *Prompter) ask(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no answer to %q: %w", strings.TrimSpace(prompt), io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
