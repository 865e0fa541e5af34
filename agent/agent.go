package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"google.golang.org/genai"
)

// Agent runs an assist session: a facilitator answering the user with the
// help of experts.
//
// Lines starting with '/' never reach the model, they run one of the
// Shortcuts instead.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
	// Shortcuts are answered locally, by name, without a model round trip.
	Shortcuts map[string]func() string
	// Print displays answers, defaults to writing them as is.
	Print func(markdown string)
}

// New creates a new Agent led by a facilitator that consults 'experts'.
//
// It writes to 'w' (e.g., os.Stdout) and reads the user's input from 'r'
// (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
		Shortcuts:   make(map[string]func() string),
	}
}

// Start creates the chats of every expert and of the facilitator.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run reads the user's questions until "bye" or the end of input.
//
// 'prompts' are answered first, as if the user typed them. Chats are started
// on the first question that needs the model, so a session made only of
// shortcuts never connects to it.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to wcs financial assist. Type /help for shortcuts, 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			line, err := a.r.ReadString('\n')
			if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
				if err == io.EOF {
					return nil
				}
				return err
			}
			input = strings.TrimSpace(line)
		}

		switch {
		case input == "":
			continue
		case input == "bye":
			return nil
		case strings.HasPrefix(input, "/"):
			a.print(a.shortcut(strings.TrimPrefix(input, "/")))
			continue
		}

		if a.Facilitator.chat == nil {
			if err := a.Start(ctx, client); err != nil {
				return err
			}
		}
		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.print(content.Parts[0].Text)
	}
}

func (a *Agent) shortcut(name string) string {
	if f, ok := a.Shortcuts[name]; ok {
		return f()
	}
	names := make([]string, 0, len(a.Shortcuts))
	for n := range a.Shortcuts {
		names = append(names, "/"+n)
	}
	sort.Strings(names)
	var b strings.Builder
	if name != "help" {
		fmt.Fprintf(&b, "Unknown shortcut /%s.\n\n", name)
	}
	b.WriteString("Shortcuts: ")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString("\n")
	return b.String()
}

func (a *Agent) print(markdown string) {
	if a.Print != nil {
		a.Print(markdown)
		return
	}
	fmt.Fprintln(a.w, markdown)
}
