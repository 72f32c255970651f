// Package terminal is an interactive console that opens pages, wires
// components by contract name and calls their operations.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"masquerade/application/proxy"
	"masquerade/application/wiring"
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
	"masquerade/infrastructure/storage"
)

var (
	conditionType = reflect.TypeFor[entities.Condition]()

	errNoComponent = errors.New("no component wired, use: wire <Contract> [path...]")
)

// TerminalInterface runs the read-eval loop
type TerminalInterface struct {
	browser    interfaces.Browser
	components *wiring.Components
	state      *storage.BrowserState
	log        logrus.FieldLogger
	reader     *bufio.Reader
	out        io.Writer
	baseURL    string

	current any
	history []string
}

// Option configures the console
type Option func(*TerminalInterface)

// WithState keeps command history below the state directory
func WithState(state *storage.BrowserState) Option {
	return func(t *TerminalInterface) {
		t.state = state
	}
}

// WithBaseURL sets the page opened by a bare open command
func WithBaseURL(url string) Option {
	return func(t *TerminalInterface) {
		t.baseURL = url
	}
}

// WithIO replaces stdin and stdout
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *TerminalInterface) {
		t.reader = bufio.NewReader(in)
		t.out = out
	}
}

// NewTerminalInterface creates a console over browser and components
func NewTerminalInterface(browser interfaces.Browser, components *wiring.Components, opts ...Option) *TerminalInterface {
	t := &TerminalInterface{
		browser:    browser,
		components: components,
		log:        components.Logger(),
		reader:     bufio.NewReader(strings.NewReader("")),
		out:        io.Discard,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.state != nil {
		history, err := t.state.LoadHistory()
		if err != nil {
			t.log.WithError(err).Warn("failed to load history")
		}
		t.history = history
	}
	return t
}

// Run reads commands until quit or end of input
func (t *TerminalInterface) Run() error {
	fmt.Fprintln(t.out, "Masquerade console")
	fmt.Fprintln(t.out, "==================")
	fmt.Fprintf(t.out, "Session %s. Type 'help' for commands, 'quit' to exit\n\n", t.components.Session())

	defer t.saveHistory()
	for {
		fmt.Fprint(t.out, "> ")
		input, err := t.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		input = strings.TrimSpace(input)
		if input != "" {
			quit, execErr := t.Execute(input)
			if execErr != nil {
				fmt.Fprintf(t.out, "error: %v\n", execErr)
			}
			if quit {
				fmt.Fprintln(t.out, "Bye!")
				return nil
			}
		}
		if eof {
			return nil
		}
	}
}

// Execute runs one command line. It reports whether the console should
// stop.
func (t *TerminalInterface) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	if cmd != "history" {
		t.history = append(t.history, line)
	}

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help":
		t.help()
	case "open":
		url := t.baseURL
		switch {
		case len(args) == 1:
			url = args[0]
		case len(args) > 1 || url == "":
			return false, fmt.Errorf("usage: open [url]")
		}
		if err := t.browser.Open(url); err != nil {
			return false, err
		}
		fmt.Fprintf(t.out, "opened %s\n", url)
	case "wire":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: wire <Contract> [path...]")
		}
		return false, t.wire(args[0], args[1:])
	case "call":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: call <Operation> [args...]")
		}
		return false, t.call(args[0], args[1:])
	case "components":
		for _, typ := range t.components.Registry().Types() {
			fmt.Fprintln(t.out, typ.Name())
		}
	case "history":
		for i, h := range t.history {
			fmt.Fprintf(t.out, "%3d  %s\n", i+1, h)
		}
	default:
		return false, fmt.Errorf("unknown command %q", cmd)
	}
	return false, nil
}

func (t *TerminalInterface) help() {
	fmt.Fprintln(t.out, "  open [url]                   navigate the browser, default the base URL")
	fmt.Fprintln(t.out, "  wire <Contract> [path...]    wire a component by cuba-id path")
	fmt.Fprintln(t.out, "  call <Operation> [args...]   call an operation of the wired component")
	fmt.Fprintln(t.out, "  components                   list registered contracts")
	fmt.Fprintln(t.out, "  history                      show command history")
	fmt.Fprintln(t.out, "  quit                         exit")
}

func (t *TerminalInterface) wire(contract string, path []string) error {
	var target []any
	if len(path) > 0 {
		target = append(target, path)
	}
	component, err := t.components.WireName(contract, target...)
	if err != nil {
		return err
	}
	t.current = component
	fmt.Fprintf(t.out, "wired %s '%s'\n", contract, proxy.TargetID(component))
	return nil
}

func (t *TerminalInterface) call(operation string, raw []string) error {
	if t.current == nil {
		return errNoComponent
	}

	args, err := arguments(t.current, operation, raw)
	if err != nil {
		return err
	}
	results, err := proxy.Invoke(t.current, operation, args...)
	if err != nil {
		return err
	}

	for _, r := range results {
		if w, ok := r.(interfaces.Wrapper); ok {
			t.current = w
			fmt.Fprintf(t.out, "-> '%s'\n", proxy.TargetID(w))
			continue
		}
		fmt.Fprintf(t.out, "%v\n", r)
	}
	if len(results) == 0 {
		fmt.Fprintln(t.out, "ok")
	}
	return nil
}

// arguments converts raw words to the parameter types of the operation.
// Condition parameters are parsed, everything else stays a string.
func arguments(target any, operation string, raw []string) ([]any, error) {
	method := reflect.ValueOf(target).MethodByName(upperFirst(operation))
	if !method.IsValid() {
		method = reflect.ValueOf(target).MethodByName(operation)
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("%s has no operation %s", proxy.TargetID(target), operation)
	}

	mt := method.Type()
	args := make([]any, 0, len(raw))
	for i, word := range raw {
		var pt reflect.Type
		switch {
		case mt.IsVariadic() && i >= mt.NumIn()-1:
			pt = mt.In(mt.NumIn() - 1).Elem()
		case i < mt.NumIn():
			pt = mt.In(i)
		default:
			args = append(args, word)
			continue
		}

		if pt == conditionType {
			c, err := entities.ParseCondition(word)
			if err != nil {
				return nil, err
			}
			args = append(args, c)
			continue
		}
		args = append(args, word)
	}
	return args, nil
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func (t *TerminalInterface) saveHistory() {
	if t.state == nil {
		return
	}
	if err := t.state.SaveHistory(t.history); err != nil {
		t.log.WithError(err).Warn("failed to save history")
	}
}

// Close closes the browser
func (t *TerminalInterface) Close() error {
	return t.browser.Close()
}
