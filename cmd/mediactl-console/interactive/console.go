// Package interactive provides the interactive command-line interface of
// mediactl-console.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mediactl/mediactl-go/pkg/combiner"
	"github.com/mediactl/mediactl-go/pkg/media"
	"github.com/mediactl/mediactl-go/pkg/source"
)

var (
	// ErrUsage is returned for malformed commands.
	ErrUsage = errors.New("usage")

	// ErrUnknownCommand is returned for commands the console does not know.
	ErrUnknownCommand = errors.New("unknown command")
)

// Console drives a combiner by hand through in-memory sources.
type Console struct {
	content  *source.ContentNotifier
	device   *source.DeviceNotifier
	combiner *combiner.Combiner
	out      io.Writer
	rl       *readline.Instance
}

// New creates a console around c, which must be registered with content and
// device. Output goes to out until Run attaches a readline terminal.
func New(content *source.ContentNotifier, device *source.DeviceNotifier, c *combiner.Combiner, out io.Writer) *Console {
	con := &Console{
		content:  content,
		device:   device,
		combiner: c,
		out:      out,
	}
	c.AddListener(&printer{con: con})
	return con
}

// Run starts the interactive command loop on the terminal.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "media> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	c.rl = rl
	c.out = rl.Stdout()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return nil
		}

		if quit := c.Execute(line); quit {
			cancel()
			return nil
		}
	}
}

// Stdout returns the writer the console prints to. Once Run has started it
// coordinates with the readline prompt.
func (c *Console) Stdout() io.Writer {
	if c.rl != nil {
		return c.rl.Stdout()
	}
	return c.out
}

// Execute runs one command line and reports whether the console should exit.
func (c *Console) Execute(line string) bool {
	args, err := splitArgs(line)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	cmd := strings.ToLower(args[0])
	args = args[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()
		return false
	case "exit", "quit", "q":
		return true
	}

	if err := c.dispatch(cmd, args); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
	return false
}

func (c *Console) dispatch(cmd string, args []string) error {
	switch cmd {
	case "content", "c":
		return c.cmdContent(args)
	case "device", "d":
		return c.cmdDevice(args)
	case "nodevice":
		return c.cmdNoDevice(args)
	case "remove", "rm":
		return c.cmdRemove(args)
	case "unplug":
		return c.cmdUnplug(args)
	case "show", "s":
		return c.cmdShow(args)
	case "keys", "k":
		c.cmdKeys()
		return nil
	default:
		return fmt.Errorf("%w: %s (type 'help')", ErrUnknownCommand, cmd)
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
Media Combiner Console Commands:
  Content source:
    content <key> [old=<key>] [title=..] [artist=..] [app=..] [package=..]
                  [active=true|false] [resumable=true|false]
                       - Load content for a session
    remove <key>       - Remove the content session

  Device source:
    device <key> [old=<key>] [name=..] [enabled=true|false]
                       - Report the output device of a session
    nodevice <key> [old=<key>]
                       - Report that a session has no device
    unplug <key>       - Remove the device session

  Inspection:
    show [key]         - Show merged records (all or one key)
    keys               - List tracked keys

  General:
    help               - Show this help
    exit               - Exit console

  Values with spaces can be quoted: title="Some Song"`)
}

func (c *Console) cmdContent(args []string) error {
	key, opts, err := parseKeyed(args, "content <key> [field=value...]")
	if err != nil {
		return err
	}

	rec := media.ContentRecord{Initialized: true}
	for name, value := range opts.fields {
		switch name {
		case "title":
			rec.Title = value
		case "artist":
			rec.Artist = value
		case "app":
			rec.App = value
		case "package":
			rec.PackageName = value
		case "active":
			if rec.Active, err = strconv.ParseBool(value); err != nil {
				return fmt.Errorf("invalid active value %q", value)
			}
		case "resumable":
			if rec.Resumable, err = strconv.ParseBool(value); err != nil {
				return fmt.Errorf("invalid resumable value %q", value)
			}
		default:
			return fmt.Errorf("unknown content field %q", name)
		}
	}

	c.content.Load(key, opts.oldKey, rec)
	return nil
}

func (c *Console) cmdDevice(args []string) error {
	key, opts, err := parseKeyed(args, "device <key> [name=..] [enabled=true|false]")
	if err != nil {
		return err
	}

	rec := &media.DeviceRecord{Enabled: true}
	for name, value := range opts.fields {
		switch name {
		case "name":
			rec.Name = value
		case "enabled":
			if rec.Enabled, err = strconv.ParseBool(value); err != nil {
				return fmt.Errorf("invalid enabled value %q", value)
			}
		default:
			return fmt.Errorf("unknown device field %q", name)
		}
	}

	c.device.Change(key, opts.oldKey, rec)
	return nil
}

func (c *Console) cmdNoDevice(args []string) error {
	key, opts, err := parseKeyed(args, "nodevice <key> [old=<key>]")
	if err != nil {
		return err
	}
	if len(opts.fields) > 0 {
		return fmt.Errorf("%w: nodevice <key> [old=<key>]", ErrUsage)
	}

	c.device.Change(key, opts.oldKey, nil)
	return nil
}

func (c *Console) cmdRemove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: remove <key>", ErrUsage)
	}
	c.content.Remove(args[0])
	return nil
}

func (c *Console) cmdUnplug(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: unplug <key>", ErrUsage)
	}
	c.device.RemoveKey(args[0])
	return nil
}

func (c *Console) cmdShow(args []string) error {
	keys := args
	if len(keys) == 0 {
		keys = c.combiner.Keys()
	}
	if len(keys) == 0 {
		fmt.Fprintln(c.out, "No sessions")
		return nil
	}

	for _, key := range keys {
		merged, ok := c.combiner.Merged(key)
		if !ok {
			fmt.Fprintf(c.out, "%s: (incomplete)\n", key)
			continue
		}
		fmt.Fprintf(c.out, "%s:\n", key)
		fmt.Fprintf(c.out, "  Title:   %s\n", merged.Title)
		fmt.Fprintf(c.out, "  Artist:  %s\n", merged.Artist)
		if merged.App != "" {
			fmt.Fprintf(c.out, "  App:     %s\n", merged.App)
		}
		fmt.Fprintf(c.out, "  Active:  %t\n", merged.Active)
		fmt.Fprintf(c.out, "  Device:  %s (enabled=%t)\n", merged.Device.Name, merged.Device.Enabled)
	}
	return nil
}

func (c *Console) cmdKeys() {
	keys := c.combiner.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(c.out, "No sessions")
		return
	}
	for _, key := range keys {
		state := "incomplete"
		if _, ok := c.combiner.Merged(key); ok {
			state = "merged"
		}
		fmt.Fprintf(c.out, "  %-24s %s\n", key, state)
	}
}

// printer writes merged notifications to the console.
type printer struct {
	con *Console
}

func (p *printer) OnMergedLoaded(key, oldKey string, merged media.MergedRecord) {
	w := p.con.Stdout()
	fmt.Fprintf(w, "<< loaded %s", key)
	if oldKey != "" {
		fmt.Fprintf(w, " (from %s)", oldKey)
	}
	fmt.Fprintf(w, ": %q on %q\n", merged.Title, merged.Device.Name)
}

func (p *printer) OnMergedRemoved(key string) {
	fmt.Fprintf(p.con.Stdout(), "<< removed %s\n", key)
}

var _ media.MergedListener = (*printer)(nil)

// keyedArgs holds the optional parts of a keyed command.
type keyedArgs struct {
	oldKey string
	fields map[string]string
}

// parseKeyed parses "<key> [old=<key>] [name=value...]".
func parseKeyed(args []string, usage string) (string, keyedArgs, error) {
	opts := keyedArgs{fields: make(map[string]string)}
	if len(args) == 0 || strings.Contains(args[0], "=") {
		return "", opts, fmt.Errorf("%w: %s", ErrUsage, usage)
	}

	for _, arg := range args[1:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return "", opts, fmt.Errorf("expected field=value, got %q", arg)
		}
		name = strings.ToLower(name)
		if name == "old" {
			opts.oldKey = value
			continue
		}
		opts.fields[name] = value
	}
	return args[0], opts, nil
}

// splitArgs splits a line on whitespace, keeping double-quoted runs together.
func splitArgs(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inQuote, hasToken := false, false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			hasToken = true
		case !inQuote && (r == ' ' || r == '\t'):
			if hasToken {
				args = append(args, cur.String())
				cur.Reset()
				hasToken = false
			}
		default:
			cur.WriteRune(r)
			hasToken = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if hasToken {
		args = append(args, cur.String())
	}
	return args, nil
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("content"),
		readline.PcItem("device"),
		readline.PcItem("nodevice"),
		readline.PcItem("remove"),
		readline.PcItem("unplug"),
		readline.PcItem("show"),
		readline.PcItem("keys"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
