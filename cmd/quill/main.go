package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/internal/sysclip"
)

const logEnv = "QUILL_LOG"

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.editor.Quitting() {
		return ""
	}
	return m.editor.View()
}

type options struct {
	configPath string
	version    bool
	debug      bool
	filename   string
}

func parseFlags(args []string) (options, error) {
	var opt options
	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: quill [flags] [file]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opt.configPath, "config", "", "config file (default: user config dir)/quill/config.toml")
	fs.BoolVar(&opt.version, "version", false, "print version and exit")
	fs.BoolVar(&opt.debug, "debug", false, "log every document change")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opt.filename = fs.Arg(0)
	default:
		fs.Usage()
		return opt, errors.New("at most one file may be given")
	}
	return opt, nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// No home directory: run on defaults.
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// setupLogging sends the standard logger to a file, or nowhere. The terminal
// belongs to the UI while the program runs.
func setupLogging(cfg config.Config) (io.Closer, error) {
	path := os.Getenv(logEnv)
	if path == "" {
		path = cfg.LogFile
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "quill")
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return f, nil
}

func newEditorConfig(opt options, cfg config.Config) editor.Config {
	ec := editor.Config{
		Filename:        opt.filename,
		ShowLineNums:    cfg.LineNumbers,
		TabWidth:        cfg.TabWidth,
		HistoryLimit:    cfg.HistoryLimit,
		DisableAutoPair: !cfg.AutoPair,
	}
	if !termenv.EnvNoColor() {
		ec.Style = editor.DefaultStyle()
	}
	if cfg.SystemClipboard {
		if sysclip.Available() {
			ec.Clipboard = sysclip.Clipboard{}
		} else {
			log.Printf("quill: system clipboard requested but unavailable")
		}
	}
	if cfg.HistoryLimit == 0 {
		// An explicit 0 in the config turns history off.
		ec.HistoryLimit = -1
	}
	if opt.debug {
		ec.OnChange = func(ev editor.ChangeEvent) {
			log.Printf("quill: change v%d cursor=%d:%d dirty=%v bytes=%d",
				ev.Version, ev.Cursor.Row, ev.Cursor.Col, ev.Dirty, len(ev.Text))
		}
	}
	return ec
}

func run(args []string) error {
	opt, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opt.version {
		fmt.Println(quill.Banner())
		return nil
	}

	cfg, err := loadConfig(opt.configPath)
	if err != nil {
		return err
	}

	logs, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logs.Close()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("quill needs an interactive terminal")
	}

	m := model{editor: editor.New(newEditorConfig(opt, cfg))}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = os.Stderr.WriteString("quill: " + err.Error() + "\n")
		os.Exit(1)
	}
}
