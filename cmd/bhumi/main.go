package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/bhumi/layout"
	"pkt.systems/bhumi/pdf"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/bhumi")
}

// fileConfig is the YAML shape of --config files. Zero fields keep their
// defaults.
type fileConfig struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Location string `yaml:"location"`
	Language string `yaml:"language"`

	Fonts struct {
		LatinRegular      string `yaml:"latin-regular"`
		LatinBold         string `yaml:"latin-bold"`
		DevanagariRegular string `yaml:"devanagari-regular"`
		DevanagariBold    string `yaml:"devanagari-bold"`
	} `yaml:"fonts"`

	Page struct {
		Margin   float64 `yaml:"margin"`
		BodySize float64 `yaml:"body-size"`
	} `yaml:"page"`
}

func main() {
	var (
		outPath    string
		configPath string

		latinRegular string
		latinBold    string
		devaRegular  string
		devaBold     string
		coreFont     string

		reportMode bool
		title      string
		author     string
		location   string
		lang       string
		quiet      bool
	)

	flags := pflag.NewFlagSet("bhumi", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&latinRegular, "latin-font", "", "TTF path for the Latin regular font")
	flags.StringVar(&latinBold, "latin-bold-font", "", "TTF path for the Latin bold font")
	flags.StringVar(&devaRegular, "devanagari-font", "", "TTF path for the Devanagari regular font")
	flags.StringVar(&devaBold, "devanagari-bold-font", "", "TTF path for the Devanagari bold font")
	flags.StringVar(&coreFont, "core-font", "", "Use a built-in PDF font family instead of TTF files (Latin only)")
	flags.BoolVarP(&reportMode, "report", "r", false, "Wrap output in the report envelope (title block and disclaimer)")
	flags.StringVar(&title, "title", "", "Report title (implies --report)")
	flags.StringVar(&author, "author", "", "Report recipient name (implies --report)")
	flags.StringVar(&location, "location", "", "Report location (implies --report)")
	flags.StringVarP(&lang, "language", "l", "en", "Report language as a BCP 47 tag (en, hi)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress layout warnings")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: bhumi [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	cfg := pdf.Config{}
	var fileCfg fileConfig
	if configPath != "" {
		if err := loadFileConfig(configPath, &fileCfg); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		applyFileConfig(&cfg, fileCfg)
	}
	if title == "" {
		title = fileCfg.Title
	}
	if author == "" {
		author = fileCfg.Author
	}
	if location == "" {
		location = fileCfg.Location
	}
	if lang == "en" && fileCfg.Language != "" {
		lang = fileCfg.Language
	}
	if title != "" || author != "" || location != "" {
		reportMode = true
	}

	if err := applyFontFlags(&cfg, latinRegular, latinBold, devaRegular, devaBold, coreFont); err != nil {
		fmt.Fprintf(os.Stderr, "fonts: %v\n", err)
		os.Exit(2)
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if isTerminal(writer) {
		fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output")
		os.Exit(2)
	}

	markdown, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	warn := func(msg string) {
		if !quiet {
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
		}
	}

	if reportMode {
		out, err := pdf.GenerateReport(string(markdown), pdf.ReportOptions{
			Title:       title,
			Author:      author,
			Location:    location,
			LanguageTag: lang,
			Config:      cfg,
			Warn:        warn,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate report: %v\n", err)
			os.Exit(1)
		}
		if _, err := writer.Write(out); err != nil {
			fmt.Fprintf(os.Stderr, "write output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := pdf.Render(pdf.RenderRequest{
		Markdown: string(markdown),
		Writer:   writer,
		Config:   cfg,
		Warn:     warn,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func loadFileConfig(path string, dst *fileConfig) error {
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func applyFileConfig(cfg *pdf.Config, fc fileConfig) {
	if fc.Fonts.LatinRegular != "" {
		cfg.LatinRegular = normalizePath(fc.Fonts.LatinRegular)
	}
	if fc.Fonts.LatinBold != "" {
		cfg.LatinBold = normalizePath(fc.Fonts.LatinBold)
	}
	if fc.Fonts.DevanagariRegular != "" {
		cfg.DevanagariRegular = normalizePath(fc.Fonts.DevanagariRegular)
	}
	if fc.Fonts.DevanagariBold != "" {
		cfg.DevanagariBold = normalizePath(fc.Fonts.DevanagariBold)
	}
	if fc.Page.Margin > 0 || fc.Page.BodySize > 0 {
		geom := layout.DefaultGeometry()
		if fc.Page.Margin > 0 {
			geom.MarginLeft = fc.Page.Margin
			geom.MarginRight = fc.Page.Margin
			geom.MarginTop = fc.Page.Margin
			geom.MarginBottom = fc.Page.Margin
		}
		if fc.Page.BodySize > 0 {
			geom.BodySize = fc.Page.BodySize
		}
		cfg.Geometry = geom
	}
}

func applyFontFlags(cfg *pdf.Config, latinReg, latinBold, devaReg, devaBold, core string) error {
	if core != "" {
		cfg.CoreFont = core
		return nil
	}
	paths := []struct {
		value string
		dst   *string
	}{
		{latinReg, &cfg.LatinRegular},
		{latinBold, &cfg.LatinBold},
		{devaReg, &cfg.DevanagariRegular},
		{devaBold, &cfg.DevanagariBold},
	}
	for _, p := range paths {
		if p.value == "" {
			continue
		}
		clean := normalizePath(p.value)
		if err := ensureFont(clean); err != nil {
			return fmt.Errorf("%s: %w", p.value, err)
		}
		*p.dst = clean
	}
	return nil
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader concatenates the inputs in argument order, opening each
// lazily so a bad later argument still surfaces at read time.
type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return &multiInputReader{sources: sources}, nil, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func ensureFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	if !strings.HasSuffix(strings.ToLower(info.Name()), ".ttf") {
		return fmt.Errorf("expected .ttf font file")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
