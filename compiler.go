package swiftcss

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"

	core "github.com/yacobolo/swiftcss/internal/swiftcss"
)

// Result summarizes one run.
type Result = core.Stats

// Compiler runs the pipeline for one configuration. The base style registry is
// built once and shared by every run.
type Compiler struct {
	cfg       Config
	reg       *core.Registry
	logger    *log.Logger
	discovery *discovery
	readFile  func(name string) ([]byte, error)
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger. The default logs to stderr at info level.
func WithLogger(l *log.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.logger = l
		}
	}
}

// New validates cfg and prepares a Compiler.
func New(cfg Config, opts ...Option) (*Compiler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Compiler{
		cfg:       cfg,
		reg:       core.NewBuiltinRegistry(cfg.Variables),
		logger:    log.NewWithOptions(os.Stderr, log.Options{Prefix: "swiftcss"}),
		discovery: newDiscovery(),
		readFile:  os.ReadFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the configuration the compiler was created with.
func (c *Compiler) Config() Config {
	return c.cfg
}

// Run scans, generates and writes the stylesheet once. Build mode optimizes
// before generating and minifies before writing; a minify failure leaves the
// previous output untouched.
func (c *Compiler) Run(ctx context.Context, mode Mode) (*Result, error) {
	start := time.Now()

	sr, err := c.scan(ctx)
	if err != nil {
		return nil, err
	}
	scan := sr.context

	inputs, err := c.readInputs()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Output:       c.cfg.Output,
		FilesScanned: sr.files,
		ClassTokens:  len(scan.Classes()),
	}

	if mode == ModeBuild {
		stats := core.Optimize(scan, c.reg)
		result.Optimized = &stats
		c.logger.Debug("optimized", "removed", stats.Removed())
	}

	css, counts := core.Assemble(inputs, scan, c.reg, c.cfg.Screens)
	result.Rules = counts

	if mode == ModeBuild {
		minified, err := core.Minify(css)
		if err != nil {
			return nil, fmt.Errorf("minify %s: %w", c.cfg.Output, err)
		}
		css = minified
		result.Minified = true
	}

	if err := writeFileAtomic(c.cfg.Output, []byte(css)); err != nil {
		return nil, fmt.Errorf("write %s: %w", c.cfg.Output, err)
	}

	for _, w := range multierr.Errors(sr.warnings) {
		result.Warnings = append(result.Warnings, w.Error())
	}
	result.Bytes = len(css)
	result.Duration = time.Since(start)
	return result, nil
}

// scanResult is the accumulated state of one scan.
type scanResult struct {
	context  *core.ScanContext
	paths    []string
	files    int   // files read successfully
	warnings error // unreadable files, combined with multierr
}

// scan reads every discovered file into a fresh ScanContext. Unreadable files
// are collected as warnings and do not stop the scan.
func (c *Compiler) scan(ctx context.Context) (*scanResult, error) {
	paths, err := c.discovery.files(c.cfg.Directories, c.cfg.extensions())
	if err != nil {
		return nil, fmt.Errorf("discover files: %w", err)
	}

	sr := &scanResult{
		context: core.NewScanContext(core.BreakpointNames(c.cfg.Screens)),
		paths:   paths,
	}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := c.readFile(path)
		if err != nil {
			sr.warnings = multierr.Append(sr.warnings, fmt.Errorf("read %s: %w", path, err))
			continue
		}
		c.logger.Debug("parsing", "file", path)
		sr.context.AddFile(string(data))
		sr.files++
	}
	return sr, nil
}

func (c *Compiler) readInputs() ([]core.Input, error) {
	inputs := make([]core.Input, 0, len(c.cfg.Input))
	for _, path := range c.cfg.Input {
		data, err := c.readFile(path)
		if err != nil {
			return nil, fmt.Errorf("read input %s: %w", path, err)
		}
		inputs = append(inputs, core.Input{Path: path, CSS: string(data)})
	}
	return inputs, nil
}

// MinifyError is returned by Run when the generated stylesheet cannot be minified.
type MinifyError = core.MinifyError
