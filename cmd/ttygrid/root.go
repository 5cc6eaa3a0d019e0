package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/ttygrid"
)

const (
	defaultMaxLen = 30
	defaultMinLen = 10
	defaultRows   = 10
)

type rootOptions struct {
	maxLen  int
	minLen  int
	rows    int
	seed    uint64
	width   int
	noColor bool
	file    string
	output  string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "ttygrid",
		Short: "Print a table that fits the terminal",
		Long: `Print a table of random strings (or a grid document given with --file)
sized to the terminal. Columns are kept in priority order: "line" first, then
p1 through p5. Narrow the terminal to watch lower priority columns drop off.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			lgr, sync := newLogger(stderr, opts.verbose)
			defer sync()
			return run(stdout, lgr, opts)
		},
	}

	opts.addFlags(cmd.Flags())
	return cmd
}

func (o *rootOptions) addFlags(flags *pflag.FlagSet) {
	flags.IntVar(&o.maxLen, "max-len", defaultMaxLen, "spread of random cell lengths")
	flags.IntVar(&o.minLen, "min-len", defaultMinLen, "minimum random cell length")
	flags.IntVar(&o.rows, "rows", defaultRows, "number of random rows")
	flags.Uint64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.IntVar(&o.width, "width", 0, "render at this width instead of the terminal's")
	flags.BoolVar(&o.noColor, "no-color", false, "disable color output")
	flags.StringVarP(&o.file, "file", "f", "", "render a YAML or JSON grid document instead of random data")
	flags.StringVarP(&o.output, "output", "o", "table", "output: table|"+formatNames())
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log layout decisions to stderr")
}

func run(w io.Writer, lgr logr.Logger, opts rootOptions) error {
	grid, err := loadGrid(opts)
	if err != nil {
		return err
	}
	lgr.V(1).Info("grid ready", "columns", grid.NumColumns(), "rows", grid.NumRows())

	if opts.output != "table" {
		f, err := ttygrid.ParseFormat(opts.output)
		if err != nil {
			return err
		}
		return grid.Export(w, f)
	}

	term := terminalFor(w, opts.width)
	err = grid.Write(w, term, ttygrid.Options{NoColor: opts.noColor, Logger: lgr})
	if errors.Is(err, ttygrid.ErrNoSpace) {
		lgr.Info("nothing rendered", "width", term.Width())
	}
	return err
}

func loadGrid(opts rootOptions) (*ttygrid.Grid, error) {
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := ttygrid.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.file, err)
		}
		return g, nil
	}
	return randomGrid(opts)
}

// demoColumns are declared left to right; priorities decide which survive.
var demoColumns = []ttygrid.Column{
	{Header: "line", Priority: 0, Align: ttygrid.AlignRight},
	{Header: "p3", Priority: 3},
	{Header: "p1", Priority: 1},
	{Header: "p4", Priority: 4},
	{Header: "p5", Priority: 5},
	{Header: "p2", Priority: 2},
}

func randomGrid(opts rootOptions) (*ttygrid.Grid, error) {
	if opts.maxLen < 1 || opts.minLen < 0 || opts.rows < 0 {
		return nil, errors.New("invalid lengths: --max-len must be positive, --min-len and --rows non-negative")
	}
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	b := ttygrid.NewBuilder()
	for _, c := range demoColumns {
		if err := b.AddColumnSpec(c); err != nil {
			return nil, err
		}
	}
	for lineno := range opts.rows {
		cells := []string{strconv.Itoa(lineno)}
		for range len(demoColumns) - 1 {
			cells = append(cells, randString(rng, opts.minLen+rng.IntN(opts.maxLen)))
		}
		if err := b.AddRow(cells...); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

func randString(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		c := byte('a' + rng.IntN(26))
		if rng.IntN(2) == 0 {
			c -= 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func formatNames() string {
	names := make([]string, 0, len(ttygrid.Formats()))
	for _, f := range ttygrid.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, "|")
}

// terminalFor detects width and color on w when it is a file. Other writers
// get a colorless terminal of DefaultWidth. A positive width overrides both.
func terminalFor(w io.Writer, width int) ttygrid.Terminal {
	var term ttygrid.Terminal = ttygrid.Fixed{Cols: ttygrid.DefaultWidth}
	if f, ok := w.(*os.File); ok {
		term = ttygrid.NewTerminal(f, ttygrid.DefaultTheme())
	}
	if width > 0 {
		term = widthOverride{Terminal: term, cols: width}
	}
	return term
}

// widthOverride pins the width of another terminal.
type widthOverride struct {
	ttygrid.Terminal
	cols int
}

func (w widthOverride) Width() int { return w.cols }
