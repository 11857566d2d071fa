package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/text/cases"

	"github.com/treekeep/doctree"
	"github.com/treekeep/doctree/codec"
	"github.com/treekeep/doctree/internal/mcpserver"
	"github.com/treekeep/doctree/tree"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("doctree v%s\n", doctree.Version())
	case "help", "-h", "--help":
		printUsage()
	case "get":
		if err := handleGet(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "set":
		if err := handleSet(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "del":
		if err := handleDel(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "keys":
		if err := handleKeys(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "structure":
		if err := handleStructure(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "search":
		if err := handleSearch(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "convert":
		if err := handleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// getFlags contains flags for the get command
type getFlags struct {
	format string
	raw    bool
}

func setupGetFlags() (*flag.FlagSet, *getFlags) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	flags := &getFlags{}

	fs.StringVar(&flags.format, "format", "", "input format (json, yaml, toml, xml); detected when omitted")
	fs.BoolVar(&flags.raw, "raw", false, "print string values without quotes")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: doctree get [flags] <file> <path>\n\n")
		_, _ = fmt.Fprintf(output, "Resolve a dot-separated path and print the value as JSON.\n")
		_, _ = fmt.Fprintf(output, "Numeric segments index into sequences. Use '-' to read from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  doctree get config.yaml server.port\n")
		_, _ = fmt.Fprintf(output, "  doctree get config.yaml hosts.0.name\n")
		_, _ = fmt.Fprintf(output, "  cat config.json | doctree get - server\n")
	}

	return fs, flags
}

func handleGet(args []string) error {
	fs, flags := setupGetFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("get command requires a file and a path")
	}

	root, _, err := loadDocument(fs.Arg(0), flags.format)
	if err != nil {
		return err
	}

	path := fs.Arg(1)
	v, ok := tree.Resolve(root, path)
	if !ok {
		return fmt.Errorf("path not found: %s", path)
	}

	if flags.raw && v.Kind() == tree.KindString {
		fmt.Println(v.String())
		return nil
	}
	data, err := (&codec.JSON{}).Encode(v)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// setFlags contains flags for the set command
type setFlags struct {
	format      string
	valueFormat string
	output      string
	inPlace     bool
}

func setupSetFlags() (*flag.FlagSet, *setFlags) {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	flags := &setFlags{}

	fs.StringVar(&flags.format, "format", "", "input format (json, yaml, toml, xml); detected when omitted")
	fs.StringVar(&flags.valueFormat, "value-format", "", "format of the value argument; sniffed when omitted")
	fs.StringVar(&flags.output, "o", "", "write the modified document to this file instead of stdout")
	fs.BoolVar(&flags.inPlace, "i", false, "edit the input file in place")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: doctree set [flags] <file> <path> <value>\n\n")
		_, _ = fmt.Fprintf(output, "Assign a value at a dot-separated path, creating intermediate mappings\n")
		_, _ = fmt.Fprintf(output, "as needed. Non-mapping values along the path are replaced by mappings.\n")
		_, _ = fmt.Fprintf(output, "The value is a document fragment (JSON or YAML text).\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  doctree set config.yaml server.port 5433\n")
		_, _ = fmt.Fprintf(output, "  doctree set -i config.yaml server.replica '{\"host\": \"db-02\"}'\n")
		_, _ = fmt.Fprintf(output, "  doctree set -o out.yaml config.yaml color blue\n")
	}

	return fs, flags
}

func handleSet(args []string) error {
	fs, flags := setupSetFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("set command requires a file, a path, and a value")
	}
	if flags.inPlace && flags.output != "" {
		return fmt.Errorf("-i and -o are mutually exclusive")
	}

	inputPath := fs.Arg(0)
	root, format, err := loadDocument(inputPath, flags.format)
	if err != nil {
		return err
	}

	val, err := parseValueArg(fs.Arg(2), flags.valueFormat)
	if err != nil {
		return err
	}
	if err := tree.Assign(root, fs.Arg(1), val); err != nil {
		return err
	}

	return emitDocument(root, format, destination(flags.inPlace, inputPath, flags.output))
}

// delFlags contains flags for the del command
type delFlags struct {
	format  string
	output  string
	inPlace bool
}

func setupDelFlags() (*flag.FlagSet, *delFlags) {
	fs := flag.NewFlagSet("del", flag.ContinueOnError)
	flags := &delFlags{}

	fs.StringVar(&flags.format, "format", "", "input format (json, yaml, toml, xml); detected when omitted")
	fs.StringVar(&flags.output, "o", "", "write the modified document to this file instead of stdout")
	fs.BoolVar(&flags.inPlace, "i", false, "edit the input file in place")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: doctree del [flags] <file> <path>\n\n")
		_, _ = fmt.Fprintf(output, "Remove the value at a dot-separated path. Removing a missing path\n")
		_, _ = fmt.Fprintf(output, "is a no-op.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  doctree del config.yaml server.debug\n")
		_, _ = fmt.Fprintf(output, "  doctree del -i config.yaml deprecated\n")
	}

	return fs, flags
}

func handleDel(args []string) error {
	fs, flags := setupDelFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("del command requires a file and a path")
	}
	if flags.inPlace && flags.output != "" {
		return fmt.Errorf("-i and -o are mutually exclusive")
	}

	inputPath := fs.Arg(0)
	root, format, err := loadDocument(inputPath, flags.format)
	if err != nil {
		return err
	}

	tree.Remove(root, fs.Arg(1))

	return emitDocument(root, format, destination(flags.inPlace, inputPath, flags.output))
}

// keysFlags contains flags for the keys command
type keysFlags struct {
	format string
	depth  int
}

func setupKeysFlags() (*flag.FlagSet, *keysFlags) {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	flags := &keysFlags{}

	fs.StringVar(&flags.format, "format", "", "input format (json, yaml, toml, xml); detected when omitted")
	fs.IntVar(&flags.depth, "depth", tree.DefaultKeysDepth, "maximum path depth to enumerate")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: doctree keys [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Enumerate key paths in document order, one per line. Sequences list\n")
		_, _ = fmt.Fprintf(output, "their first ten elements plus a collapse marker.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  doctree keys config.yaml\n")
		_, _ = fmt.Fprintf(output, "  doctree keys --depth 2 big-document.json\n")
	}

	return fs, flags
}

func handleKeys(args []string) error {
	fs, flags := setupKeysFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("keys command requires exactly one file")
	}

	root, _, err := loadDocument(fs.Arg(0), flags.format)
	if err != nil {
		return err
	}

	for _, path := range tree.Keys(root, flags.depth) {
		fmt.Println(path)
	}
	return nil
}

// structureFlags contains flags for the structure command
type structureFlags struct {
	format string
	depth  int
}

func setupStructureFlags() (*flag.FlagSet, *structureFlags) {
	fs := flag.NewFlagSet("structure", flag.ContinueOnError)
	flags := &structureFlags{}

	fs.StringVar(&flags.format, "format", "", "input format (json, yaml, toml, xml); detected when omitted")
	fs.IntVar(&flags.depth, "depth", tree.DefaultShapeDepth, "depth beyond which values collapse to descriptors")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: doctree structure [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Print a shape summary of the document: scalars become type names,\n")
		_, _ = fmt.Fprintf(output, "values beyond the depth limit become descriptors like\n")
		_, _ = fmt.Fprintf(output, "{Mapping with 12 keys}.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  doctree structure config.yaml\n")
		_, _ = fmt.Fprintf(output, "  doctree structure --depth 1 big-document.json\n")
	}

	return fs, flags
}

func handleStructure(args []string) error {
	fs, flags := setupStructureFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("structure command requires exactly one file")
	}

	root, _, err := loadDocument(fs.Arg(0), flags.format)
	if err != nil {
		return err
	}

	data, err := (&codec.YAML{}).Encode(tree.Summarize(root, flags.depth))
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// searchFlags contains flags for the search command
type searchFlags struct {
	format        string
	keysOnly      bool
	valuesOnly    bool
	regex         bool
	caseSensitive bool
	limit         int
	noColor       bool
}

func setupSearchFlags() (*flag.FlagSet, *searchFlags) {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	flags := &searchFlags{}

	fs.StringVar(&flags.format, "format", "", "input format (json, yaml, toml, xml); detected when omitted")
	fs.BoolVar(&flags.keysOnly, "keys-only", false, "match mapping keys only")
	fs.BoolVar(&flags.valuesOnly, "values-only", false, "match values only")
	fs.BoolVar(&flags.regex, "regex", false, "treat the pattern as a regular expression")
	fs.BoolVar(&flags.caseSensitive, "case-sensitive", false, "match case exactly (substring mode folds case by default)")
	fs.IntVar(&flags.limit, "limit", tree.DefaultSearchResults, "maximum number of matches")
	fs.BoolVar(&flags.noColor, "no-color", false, "disable match highlighting")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: doctree search [flags] <file> <pattern>\n\n")
		_, _ = fmt.Fprintf(output, "Search keys and values for a pattern. Collection values match against\n")
		_, _ = fmt.Fprintf(output, "their summary descriptor, not their full content.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  doctree search config.yaml redis\n")
		_, _ = fmt.Fprintf(output, "  doctree search --keys-only config.yaml port\n")
		_, _ = fmt.Fprintf(output, "  doctree search --regex config.yaml '^db-\\d+$'\n")
	}

	return fs, flags
}

func handleSearch(args []string) error {
	fs, flags := setupSearchFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("search command requires a file and a pattern")
	}
	if flags.keysOnly && flags.valuesOnly {
		return fmt.Errorf("--keys-only and --values-only are mutually exclusive")
	}
	if flags.noColor {
		color.NoColor = true
	}

	root, _, err := loadDocument(fs.Arg(0), flags.format)
	if err != nil {
		return err
	}

	pattern := fs.Arg(1)
	opts := tree.SearchOptions{
		Keys:          !flags.valuesOnly,
		Values:        !flags.keysOnly,
		Regex:         flags.regex,
		CaseSensitive: flags.caseSensitive,
		MaxResults:    flags.limit,
	}
	matches, err := tree.Search(root, pattern, opts)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Println("No matches found")
		return nil
	}

	highlight := newHighlighter(pattern, flags)
	for _, m := range matches {
		switch m.Kind {
		case tree.MatchKey:
			fmt.Printf("%s  [key]\n", highlight(m.Path))
		default:
			fmt.Printf("%s = %s\n", m.Path, highlight(m.Preview))
		}
	}
	if len(matches) == flags.limit {
		fmt.Printf("\n(limit of %d reached; use --limit to see more)\n", flags.limit)
	}
	return nil
}

// newHighlighter returns a function that wraps literal pattern
// occurrences in color. Regex patterns are left unhighlighted.
func newHighlighter(pattern string, flags *searchFlags) func(string) string {
	if flags.regex || color.NoColor || pattern == "" {
		return func(s string) string { return s }
	}
	bold := color.New(color.FgYellow, color.Bold)
	if flags.caseSensitive {
		return func(s string) string {
			var b strings.Builder
			for {
				i := strings.Index(s, pattern)
				if i < 0 {
					b.WriteString(s)
					return b.String()
				}
				b.WriteString(s[:i])
				b.WriteString(bold.Sprint(s[i : i+len(pattern)]))
				s = s[i+len(pattern):]
			}
		}
	}
	fold := cases.Fold()
	needle := fold.String(pattern)
	return func(s string) string {
		folded, starts, ends := foldOffsets(s, fold)
		var b strings.Builder
		last, from := 0, 0
		for {
			i := strings.Index(folded[from:], needle)
			if i < 0 {
				break
			}
			i += from
			from = i + len(needle)
			start, end := starts[i], ends[from-1]
			if start < last {
				continue
			}
			b.WriteString(s[last:start])
			b.WriteString(bold.Sprint(s[start:end]))
			last = end
		}
		b.WriteString(s[last:])
		return b.String()
	}
}

// foldOffsets case-folds s rune by rune and records, for every byte of
// the folded text, the byte range of the source rune it came from.
// Match positions in the folded text can then be mapped back to spans
// of s that always land on rune boundaries, even when folding changes
// a rune's encoded length.
func foldOffsets(s string, fold cases.Caser) (string, []int, []int) {
	var b strings.Builder
	starts := make([]int, 0, len(s))
	ends := make([]int, 0, len(s))
	for i := 0; i < len(s); {
		_, w := utf8.DecodeRuneInString(s[i:])
		f := fold.String(s[i : i+w])
		for j := 0; j < len(f); j++ {
			starts = append(starts, i)
			ends = append(ends, i+w)
		}
		b.WriteString(f)
		i += w
	}
	return b.String(), starts, ends
}

// convertFlags contains flags for the convert command
type convertFlags struct {
	format string
	target string
	output string
}

func setupConvertFlags() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertFlags{}

	fs.StringVar(&flags.format, "format", "", "input format (json, yaml, toml, xml); detected when omitted")
	fs.StringVar(&flags.target, "t", "", "target format (json, yaml, toml, xml), required")
	fs.StringVar(&flags.output, "o", "", "write the converted document to this file instead of stdout")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: doctree convert -t <format> [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Convert a document between formats. Key order is preserved for\n")
		_, _ = fmt.Fprintf(output, "json, yaml, and toml output.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  doctree convert -t json config.yaml\n")
		_, _ = fmt.Fprintf(output, "  doctree convert -t yaml -o config.yaml config.json\n")
	}

	return fs, flags
}

func handleConvert(args []string) error {
	fs, flags := setupConvertFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file")
	}
	if flags.target == "" {
		fs.Usage()
		return fmt.Errorf("convert command requires -t <format>")
	}

	target, err := codec.ParseFormat(flags.target)
	if err != nil {
		return err
	}

	root, _, err := loadDocument(fs.Arg(0), flags.format)
	if err != nil {
		return err
	}

	return emitDocument(root, target, flags.output)
}

func setupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: doctree mcp\n\n")
		_, _ = fmt.Fprintf(output, "Run the MCP server over stdio. Defaults are configurable via\n")
		_, _ = fmt.Fprintf(output, "DOCTREE_* environment variables; see the server instructions.\n")
	}
	return fs
}

func handleMCP(args []string) error {
	fs := setupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// loadDocument reads and decodes a document. A path of "-" reads stdin.
func loadDocument(path, formatFlag string) (*tree.Value, codec.Format, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, codec.FormatUnknown, err
	}

	format := codec.FormatUnknown
	if formatFlag != "" {
		if format, err = codec.ParseFormat(formatFlag); err != nil {
			return nil, codec.FormatUnknown, err
		}
	} else if path != "-" {
		format = codec.DetectFormat(path)
	}
	if format == codec.FormatUnknown {
		format = codec.DetectFormatFromContent(data)
	}
	if format == codec.FormatUnknown {
		return nil, codec.FormatUnknown, fmt.Errorf("cannot determine format of %s; pass --format", path)
	}

	c, err := codec.For(format)
	if err != nil {
		return nil, codec.FormatUnknown, err
	}
	root, err := c.Decode(data)
	if err != nil {
		return nil, codec.FormatUnknown, err
	}
	return root, format, nil
}

// parseValueArg decodes a value argument as a document fragment.
// Unparseable fragments and empty input become a plain string / null.
func parseValueArg(value, formatFlag string) (*tree.Value, error) {
	if formatFlag != "" {
		format, err := codec.ParseFormat(formatFlag)
		if err != nil {
			return nil, err
		}
		c, err := codec.For(format)
		if err != nil {
			return nil, err
		}
		v, err := c.Decode([]byte(value))
		if err != nil {
			return nil, fmt.Errorf("invalid value: %w", err)
		}
		return v, nil
	}

	format := codec.DetectFormatFromContent([]byte(value))
	if format == codec.FormatUnknown {
		return tree.Null(), nil
	}
	c, err := codec.For(format)
	if err != nil {
		return nil, err
	}
	v, err := c.Decode([]byte(value))
	if err != nil {
		// Shell arguments like "foo: bar: baz" are not valid fragments
		// but make fine literal strings.
		return tree.FromString(value), nil
	}
	return v, nil
}

// destination picks where an edited document goes: back to the input
// file with -i, to the -o path, or stdout when both are empty.
func destination(inPlace bool, inputPath, outputPath string) string {
	if inPlace {
		return inputPath
	}
	return outputPath
}

// emitDocument encodes the tree in the given format and writes it to
// the output path, or stdout when the path is empty.
func emitDocument(root *tree.Value, format codec.Format, outputPath string) error {
	c, err := codec.For(format)
	if err != nil {
		return err
	}
	data, err := c.Encode(root)
	if err != nil {
		return err
	}
	if outputPath == "" || outputPath == "-" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

var commandNames = []string{
	"get", "set", "del", "keys", "structure", "search", "convert", "mcp", "version", "help",
}

// suggestCommand returns the closest known command within edit
// distance 2, or empty when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`doctree - structured document tools

Usage:
  doctree <command> [options]

Commands:
  get         Resolve a path and print the value
  set         Assign a value at a path
  del         Remove the value at a path
  keys        Enumerate key paths in document order
  structure   Print a shape summary of a document
  search      Search keys and values for a pattern
  convert     Convert a document between formats
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  doctree get config.yaml server.port
  doctree set -i config.yaml server.port 5433
  doctree keys --depth 2 config.yaml
  doctree search config.yaml redis
  doctree convert -t json config.yaml

Run 'doctree <command> --help' for more information on a command.`)
}
