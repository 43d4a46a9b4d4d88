// Command gorb is the CLI driver for the gorb interpreter: an
// external collaborator to the language core (spec.md §1), scoped
// only via the interfaces the core exposes (a lexer, a parser, an
// evaluator, an environment).
//
// Grounded on go-mix/main/main.go's manual os.Args dispatch (no flag
// library — matching the teacher's own choice) and its REPL-server
// supplement (startServer/handleClient over net.Listen), extended
// here with the -t/--tokens and -a/--ast debug dumps go-mix only
// scaffolded as a commented-out printAST call.
package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/teatov/gorb/config"
	"github.com/teatov/gorb/environment"
	"github.com/teatov/gorb/evaluator"
	"github.com/teatov/gorb/lexer"
	"github.com/teatov/gorb/object"
	"github.com/teatov/gorb/parser"
	"github.com/teatov/gorb/repl"
	"github.com/teatov/gorb/token"
)

const (
	version           = "gorb 0.1.0"
	defaultConfigPath = ".gorbrc.yaml"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	configPath, args := extractConfigPath(os.Args[1:])

	if len(args) == 0 {
		runRepl(configPath)
		return
	}

	switch args[0] {
	case "version":
		fmt.Println(version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "server":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "usage: gorb server <port>")
			os.Exit(1)
		}
		runServer(args[1], configPath)
		return
	}

	runFileArgs(args, configPath)
}

// extractConfigPath pulls a --config <path> or --config=<path> flag
// out of args, wherever it appears, and returns the remaining args
// alongside it. Every mode (REPL, server, file-with--interactive)
// resolves its config file through this one path, instead of each
// mode hard-coding ".gorbrc.yaml" or needing its own flag parser to
// know about --config.
func extractConfigPath(args []string) (string, []string) {
	path := defaultConfigPath
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config":
			if i+1 < len(args) {
				path = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
		default:
			rest = append(rest, arg)
		}
	}
	return path, rest
}

func printUsage() {
	cyanColor.Println("gorb - a small expression-oriented scripting language")
	fmt.Println()
	fmt.Println("usage: gorb [command | file-path] [flags]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  version             print the version string")
	fmt.Println("  help                print this usage text")
	fmt.Println("  server <port>       serve a REPL over TCP on <port>")
	fmt.Println()
	fmt.Println("flags (file mode):")
	fmt.Println("  -i, --interactive   enter the REPL after running the file")
	fmt.Println("  -t, --tokens        dump tokens before parsing")
	fmt.Println("  -a, --ast           dump the printed AST before evaluation")
	fmt.Println()
	fmt.Println("flags (any mode):")
	fmt.Println("  --config <path>     load the REPL/CLI config from path instead of")
	fmt.Println("                      .gorbrc.yaml in the working directory")
}

type fileFlags struct {
	path        string
	interactive bool
	dumpTokens  bool
	dumpAST     bool
}

func parseFileArgs(args []string) (fileFlags, error) {
	var f fileFlags
	for _, arg := range args {
		switch arg {
		case "-i", "--interactive":
			f.interactive = true
		case "-t", "--tokens":
			f.dumpTokens = true
		case "-a", "--ast":
			f.dumpAST = true
		default:
			if strings.HasPrefix(arg, "-") {
				return f, fmt.Errorf("unrecognized flag: %s", arg)
			}
			if f.path != "" {
				return f, fmt.Errorf("unexpected extra argument: %s", arg)
			}
			f.path = arg
		}
	}
	return f, nil
}

// runFileArgs is the file-mode entry point. Host-level failures
// (missing file, wrong extension, I/O error) exit nonzero; once the
// source is read, every reported error — parse or evaluation — is a
// normal, successfully-handled outcome and exits 0 (spec.md §6).
func runFileArgs(args []string, configPath string) {
	flags, err := parseFileArgs(args)
	if err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if flags.path == "" {
		redColor.Fprintln(os.Stderr, "no source file given")
		os.Exit(1)
	}
	if filepath.Ext(flags.path) != ".gorb" {
		redColor.Fprintf(os.Stderr, "source file must end in .gorb: %s\n", flags.path)
		os.Exit(1)
	}

	source, err := os.ReadFile(flags.path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %s: %v\n", flags.path, err)
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not load config: %v\n", err)
	}
	flags.dumpTokens = flags.dumpTokens || cfg.DumpTokens
	flags.dumpAST = flags.dumpAST || cfg.DumpAST

	runSource(string(source), flags.path, flags, os.Stdout)

	if flags.interactive {
		runRepl(configPath)
	}
}

func runSource(source, file string, flags fileFlags, out io.Writer) {
	l := lexer.New(source, file)

	if flags.dumpTokens {
		dumpTokens(l, out)
		l = lexer.New(source, file)
	}

	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			redColor.Fprintln(out, e)
		}
		return
	}

	if flags.dumpAST {
		fmt.Fprintln(out, program.String())
	}

	env := environment.NewWithOutput(out)
	result := evaluator.Evaluate(program, env)
	if result == nil {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintln(out, result.Inspect())
		return
	}
	fmt.Fprintln(out, result.Inspect())
}

func dumpTokens(l *lexer.Lexer, out io.Writer) {
	for {
		tok := l.NextToken()
		fmt.Fprintf(out, "%s %q\n", tok.Type, tok.Literal)
		if tok.Type == token.EOF {
			break
		}
	}
}

func runRepl(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not load config: %v\n", err)
	}
	r := repl.New(cfg)
	r.Start(os.Stdin, os.Stdout)
}

func runServer(port, configPath string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("gorb REPL server listening on :%s\n", port)

	cfg, _ := config.Load(configPath)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "accept error: %v\n", err)
			continue
		}
		go handleConn(conn, cfg)
	}
}

func handleConn(conn net.Conn, cfg config.Config) {
	defer conn.Close()
	r := repl.New(cfg)
	r.Start(conn, conn)
}
