package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/alecthomas/lustream"
)

var (
	version = "dev"
	cli     struct {
		Version kong.VersionFlag `help:"Show version."`
		Trace   bool             `help:"Trace parsing to stderr."`
		Verbose int              `short:"v" type:"counter" help:"Increase log verbosity."`

		Parse   parseCmd   `cmd:"" help:"Parse streams and print their units."`
		Check   checkCmd   `cmd:"" help:"Check that streams parse."`
		Grammar grammarCmd `cmd:"" help:"Print the stream grammar as EBNF."`
	}
)

// Shared state passed to each command.
type runContext struct {
	stdout  io.Writer
	stdin   io.Reader
	log     commonlog.Logger
	options []lustream.Option
}

func (r *runContext) parser(strict bool) (*lustream.Parser, error) {
	options := append([]lustream.Option{lustream.AllowTrailing(!strict)}, r.options...)
	return lustream.New(options...)
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Parse lexical unit streams.`),
		kong.Vars{"version": version},
	)
	commonlog.Configure(cli.Verbose, nil)
	ctx := &runContext{
		stdout: os.Stdout,
		stdin:  os.Stdin,
		log:    commonlog.GetLogger("lustream"),
	}
	if cli.Trace {
		ctx.options = append(ctx.options, lustream.Trace(os.Stderr))
	}
	err := kctx.Run(ctx)
	kctx.FatalIfErrorf(err)
}
