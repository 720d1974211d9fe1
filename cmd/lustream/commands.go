package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"
	"golang.org/x/exp/ebnf"

	"github.com/alecthomas/lustream"
	"github.com/alecthomas/lustream/input"
)

type parseCmd struct {
	Format string   `enum:"repr,json,text" default:"repr" help:"Output format (${enum})."`
	Strict bool     `help:"Treat unparsed trailing input as an error."`
	Files  []string `arg:"" optional:"" help:"Stream files, possibly compressed. Reads stdin if omitted or \"-\"."`
}

func (c *parseCmd) Run(ctx *runContext) error {
	parser, err := ctx.parser(c.Strict)
	if err != nil {
		return err
	}
	for _, path := range paths(c.Files) {
		stream, err := ctx.read(parser, path)
		if err != nil {
			return err
		}
		if err := c.print(ctx.stdout, stream); err != nil {
			return err
		}
	}
	return nil
}

func (c *parseCmd) print(w io.Writer, stream *lustream.Stream) error {
	switch c.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(stream.Units)

	case "text":
		_, err := fmt.Fprintln(w, lustream.Render(stream.Units))
		return err

	default:
		printer := repr.New(w, repr.Indent("  "))
		for _, unit := range stream.Units {
			printer.Println(unit)
		}
		return nil
	}
}

type checkCmd struct {
	Strict bool     `help:"Treat unparsed trailing input as an error."`
	Files  []string `arg:"" optional:"" help:"Stream files, possibly compressed. Reads stdin if omitted or \"-\"."`
}

func (c *checkCmd) Run(ctx *runContext) error {
	parser, err := ctx.parser(c.Strict)
	if err != nil {
		return err
	}
	files := paths(c.Files)
	failed := 0
	for _, path := range files {
		stream, err := ctx.read(parser, path)
		if err != nil {
			ctx.log.Errorf("%s", err)
			failed++
			continue
		}
		fmt.Fprintf(ctx.stdout, "%s: %s\n", path, summarise(stream.Units))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(files))
	}
	return nil
}

// summarise counts units by type.
func summarise(units []lustream.Unit) string {
	var lexical, joined, chunks, formats, spaces int
	_ = lustream.Walk(units, func(unit lustream.Unit, next func() error) error {
		switch unit.(type) {
		case *lustream.LexicalUnit:
			lexical++
		case *lustream.JoinedLexicalUnit:
			joined++
		case *lustream.Chunk:
			chunks++
		case *lustream.Format:
			formats++
		case *lustream.Space:
			spaces++
		}
		return next()
	})
	return fmt.Sprintf("%d lexical, %d joined, %d chunks, %d format, %d space",
		lexical, joined, chunks, formats, spaces)
}

type grammarCmd struct {
	Verify bool `help:"Verify the grammar is well formed."`
}

func (c *grammarCmd) Run(ctx *runContext) error {
	if c.Verify {
		grammar, err := ebnf.Parse("grammar", strings.NewReader(lustream.Grammar))
		if err != nil {
			return err
		}
		if err := ebnf.Verify(grammar, "Stream"); err != nil {
			return err
		}
		ctx.log.Infof("grammar has %d productions", len(grammar))
	}
	_, err := fmt.Fprintln(ctx.stdout, lustream.Grammar)
	return err
}

func paths(files []string) []string {
	if len(files) == 0 {
		return []string{"-"}
	}
	return files
}

// read and parse a single file, or stdin for "-".
func (r *runContext) read(parser *lustream.Parser, path string) (*lustream.Stream, error) {
	var (
		rd       io.ReadCloser
		err      error
		filename string
	)
	if path == "-" {
		rd, err = input.NewReader(r.stdin)
		filename = "<stdin>"
	} else {
		rd, err = input.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	r.log.Debugf("parsing %s", path)
	stream, err := parser.Parse(filename, rd)
	if err != nil {
		return nil, err
	}
	if stream.Remainder != "" {
		r.log.Warningf("%s: stopped parsing, %d bytes of input remain", stream.RemainderPos, len(stream.Remainder))
	}
	return stream, nil
}
