package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	require "github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
)

func newTestContext(stdin string) (*runContext, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	return &runContext{
		stdout: stdout,
		stdin:  strings.NewReader(stdin),
		log:    commonlog.GetLogger("test"),
	}, stdout
}

func TestParseCmdText(t *testing.T) {
	ctx, stdout := newTestContext(`^a\$b<n>/c$ [x]`)
	cmd := &parseCmd{Format: "text"}
	require.NoError(t, cmd.Run(ctx))
	require.Equal(t, "^a\\$b<n>/c$ [x]\n", stdout.String())
}

func TestParseCmdJSON(t *testing.T) {
	ctx, stdout := newTestContext(`^*<det>$`)
	cmd := &parseCmd{Format: "json"}
	require.NoError(t, cmd.Run(ctx))
	require.Equal(t, `[
  {
    "type": "lexical_unit",
    "analyses": [
      {
        "ling_form": "",
        "flag": "unanalyzed",
        "tags": [
          "det"
        ]
      }
    ]
  }
]
`, stdout.String())
}

func TestParseCmdStrict(t *testing.T) {
	ctx, _ := newTestContext(`^a$ trailing`)
	cmd := &parseCmd{Format: "text", Strict: true}
	err := cmd.Run(ctx)
	require.EqualError(t, err, `<stdin>:1:5: unexpected input "trailing"`)
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("^a$ N{^b<n>+c$}[f]\n"), 0600))
	require.NoError(t, os.WriteFile(bad, []byte("^a"), 0600))

	ctx, stdout := newTestContext("")
	cmd := &checkCmd{Files: []string{good}}
	require.NoError(t, cmd.Run(ctx))
	require.Equal(t, good+": 1 lexical, 1 joined, 1 chunks, 1 format, 2 space\n", stdout.String())

	cmd = &checkCmd{Files: []string{good, bad}}
	require.EqualError(t, cmd.Run(ctx), "1 of 2 files failed to parse")
}

func TestGrammarCmd(t *testing.T) {
	ctx, stdout := newTestContext("")
	cmd := &grammarCmd{Verify: true}
	require.NoError(t, cmd.Run(ctx))
	require.True(t, strings.HasPrefix(stdout.String(), "Stream = "))
}

func TestCLIFlags(t *testing.T) {
	var cli struct {
		Verbose int      `short:"v" type:"counter"`
		Parse   parseCmd `cmd:""`
	}
	parser, err := kong.New(&cli)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"-vv", "parse", "--format=json", "a.txt", "b.txt"})
	require.NoError(t, err)
	require.Equal(t, 2, cli.Verbose)
	require.Equal(t, "json", cli.Parse.Format)
	require.Equal(t, []string{"a.txt", "b.txt"}, cli.Parse.Files)
}
