/*
mdtree converts GitHub Flavoured Markdown to other markup formats.

Usage:

	mdtree [--from FORMAT] [--to FORMAT] [--output FILE] [INPUT]

Reads INPUT, or stdin if no argument is given, and writes the converted
document to FILE or stdout.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mdtree/convert"
	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracer traces with key 'mdtree.cli'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.cli")
}

var rootCmd = &cobra.Command{
	Use:   "mdtree [flags] [input file]",
	Short: "Convert GitHub Flavoured Markdown to other markup formats",
	Long: fmt.Sprintf(`mdtree parses Markdown into a Pandoc-compatible document tree and
renders the tree in another format.

Readers: %s
Writers: %s`,
		strings.Join(convert.Readers(), ", "),
		strings.Join(convert.Writers(), ", ")),
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().String("from", "markdown", "input format")
	rootCmd.PersistentFlags().String("to", "native", "output format")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output file (default stdout)")
	rootCmd.PersistentFlags().String("trace", "Info", "trace level [Debug|Info|Error]")
	viper.SetEnvPrefix("MDTREE")
	viper.AutomaticEnv()
	for _, flag := range []string{"from", "to", "output", "trace"} {
		viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag))
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func main() {
	setupTracing()
	if err := rootCmd.Execute(); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
}

func setupTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func run(cmd *cobra.Command, args []string) error {
	level := traceLevel(viper.GetString("trace"))
	for _, key := range []string{"mdtree.cli", "mdtree.markdown", "mdtree.inline", "mdtree.tree", "mdtree.backend", "mdtree.convert"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	source, err := readInput(args)
	if err != nil {
		return err
	}
	from := viper.GetString("from")
	to := viper.GetString("to")
	tracer().Infof("converting from %s to %s", from, to)
	result, err := convert.Convert(source, from, to)
	if err != nil {
		return err
	}
	return writeOutput(result, viper.GetString("output"))
}

func traceLevel(name string) tracing.TraceLevel {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", core.WrapError(err, core.EINVALID, "reading stdin failed")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "cannot read input file %s", args[0])
	}
	return string(data), nil
}

func writeOutput(result, path string) error {
	if path == "" {
		fmt.Println(result)
		return nil
	}
	if err := os.WriteFile(path, []byte(result), 0644); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot write output file %s", path)
	}
	pterm.Info.Printfln("wrote %s", path)
	return nil
}
