package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"docfmt/common"
	"docfmt/config"
	"docfmt/logging"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `docfmt` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("docfmt", "docfmt lays out documents and S-expressions to fit a page width", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	fmtCmd := cli.AddSubcommand("fmt", "format source files", true)
	fmtCmd.AddPrimaryArg("path", "the file or directory to format", true)
	fmtCmd.AddStringArg("width", "w", "the page width (overrides the profile)", false)
	fmtCmd.AddStringArg("profile", "p", "the name of the profile to format with", false)
	fmtCmd.AddStringArg("env-file", "e", "a file of environment variables to load", false)
	fmtCmd.AddFlag("write", "wr", "write the formatted output back to the files")
	fmtCmd.AddFlag("check", "ch", "only report files which are not formatted")
	fmtCmd.AddFlag("color", "co", "style the printed output")
	fmtCmd.AddFlag("dump", "d", "print the document tree instead of laying it out")

	cli.AddSubcommand("init", "create a configuration file in the working directory", false)
	cli.AddSubcommand("version", "print the docfmt version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	logging.Initialize(result.Arguments["loglevel"].(string))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "fmt":
		if !execFmtCommand(subResult) {
			os.Exit(1)
		}
	case "init":
		workDir, err := os.Getwd()
		if err != nil {
			logging.PrintErrorMessage("Path Error", err)
			os.Exit(1)
		}

		if !execInitCommand(workDir) {
			os.Exit(1)
		}
	case "version":
		logging.PrintInfoMessage("docfmt Version", common.DocfmtVersion)
	}
}

// stringArg returns the value of an optional string argument
func stringArg(result *olive.ArgParseResult, name string) string {
	if val, ok := result.Arguments[name]; ok {
		return val.(string)
	}

	return ""
}

// execFmtCommand executes the fmt subcommand and handles all errors.  It
// returns false if the run failed or, when checking, if any file was not
// formatted.
func execFmtCommand(result *olive.ArgParseResult) bool {
	// extract CLI data
	relPath, _ := result.PrimaryArg()

	path, err := filepath.Abs(relPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return false
	}

	paths, err := collectFiles(path)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return false
	}

	// profiles are looked up from the directory being formatted
	profDir := path
	if len(paths) == 1 && paths[0] == path {
		profDir = filepath.Dir(path)
	}

	prof, err := config.LoadProfile(profDir, stringArg(result, "profile"))
	if err != nil {
		logging.PrintErrorMessage("Config Error", err)
		return false
	}

	if err := config.ApplyEnv(prof, stringArg(result, "env-file")); err != nil {
		logging.PrintErrorMessage("Config Error", err)
		return false
	}

	if widthArg := stringArg(result, "width"); widthArg != "" {
		width, err := strconv.Atoi(widthArg)
		if err != nil || width <= 0 {
			logging.PrintErrorMessage("CLI Usage Error", fmt.Errorf("width must be a positive integer, got `%s`", widthArg))
			return false
		}

		prof.Width = width
	}

	fo := formatOptions{
		render: prof.Options(),
		write:  result.HasFlag("write"),
		check:  result.HasFlag("check"),
		dump:   result.HasFlag("dump"),
	}

	if err := fo.validate(); err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return false
	}

	if result.HasFlag("color") {
		fo.annotate = styleText
	}

	// results are printed on standard output unless they are written back
	logging.ShowProgress(fo.write)

	logging.ReportHeader(prof.Name, prof.Width)
	logging.BeginPhase("Formatting")

	results, err := formatFiles(context.Background(), paths, fo)
	if err != nil {
		logging.LogFatal("%s", err.Error())
	}

	logging.EndPhase()

	unformatted := reportResults(os.Stdout, results, fo)

	logging.ReportFinished()
	return logging.ShouldProceed() && !(fo.check && unformatted > 0)
}

// reportResults prints the results of a run to w in the order the files were
// given and returns the number of files which were not already formatted
func reportResults(w io.Writer, results []formatResult, fo formatOptions) int {
	unformatted := 0

	for _, res := range results {
		if !res.ok {
			continue
		}

		changed := res.out != res.src
		if changed {
			unformatted++
		}

		switch {
		case fo.check:
			if changed {
				fmt.Fprintln(w, res.path)
			}
		case fo.write:
			if changed {
				logging.PrintInfoMessage("Formatted", res.path)
			}
		default:
			if len(results) > 1 {
				fmt.Fprintf(w, "==> %s <==\n", res.path)
			}

			fmt.Fprint(w, res.display)
		}
	}

	return unformatted
}

// execInitCommand executes the `init` subcommand in dir.  It returns false if
// no configuration file was created.
func execInitCommand(dir string) bool {
	if err := config.InitConfig(dir); err != nil {
		logging.PrintErrorMessage("Config Init Error", err)
		return false
	}

	logging.PrintInfoMessage("Created", filepath.Join(dir, common.ConfigFileName))
	return true
}
