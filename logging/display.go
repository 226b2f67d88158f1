package logging

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"docfmt/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// output is where all reporting is written.  It is kept apart from standard
// output so formatted text printed there can be redirected on its own.
var output io.Writer = os.Stderr

// SetOutput sets the writer all reporting is written to
func SetOutput(w io.Writer) {
	output = w
}

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	fmt.Fprint(output, ErrorStyleBG.Sprint(tag))
	fmt.Fprintln(output, ErrorColorFG.Sprint(" " + err.Error()))
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	fmt.Fprint(output, WarnStyleBG.Sprint(tag))
	fmt.Fprintln(output, WarnColorFG.Sprint(" " + msg))
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	fmt.Fprint(output, InfoStyleBG.Sprint(tag))
	fmt.Fprintln(output, InfoColorFG.Sprint(" " + msg))
}

// -----------------------------------------------------------------------------
// This section contains all the display functions for the different kinds of
// messages that can be logged -- these functions are called to print the
// message to the screen.

func (cm *ConfigMessage) display() {
	if cm.IsError {
		PrintErrorMessage(cm.Kind+" Error", errors.New(cm.Message))
	} else {
		PrintWarningMessage(cm.Kind+" Warning", cm.Message)
	}
}

func (fm *FormatMessage) display() {
	fm.displayBanner()
	fmt.Fprintln(output, fm.Message)

	if fm.Position != nil {
		fm.displayCodeSelection()
	}
}

// displayBanner displays the banner on top of all formatting messages
func (fm *FormatMessage) displayBanner() {
	fmt.Fprint(output, "\n-- ")
	kindLen := 0
	if fm.IsError {
		fmt.Fprint(output, ErrorStyleBG.Sprint("Format Error"))
		kindLen = len("Format Error")
	} else {
		fmt.Fprint(output, WarnStyleBG.Sprint("Format Warning"))
		kindLen = len("Format Warning")
	}

	fmt.Fprint(output, " ")

	fileName := filepath.Base(fm.Path)
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Fprint(output, strings.Repeat("-", dashCount) + " ")
	fmt.Fprint(output, InfoColorFG.Sprint(fileName))

	if fm.Position != nil {
		fmt.Fprintf(output, ":%d:%d", fm.Position.Line, fm.Position.Col)
	}

	fmt.Fprintln(output)
}

// displayCodeSelection displays the offending line of the file (with its line
// number) and a caret under the offending column
func (fm *FormatMessage) displayCodeSelection() {
	f, err := os.Open(fm.Path)
	if err != nil {
		// the file was readable when it was formatted; if it no longer is
		// there is nothing to show
		return
	}
	defer f.Close()

	var line string
	sc := bufio.NewScanner(f)
	for lineNumber := 1; sc.Scan(); lineNumber++ {
		if lineNumber == fm.Position.Line {
			line = strings.ReplaceAll(sc.Text(), "\t", "    ")
			break
		}
	}

	lineNumberWidth := len(strconv.Itoa(fm.Position.Line)) + 1
	lineNumberFmtStr := "%-" + strconv.Itoa(lineNumberWidth) + "v"

	fmt.Fprintln(output)
	fmt.Fprint(output, InfoColorFG.Sprint(fmt.Sprintf(lineNumberFmtStr, fm.Position.Line)))
	fmt.Fprint(output, "|  ")
	fmt.Fprintln(output, line)

	fmt.Fprint(output, strings.Repeat(" ", lineNumberWidth), "|  ")
	if fm.Position.Col > 1 {
		fmt.Fprint(output, strings.Repeat(" ", fm.Position.Col-1))
	}
	fmt.Fprintln(output, ErrorColorFG.Sprint("^"))
}

const fatalErrorPostlude = `
This is likely a bug in docfmt.`

func displayFatalError(msg string) {
	fmt.Fprint(output, "\n\n")
	fmt.Fprint(output, ErrorStyleBG.Sprint("Fatal Error "))
	fmt.Fprintln(output, ErrorColorFG.Sprint(msg))
	fmt.Fprintln(output, InfoColorFG.Sprint(fatalErrorPostlude))
}

// -----------------------------------------------------------------------------

// displayHeader displays the formatter's configuration before formatting
func displayHeader(profile string, width int) {
	fmt.Fprint(output, "docfmt ")
	fmt.Fprint(output, InfoColorFG.Sprint("v" + common.DocfmtVersion))
	fmt.Fprint(output, " -- profile: ")
	fmt.Fprint(output, InfoColorFG.Sprint(profile))
	fmt.Fprint(output, ", width: ")
	fmt.Fprintln(output, InfoColorFG.Sprint(width))
}

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Formatting")

// displayBeginPhase displays the beginning of a phase
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", padding(phase))
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner, _ = spinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a phase
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", padding(currentPhase)),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", padding(currentPhase)))
		}

		phaseSpinner = nil
	}
}

// padding returns the number of spaces which align a phase name
func padding(phase string) int {
	if len(phase) > maxPhaseLength {
		return 2
	}

	return maxPhaseLength - len(phase) + 2
}

// displayFinished displays the closing message
func displayFinished(success bool, errorCount, warningCount int) {
	fmt.Fprint(output, "\n")

	if success {
		fmt.Fprint(output, SuccessColorFG.Sprint("All done! "))
	} else {
		fmt.Fprint(output, ErrorColorFG.Sprint("Oh no! "))
	}

	fmt.Fprint(output, "(")

	switch errorCount {
	case 0:
		fmt.Fprint(output, SuccessColorFG.Sprint(0))
		fmt.Fprint(output, " errors, ")
	case 1:
		fmt.Fprint(output, ErrorColorFG.Sprint(1))
		fmt.Fprint(output, " error, ")
	default:
		fmt.Fprint(output, ErrorColorFG.Sprint(errorCount))
		fmt.Fprint(output, " errors, ")
	}

	switch warningCount {
	case 0:
		fmt.Fprint(output, SuccessColorFG.Sprint(0))
		fmt.Fprintln(output, " warnings)")
	case 1:
		fmt.Fprint(output, WarnColorFG.Sprint(1))
		fmt.Fprintln(output, " warning)")
	default:
		fmt.Fprint(output, WarnColorFG.Sprint(warningCount))
		fmt.Fprintln(output, " warnings)")
	}
}
