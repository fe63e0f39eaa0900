package cmn

import (
	"fmt"
	"os"
	"strings"
)

/*
	diagnostic printers for config warnings and prompts.
	not a logging subsystem - these exist so validation can talk to the
	operator without dragging in a logger.
*/

const MediumMark string = "✓"
const MediumX string = "✕"
const MediumBulletPoint string = "•"

func FPrintflnTrailing(f *os.File, seq AnsiFlag, format string, args ...interface{}) {
	fmt.Fprintf(
		f,
		fmt.Sprintf("%v%s\n%v", seq, format, AttrOff),
		args...)
}

func PrintflnSuccess(_fmt string, argv ...interface{}) {
	fmt.Fprintf(
		os.Stderr,
		fmt.Sprintf("%v%s %s%v\n",
			ForeGreen, MediumMark, _fmt, AttrOff),
		argv...)
}

func PrintflnError(_fmt string, argv ...interface{}) {
	FPrintflnTrailing(os.Stderr, ForeRed, _fmt, argv...)
}

func PrintError(err error) {
	PrintflnError("%s", err)
}

func PrintflnWarn(_fmt string, argv ...interface{}) {
	fmt.Fprintf(
		os.Stderr,
		fmt.Sprintf("%v%s %s%v\n",
			ForeYellow, MediumX, _fmt, AttrOff),
		argv...)
}

func PrintflnNotify(_fmt string, argv ...interface{}) {
	fmt.Fprintf(
		os.Stdout,
		fmt.Sprintf("%v%s%v %s\n",
			ForeBlue, MediumBulletPoint, AttrOff, _fmt),
		argv...)
}

/*
	conditional formatting.
	if raw == true then call is equivalent to fmt.Printf with LF appended,
	otherwise provided printer fptr is used
*/
func CndPrintfln(
	raw bool,
	fptr func(string, ...interface{}),
	_fmt string, argv ...interface{}) {

	if raw {
		fmt.Printf(fmt.Sprintf("%s\n", _fmt), argv...)
	} else {
		fptr(_fmt, argv...)
	}
}

func CndPrintError(raw bool, err error) {
	if raw {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	} else {
		PrintError(err)
	}
}

/* collapses line breaks and runs of spaces into single spaces */
func FlattenStr(message string) string {
	return strings.Join(strings.Fields(message), " ")
}
