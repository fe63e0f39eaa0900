package cmn

import "fmt"

/*
	minimal ansi escape helpers for diagnostics.
	flag layout (uint32): [ 0 | 0 | fore | attr ]
*/

type AnsiFlag uint32

const (
	AttrOff AnsiFlag = iota
	AttrBold
)

const (
	ForeBlack AnsiFlag = (iota + 30) << 8
	ForeRed
	ForeGreen
	ForeYellow
	ForeBlue
	ForeMagenta
	ForeCyan
	ForeWhite
)

func (f AnsiFlag) String() string {
	var attr = f & 0xFF
	var fore = (f >> 8) & 0xFF

	if fore == 0 {
		return fmt.Sprintf("\033[%dm", attr)
	}

	return fmt.Sprintf("\033[%d;%dm", attr, fore)
}
