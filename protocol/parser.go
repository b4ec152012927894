package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ftsell/colourizr/colour"
)

const (
	COMMAND_HELP    = "help"
	COMMAND_CONVERT = "convert"
	COMMAND_NAME    = "name"
	COMMAND_SIZE    = "size"
	COMMAND_SWATCH  = "swatch"
	COMMAND_STATE   = "state"

	BINARY_ALG_RGB_BASE64  = "rgb64"
	BINARY_ALG_RGBA_BASE64 = "rgba64"
)

const (
	HELP = "colourizr - a colour conversion service.\n" +
		"\n" +
		"Available subcommands are:\n" +
		"HELP	- This help message\n" +
		"CONVERT	- Convert a colour into another format\n" +
		"NAME	- Look up a named colour\n" +
		"SIZE	- Get the number of palette swatches\n" +
		"SWATCH	- Get or Set one palette swatch\n" +
		"STATE	- Get the whole palette in a specific binary format\n" +
		"\n" +
		"All commands end with a newline character (\\n) and need to be sent as a UTF-8 encoded string (numbers as well).\n" +
		"Responses are always newline terminated as well. Failures are answered with 'ERR $reason\\n'.\n" +
		"More help is available with 'HELP $subcommand'\n"

	HELP_CONVERT = "Syntax: 'CONVERT $format $colour\\n'\n" +
		"Response: '$format $value\\n'\n" +
		"\n" +
		"Parses $colour and renders it in $format.\n" +
		"\n" +
		"$format	- One of hex, rgb, rgba, hsl, hsla, hsv, hsva, int24, int32, name.\n" +
		"$colour	- A colour name, hex code (#00f, 0000ff), rgb[a](...), hsl[a](...), hsv[a](...),\n" +
		"		  or a packed value written as int24:$n or int32:$n.\n"

	HELP_NAME = "Syntax: 'NAME $name\\n'\n" +
		"Response: 'NAME $name $hex\\n'\n" +
		"\n" +
		"Looks up a named colour. Names are case insensitive.\n"

	HELP_SIZE = "Syntax: 'SIZE\\n'\n" +
		"Response: 'SIZE $count\\n'\n" +
		"\n" +
		"Returns the number of swatches in the palette.\n"

	HELP_SWATCH = "Syntax: 'SWATCH $i [$colour]\\n'\n" +
		"Response: 'SWATCH $i $hex $alpha\\n'\n" +
		"\n" +
		"Gets or sets the palette swatch at index $i.\n" +
		"The mode of operation is determined by the second argument ($colour) being present or not.\n" +
		"If it is present, the swatch will be set to that colour and the new colour returned.\n" +
		"If it is not present, the current colour will only be returned.\n" +
		"\n" +
		"$i	- Swatch index counted from 0.\n" +
		"$colour	- Any colour accepted by CONVERT.\n"

	HELP_STATE = "Syntax: 'STATE [$algorithm]\\n'\n" +
		"Response: 'STATE $algorithm $data\\n'\n" +
		"\n" +
		"Returns all swatches, recalculated periodically.\n" +
		"\n" +
		"$algorithm	- rgb64 (3 bytes per swatch) or rgba64 (4 bytes per swatch, default), base64 encoded.\n"
)

// ParseAndHandleInput executes one command line and returns the response.
func ParseAndHandleInput(input string, palette *Palette) string {
	command, args := splitWord(strings.TrimSpace(input))

	switch strings.ToLower(command) {
	case COMMAND_HELP:
		return handleHelp(args)

	case COMMAND_CONVERT:
		format, colourArg := splitWord(args)
		if format == "" || colourArg == "" {
			return "ERR CONVERT command needs a format and a colour.\n"
		}
		c, err := ColorFromString(colourArg)
		if err != nil {
			return fmt.Sprintf("ERR could not parse colour: %v\n", err)
		}
		rendered, err := RenderColor(c, format)
		if err != nil {
			return fmt.Sprintf("ERR %v\n", err)
		}
		return fmt.Sprintf("%s %s\n", strings.ToLower(format), rendered)

	case COMMAND_NAME:
		if args == "" {
			return "ERR NAME command needs a colour name.\n"
		}
		hex, ok := colour.LookupName(args)
		if !ok {
			return fmt.Sprintf("ERR unknown colour name %s\n", args)
		}
		return fmt.Sprintf("NAME %s #%s\n", strings.ToLower(args), hex)

	case COMMAND_SIZE:
		return fmt.Sprintf("SIZE %d\n", palette.Size())

	case COMMAND_STATE:
		switch strings.ToLower(args) {
		case "", BINARY_ALG_RGBA_BASE64:
			return palette.GetStateRgbaBase64()
		case BINARY_ALG_RGB_BASE64:
			return palette.GetStateRgbBase64()
		default:
			return "ERR Unknown algorithm. Send HELP STATE\\n for information about available ones.\n"
		}

	case COMMAND_SWATCH:
		return handleSwatch(args, palette)

	default:
		return "ERR Unknown command. Send HELP\\n for detailed usage information\n"
	}
}

func handleHelp(args string) string {
	switch strings.ToLower(args) {
	case "", COMMAND_HELP:
		return HELP
	case COMMAND_CONVERT:
		return HELP_CONVERT
	case COMMAND_NAME:
		return HELP_NAME
	case COMMAND_SIZE:
		return HELP_SIZE
	case COMMAND_SWATCH:
		return HELP_SWATCH
	case COMMAND_STATE:
		return HELP_STATE
	default:
		return "ERR Unknown subcommand.\n"
	}
}

func handleSwatch(args string, palette *Palette) string {
	indexArg, colourArg := splitWord(args)
	if indexArg == "" {
		return "ERR SWATCH command has invalid number of arguments. Should either be 1 or 2.\n"
	}

	index, err := strconv.ParseUint(indexArg, 10, 32)
	if err != nil {
		return "ERR Argument 1 cannot be interpreted as swatch index.\n"
	}

	if colourArg != "" {
		c, err := ColorFromString(colourArg)
		if err != nil {
			return fmt.Sprintf("ERR could not parse colour: %v\n", err)
		}
		if err := palette.SetSwatch(uint(index), c); err != nil {
			return fmt.Sprintf("ERR %v\n", err)
		}
	}

	c, err := palette.GetSwatch(uint(index))
	if err != nil {
		return fmt.Sprintf("ERR %v\n", err)
	}
	return fmt.Sprintf("SWATCH %d %s %d\n", index, c.Hex(), c.Alpha())
}

// splitWord returns the first space separated word of s and the trimmed rest.
func splitWord(s string) (string, string) {
	word, rest, _ := strings.Cut(s, " ")
	return word, strings.TrimSpace(rest)
}
