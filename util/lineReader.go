package util

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// MaxLineLength bounds a single protocol line.
const MaxLineLength = 4096

var ErrLineTooLong = errors.New("line exceeds maximum length")

// LineReader reads newline terminated lines from a stream.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(reader io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReaderSize(reader, MaxLineLength)}
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator. A
// final unterminated line is returned without error; the next call reports
// io.EOF. Lines longer than MaxLineLength are skipped with ErrLineTooLong.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.reader.ReadSlice('\n')
	switch {
	case errors.Is(err, bufio.ErrBufferFull):
		// drop the rest of the oversized line
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = l.reader.ReadSlice('\n')
		}
		if err != nil {
			return "", err
		}
		return "", ErrLineTooLong
	case errors.Is(err, io.EOF) && len(line) > 0:
		return trimLine(line), nil
	case err != nil:
		return "", err
	}
	return trimLine(line), nil
}

// Lines splits a datagram into its non-empty lines.
func Lines(datagram []byte) []string {
	var lines []string
	for _, line := range bytes.Split(datagram, []byte{'\n'}) {
		if trimmed := trimLine(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func trimLine(line []byte) string {
	return strings.TrimRight(string(line), "\r\n")
}
