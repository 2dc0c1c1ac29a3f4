package splash

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Image is a fixed block of art lines, immutable after construction.
// Lines are kept as runes so all width math is in logical characters,
// not bytes. Wide glyphs are not cell-width aware.
type Image struct {
	lines  [][]rune
	width  int
	height int
}

// New builds an Image from raw lines. Trailing carriage returns are
// stripped so CRLF art files behave like LF ones. A zero-line image is
// rejected: the scroll cycle length would be zero and the loop could
// never advance.
func New(lines []string) (*Image, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyImage
	}

	img := &Image{
		lines:  make([][]rune, len(lines)),
		height: len(lines),
	}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		rs := []rune(line)
		img.lines[i] = rs
		if len(rs) > img.width {
			img.width = len(rs)
		}
	}
	return img, nil
}

// Read builds an Image from newline-separated text.
func Read(r io.Reader) (*Image, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading art: %w", err)
	}
	return New(lines)
}

// Width returns the maximum line length in runes.
func (img *Image) Width() int { return img.width }

// Height returns the line count.
func (img *Image) Height() int { return img.height }

// Line returns the runes of line j. Callers must not mutate the result.
func (img *Image) Line(j int) []rune { return img.lines[j] }
