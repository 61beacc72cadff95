package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SMI iView sample files are tab-delimited with "##" comment headers.
// Sample rows carry: time, set, pupil h/v, corneal reflex h/v, x, y,
// diam h/v. Rows flagged MSG are tracker messages, not samples.
const (
	iviewColumns = 10
	iviewColX    = 6
	iviewColY    = 7
)

// ParseIView reads iView sample rows into a scan path. Rows where both
// x and y are zero are track-loss samples (blinks) and become absent
// points.
func ParseIView(r io.Reader) (ScanPath, error) {
	var path ScanPath
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "##") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) >= 2 && fields[1] == "MSG" {
			continue
		}
		if len(fields) < iviewColumns {
			return nil, fmt.Errorf("%w: iview line %d has %d fields (want %d)", ErrMalformed, lineNo, len(fields), iviewColumns)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(fields[iviewColX]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: iview line %d: bad x %q", ErrMalformed, lineNo, fields[iviewColX])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[iviewColY]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: iview line %d: bad y %q", ErrMalformed, lineNo, fields[iviewColY])
		}
		if x == 0 && y == 0 {
			path = append(path, Point{})
			continue
		}
		path = append(path, Point{X: x, Y: y, Valid: true})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading iview data: %w", err)
	}
	return path, nil
}

// LoadIViewFile parses the iView sample file at path.
func LoadIViewFile(path string) (ScanPath, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening iview file: %w", err)
	}
	defer f.Close()
	return ParseIView(f)
}
