package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates an export format with no writer.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatXLSX}
}

// ParseFormat resolves a user-supplied format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want csv or xlsx)", ErrUnknownFormat, s)
}

// Ext returns the file extension, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}
