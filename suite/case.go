// Package suite loads perft regression suites and runs them against the rules engine.
package suite

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case is one position with its expected perft node counts, keyed by depth.
type Case struct {
	Name  string         `yaml:"name,omitempty"`
	FEN   string         `yaml:"fen"`
	Nodes map[int]uint64 `yaml:"nodes"`
}

// LoadYAML reads a list of cases from YAML.
func LoadYAML(r io.Reader) ([]Case, error) {
	var cases []Case
	if err := yaml.NewDecoder(r).Decode(&cases); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode suite: %v", err)
	}
	for i, c := range cases {
		if c.FEN == "" {
			return nil, fmt.Errorf("case %d: missing fen", i+1)
		}
		if c.Name == "" {
			cases[i].Name = fmt.Sprintf("case %d", i+1)
		}
	}
	return cases, nil
}

// ParseEPD reads perft suite lines of the form
//
//	<fen> ;D1 20 ;D2 400
//
// A FEN with only four fields gets "0 1" counters appended. Blank lines and lines
// starting with '#' are skipped.
func ParseEPD(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ";")
		fen := strings.TrimSpace(parts[0])
		if len(strings.Fields(fen)) == 4 {
			fen += " 0 1"
		}
		c := Case{
			Name:  fmt.Sprintf("line %d", lineNo),
			FEN:   fen,
			Nodes: make(map[int]uint64),
		}

		for _, op := range parts[1:] {
			fields := strings.Fields(op)
			if len(fields) == 0 {
				continue
			}
			if len(fields) != 2 || !strings.HasPrefix(fields[0], "D") {
				return nil, fmt.Errorf("line %d: malformed operation %q", lineNo, strings.TrimSpace(op))
			}
			depth, err := strconv.Atoi(fields[0][1:])
			if err != nil || depth < 1 {
				return nil, fmt.Errorf("line %d: bad depth %q", lineNo, fields[0])
			}
			nodes, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad node count %q", lineNo, fields[1])
			}
			c.Nodes[depth] = nodes
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

// Load opens a suite file and parses it by extension: .yaml/.yml or .epd, each
// optionally compressed with .zst or .bz2.
func Load(path string) ([]Case, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return src.Cases()
}

// Cases reads the whole source and parses it according to its file extension.
func (s *Source) Cases() ([]Case, error) {
	var cases []Case
	var err error
	switch format(s.Path) {
	case ".yaml", ".yml":
		cases, err = LoadYAML(s)
	case ".epd":
		cases, err = ParseEPD(s)
	default:
		return nil, fmt.Errorf("'%s': unsupported suite format", s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("'%s': %v", s.Path, err)
	}
	return cases, nil
}
