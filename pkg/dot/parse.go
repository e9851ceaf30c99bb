// Package dot reads and writes knowledge graphs in a line oriented
// subset of the graphviz dot format.
//
// Every node is described by a line
//
//	<id> [label="<data>"];
//
// and every edge by a line
//
//	<from> -> <to> [label="<label>"];
//
// Node data is read as integer if possible, then as floating point number,
// otherwise as text. Edge labels are always text. Blank lines and lines
// starting with '#' are ignored, all other lines not matching one of the
// forms above are skipped.
package dot

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/scanner"
)

const maxLineSize = 1024 * 1024

// Parse reads a graph. Errors are only returned if the reader fails.
func Parse(id graph.Id, r io.Reader) (*graph.Graph, error) {
	g := graph.New(id)
	lines := bufio.NewScanner(r)
	lines.Buffer(nil, maxLineSize)
	no := 0
	skipped := 0
	for lines.Scan() {
		no++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !parseLine(g, line) {
			skipped++
			log.Debug("skipping line {{line}} of {{graph}}: {{content}}", "line", no, "graph", id, "content", line)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	log.Trace("parsed graph {{graph}} with {{nodes}} nodes and {{edges}} edges ({{skipped}} lines skipped)",
		"graph", id, "nodes", g.Size(), "edges", g.EdgeCount(), "skipped", skipped)
	return g, nil
}

func ParseString(id graph.Id, in string) (*graph.Graph, error) {
	return Parse(id, strings.NewReader(in))
}

// MustParseString is like ParseString. Input strings cannot fail to be read.
func MustParseString(id graph.Id, in string) *graph.Graph {
	g, err := ParseString(id, in)
	if err != nil {
		panic(err)
	}
	return g
}

func parseLine(g *graph.Graph, line string) bool {
	s := scanner.NewScanner(line)
	from, ok := parseId(s)
	if !ok {
		return false
	}
	s.SkipBlanks()
	if s.ConsumeToken("->") {
		s.SkipBlanks()
		to, ok := parseId(s)
		if !ok {
			return false
		}
		label, ok := parseLabel(s)
		if !ok {
			return false
		}
		g.AddEdge(from, label, to)
		return true
	}
	data, ok := parseLabel(s)
	if !ok {
		return false
	}
	g.AddNode(from, Coerce(data))
	return true
}

func parseId(s scanner.Scanner) (int64, bool) {
	if !unicode.IsDigit(s.Current()) {
		return 0, false
	}
	id, err := s.Integer()
	return id, err == nil
}

// parseLabel parses the label attribute and the line end.
func parseLabel(s scanner.Scanner) (string, bool) {
	s.SkipBlanks()
	if !s.ConsumeToken("[label=") {
		return "", false
	}
	label, err := s.Quoted()
	if err != nil {
		return "", false
	}
	if s.ConsumeRune(']') != nil {
		return "", false
	}
	for s.Current() == ';' {
		s.Next()
	}
	return label, s.EOF()
}

// Coerce converts node data read from a graph description.
// Only decimal literals are read as numbers, words like "inf" or "nan"
// stay text.
func Coerce(data string) graph.Value {
	if i, err := strconv.ParseInt(data, 10, 64); err == nil {
		return graph.Int(i)
	}
	if isDecimal(data) {
		if f, err := strconv.ParseFloat(data, 64); err == nil {
			return graph.Float(f)
		}
	}
	return graph.Text(data)
}

func isDecimal(s string) bool {
	digits := false
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits = true
		case !strings.ContainsRune("+-.eE", r):
			return false
		}
	}
	return digits
}
