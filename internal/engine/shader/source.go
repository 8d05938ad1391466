package shader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const marker = "#shader"

// Source holds the per-stage texts of a combined shader file.
type Source struct {
	Vertex   string
	Fragment string
}

// Text returns the source text of stage.
func (s Source) Text(stage Stage) string {
	if stage == Fragment {
		return s.Fragment
	}
	return s.Vertex
}

// Split reads a combined shader file and separates it into stage sections.
//
// A line containing "#shader" switches the current section to vertex or
// fragment when one of those words follows the marker; any other marker
// leaves the current section unchanged. Marker lines are not copied. Every
// other line is appended to the current section followed by "\n", and lines
// before the first recognized marker are dropped.
func Split(r io.Reader) (Source, error) {
	var sections [2]strings.Builder
	current := -1

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			if i := strings.Index(line, marker); i >= 0 {
				if stage, ok := markerStage(line[i+len(marker):]); ok {
					current = int(stage)
				}
			} else if current >= 0 {
				sections[current].WriteString(line)
				sections[current].WriteByte('\n')
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Source{}, fmt.Errorf("reading shader source: %w", err)
		}
	}

	return Source{
		Vertex:   sections[Vertex].String(),
		Fragment: sections[Fragment].String(),
	}, nil
}

// SplitString is Split over an in-memory string.
func SplitString(s string) Source {
	src, _ := Split(strings.NewReader(s))
	return src
}

// ReadFile splits the combined shader file at path.
func ReadFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()

	src, err := Split(f)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// Join renders src back into the combined file format.
func Join(src Source) string {
	var b strings.Builder
	b.WriteString(marker + " vertex\n")
	b.WriteString(src.Vertex)
	b.WriteString(marker + " fragment\n")
	b.WriteString(src.Fragment)
	return b.String()
}

func markerStage(rest string) (Stage, bool) {
	switch {
	case strings.Contains(rest, "vertex"):
		return Vertex, true
	case strings.Contains(rest, "fragment"):
		return Fragment, true
	}
	return 0, false
}
