// Package netlist loads the SSID accept/reject list files. One SSID per
// line, exact full-line match, case-sensitive — no wildcards.
package netlist

import (
	"bufio"
	"os"
	"strings"
)

// List is a set of SSID names read from one list file.
type List struct {
	path  string
	names map[string]struct{}
	order []string
}

// Load reads the list file at path. A file that is absent or unreadable
// yields nil, which callers treat as "no list, check skipped" — an
// unreadable list cannot confirm anything, so it gates nothing.
func Load(path string) *List {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	l := &List{path: path, names: make(map[string]struct{})}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		if _, dup := l.names[name]; dup {
			continue
		}
		l.names[name] = struct{}{}
		l.order = append(l.order, name)
	}
	if sc.Err() != nil {
		return nil
	}
	return l
}

// Contains reports whether ssid is an entry. Safe on a nil List.
func (l *List) Contains(ssid string) bool {
	if l == nil {
		return false
	}
	_, ok := l.names[ssid]
	return ok
}

// Len returns the number of entries. Zero for a nil List.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// Names returns the entries in file order.
func (l *List) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Path returns the file the list was read from.
func (l *List) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}
