package css

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// Sheet accumulates rules and renders them as a stylesheet. Unconditional
// rules come first, followed by one block per media condition.
type Sheet struct {
	rules   []rule
	classes map[Declaration]string
	next    int
}

type rule struct {
	selector string
	media    Media
	decls    []Declaration
}

func NewSheet() *Sheet {
	return &Sheet{classes: make(map[Declaration]string)}
}

// Rule adds decls under selector, splitting them by media condition.
func (s *Sheet) Rule(selector string, decls ...Declaration) {
	byMedia := make(map[Media][]Declaration, 2)
	for _, d := range decls {
		byMedia[d.Media] = append(byMedia[d.Media], d)
	}
	for _, m := range []Media{MediaNone, MediaPrefersLight, MediaPrefersDark} {
		if ds := byMedia[m]; len(ds) > 0 {
			s.rules = append(s.rules, rule{selector: selector, media: m, decls: ds})
		}
	}
}

// Class registers one class per declaration and returns the space separated
// class list. Identical declarations share a class.
func (s *Sheet) Class(prefix string, decls []Declaration) string {
	names := make([]string, 0, len(decls))
	for _, d := range decls {
		name, ok := s.classes[d]
		if !ok {
			name = fmt.Sprintf("%s-%d", prefix, s.next)
			s.next++
			s.classes[d] = name
			s.rules = append(s.rules, rule{selector: "." + name, media: d.Media, decls: []Declaration{d}})
		}
		names = append(names, name)
	}
	return strings.Join(names, " ")
}

func (s *Sheet) Len() int { return len(s.rules) }

func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	s.render(&b, MediaNone, "")
	for _, m := range []Media{MediaPrefersLight, MediaPrefersDark} {
		if !s.has(m) {
			continue
		}
		b.WriteString(m.String())
		b.WriteString("{\n")
		s.render(&b, m, "  ")
		b.WriteString("}\n")
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (s *Sheet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

func (s *Sheet) has(m Media) bool {
	return lo.ContainsBy(s.rules, func(r rule) bool { return r.media == m })
}

func (s *Sheet) render(b *strings.Builder, m Media, indent string) {
	for _, r := range s.rules {
		if r.media != m {
			continue
		}
		b.WriteString(indent)
		b.WriteString(r.selector)
		b.WriteByte('{')
		for i, d := range r.decls {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(d.String())
		}
		b.WriteString("}\n")
	}
}
