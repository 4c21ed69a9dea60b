package paper

import "strings"

// CanonicalTitles is the recognized heading vocabulary, in match order.
// Order matters: the first title a line equals or starts with wins.
var CanonicalTitles = []string{
	"abstract", "introduction", "background",
	"methodology", "methods",
	"experiments", "experimental setup",
	"results", "evaluation",
	"discussion", "conclusion", "references",
}

// UnknownSection holds any text that precedes the first recognized heading.
const UnknownSection = "unknown"

// Row is one table row. A nil cell has no text at that column position.
type Row []*string

type Table struct {
	Page int   `json:"page" yaml:"page"`
	Data []Row `json:"data" yaml:"data"`
}

// Cell returns a non-null cell holding s.
func Cell(s string) *string {
	return &s
}

type Section struct {
	Name string `json:"name" yaml:"name"`
	Body string `json:"body" yaml:"body"`
}

// SectionMap maps canonical section names to their bodies, remembering the
// order in which each name first appeared.
type SectionMap struct {
	keys   []string
	bodies map[string]*strings.Builder
}

func NewSectionMap() *SectionMap {
	return &SectionMap{bodies: map[string]*strings.Builder{}}
}

func (m *SectionMap) ensure(name string) *strings.Builder {
	b, ok := m.bodies[name]
	if !ok {
		b = &strings.Builder{}
		m.bodies[name] = b
		m.keys = append(m.keys, name)
	}
	return b
}

func (m *SectionMap) appendLine(name, line string) {
	b := m.ensure(name)
	b.WriteString(line)
	b.WriteByte(' ')
}

func (m *SectionMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *SectionMap) Get(name string) (string, bool) {
	b, ok := m.bodies[name]
	if !ok {
		return "", false
	}
	return b.String(), true
}

func (m *SectionMap) Len() int {
	return len(m.keys)
}

// Sections returns the name/body pairs in insertion order.
func (m *SectionMap) Sections() []Section {
	out := make([]Section, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Section{Name: k, Body: m.bodies[k].String()})
	}
	return out
}

// Document is the conditioned form of one input PDF.
type Document struct {
	Path     string
	Pages    int
	Sections *SectionMap
	Tables   []Table
	Context  string
}

// Batch holds processed documents keyed by input path, in input order.
type Batch struct {
	paths []string
	docs  map[string]*Document
}

func NewBatch() *Batch {
	return &Batch{docs: map[string]*Document{}}
}

// Put stores d under its path. A path seen before keeps its original position.
func (b *Batch) Put(d *Document) {
	if _, ok := b.docs[d.Path]; !ok {
		b.paths = append(b.paths, d.Path)
	}
	b.docs[d.Path] = d
}

func (b *Batch) Get(path string) (*Document, bool) {
	d, ok := b.docs[path]
	return d, ok
}

func (b *Batch) Paths() []string {
	out := make([]string, len(b.paths))
	copy(out, b.paths)
	return out
}

func (b *Batch) Len() int {
	return len(b.paths)
}

// Documents returns the documents in batch order.
func (b *Batch) Documents() []*Document {
	out := make([]*Document, 0, len(b.paths))
	for _, p := range b.paths {
		out = append(out, b.docs[p])
	}
	return out
}

// CombinedContext joins every document context behind a path banner, in
// batch order. This is the string questions are answered against.
func (b *Batch) CombinedContext() string {
	var sb strings.Builder
	for _, d := range b.Documents() {
		sb.WriteString("\n\n===== ")
		sb.WriteString(d.Path)
		sb.WriteString(" =====\n")
		sb.WriteString(d.Context)
	}
	return sb.String()
}
