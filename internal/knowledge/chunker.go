package knowledge

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

const (
	minChunkRunes = 40  // Chunks below this carry no retrievable signal
	maxChunkRunes = 900 // Targets the embedding model's context window
	chunkOverlap  = 150 // Rune overlap between windows of oversized text
	dedupePrefix  = 80  // Chunks sharing this prefix are treated as duplicates
)

// Chunker splits knowledge-base files into retrieval-sized chunks.
// Markdown files are segmented along heading boundaries via goldmark;
// plain-text files fall back to overlapping rune windows.
type Chunker struct {
	parser goldmark.Markdown
}

// NewChunker creates a new chunker.
func NewChunker() *Chunker {
	return &Chunker{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// ChunkFile chunks one knowledge-base file and returns its title and chunks.
// Frontmatter is stripped before chunking.
func (c *Chunker) ChunkFile(content []byte, filename string) (string, []Chunk, error) {
	_, body := splitFrontmatter(string(content))
	body = strings.TrimSpace(body)

	if body == "" {
		return titleFromFilename(filename), nil, nil
	}

	var title string
	var sections []string

	if filepath.Ext(filename) == ".md" {
		title, sections = c.markdownSections([]byte(body), filename)
	} else {
		title = titleFromFilename(filename)
		sections = []string{body}
	}

	var chunks []Chunk
	seen := make(map[string]bool)
	index := 0
	for _, section := range sections {
		for _, piece := range windowText(section) {
			if utf8.RuneCountInString(piece) < minChunkRunes {
				continue
			}
			key := runePrefix(piece, dedupePrefix)
			if seen[key] {
				continue
			}
			seen[key] = true
			chunks = append(chunks, Chunk{Index: index, Text: piece})
			index++
		}
	}

	return title, chunks, nil
}

// markdownSections parses markdown and returns the document title plus one
// plain-text section per heading. Text before the first heading becomes its
// own section.
func (c *Chunker) markdownSections(content []byte, filename string) (string, []string) {
	doc := c.parser.Parser().Parse(text.NewReader(content))

	title := ""
	var sections []string
	var current strings.Builder
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sections = append(sections, s)
		}
		current.Reset()
	}

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if heading, ok := node.(*ast.Heading); ok {
			headingText := plainText(heading, content)
			if title == "" && (heading.Level == 1 || heading.Level == 2) {
				title = headingText
			}
			flush()
			current.WriteString(headingText)
			current.WriteString("\n")
			continue
		}
		if s := plainText(node, content); s != "" {
			current.WriteString(s)
			current.WriteString("\n")
		}
	}
	flush()

	if title == "" {
		title = titleFromFilename(filename)
	}
	return title, sections
}

// plainText extracts the text content of a node and its children, joining
// table cells with " | " so tabular facts survive as one line.
func plainText(n ast.Node, content []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(content))
			if v.HardLineBreak() || v.SoftLineBreak() {
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.Paragraph, *ast.ListItem:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
		default:
			kind := node.Kind().String()
			if kind == "TableRow" || kind == "TableHeader" {
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteString("\n")
				}
			} else if kind == "TableCell" {
				line := b.String()
				if i := strings.LastIndex(line, "\n"); i != -1 {
					line = line[i+1:]
				}
				if line != "" {
					b.WriteString(" | ")
				}
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// windowText splits text exceeding maxChunkRunes into overlapping windows,
// preferring paragraph and sentence boundaries over hard cuts.
func windowText(s string) []string {
	runes := []rune(s)
	if len(runes) <= maxChunkRunes {
		return []string{s}
	}

	var pieces []string
	start := 0
	for start < len(runes) {
		end := start + maxChunkRunes
		if end >= len(runes) {
			pieces = append(pieces, strings.TrimSpace(string(runes[start:])))
			break
		}

		window := string(runes[start:end])
		cut := end
		if i := strings.LastIndex(window, "\n\n"); i > 0 {
			cut = start + utf8.RuneCountInString(window[:i+2])
		} else if i := strings.LastIndex(window, ". "); i > 0 {
			cut = start + utf8.RuneCountInString(window[:i+2])
		} else if i := strings.LastIndex(window, "\n"); i > 0 {
			cut = start + utf8.RuneCountInString(window[:i+1])
		}

		pieces = append(pieces, strings.TrimSpace(string(runes[start:cut])))

		next := cut - chunkOverlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return pieces
}

// titleFromFilename derives a display title from the file name: extension
// stripped, "kb_" prefix dropped, underscores spaced, words capitalized.
func titleFromFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimPrefix(name, "kb_")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
