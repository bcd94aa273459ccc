package commands_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type parsedDocument struct {
	headings   []string
	codeBlocks []string
}

func parseMarkdown(t *testing.T, document string) parsedDocument {
	t.Helper()
	source := []byte(document)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var parsed parsedDocument
	walkErr := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := node.(type) {
		case *ast.Heading:
			parsed.headings = append(parsed.headings, strings.Repeat("#", typed.Level)+" "+string(typed.Text(source)))
		case *ast.FencedCodeBlock:
			var body strings.Builder
			lines := typed.Lines()
			for index := 0; index < lines.Len(); index++ {
				segment := lines.At(index)
				body.Write(segment.Value(source))
			}
			parsed.codeBlocks = append(parsed.codeBlocks, body.String())
		}
		return ast.WalkContinue, nil
	})
	if walkErr != nil {
		t.Fatalf("walk markdown: %v", walkErr)
	}
	return parsed
}

func TestBuildDocumentParsesAsMarkdown(t *testing.T) {
	projectDirectory := createProject(t)

	document, records, err := newBuilder(true).BuildDocument(projectDirectory)
	if err != nil {
		t.Fatalf("BuildDocument error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	parsed := parseMarkdown(t, document)
	expectedHeadings := []string{
		"# Folder Structure",
		"# File Contents",
		"### README.md",
		"### src/app.py",
	}
	if !reflect.DeepEqual(parsed.headings, expectedHeadings) {
		t.Fatalf("unexpected headings: got %q want %q", parsed.headings, expectedHeadings)
	}
	expectedCodeBlocks := []string{
		"proj/\n├── README.md\n└── src\n    └── app.py\n",
		"# Hi\n",
		"print(1)\n",
	}
	if !reflect.DeepEqual(parsed.codeBlocks, expectedCodeBlocks) {
		t.Fatalf("unexpected code blocks: got %q want %q", parsed.codeBlocks, expectedCodeBlocks)
	}
}

func TestBuildDocumentOmitsNonQualifyingContent(t *testing.T) {
	projectDirectory := createProject(t)

	document, _, err := newBuilder(false).BuildDocument(projectDirectory)
	if err != nil {
		t.Fatalf("BuildDocument error: %v", err)
	}

	parsed := parseMarkdown(t, document)
	expectedHeadings := []string{"# Folder Structure", "# File Contents", "### README.md"}
	if !reflect.DeepEqual(parsed.headings, expectedHeadings) {
		t.Fatalf("unexpected headings: got %q want %q", parsed.headings, expectedHeadings)
	}
	if len(parsed.codeBlocks) == 0 || !strings.Contains(parsed.codeBlocks[0], appFileName) {
		t.Fatalf("tree block should list %s: %q", appFileName, parsed.codeBlocks)
	}
	if strings.Contains(document, appFileContent) {
		t.Fatalf("document must not contain the content of %s", appFileName)
	}
}
