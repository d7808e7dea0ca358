package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"coderead/internal/errors"
	"coderead/internal/lang"
)

// Extractor extracts code entities from a single source file.
type Extractor struct {
	parser *lang.Parser
}

// NewExtractor creates a new entity extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		parser: lang.NewParser(),
	}
}

// Extract parses source and returns all entities in source order. A file
// that fails to parse yields no partial result, only a PARSE_ERROR.
func (e *Extractor) Extract(ctx context.Context, source []byte, language lang.Language) ([]*Entity, error) {
	root, err := e.parser.Parse(ctx, source, language)
	if err != nil {
		return nil, errors.New(errors.ParseFailed, "failed to parse source", err)
	}

	if root.HasError() {
		line, col := firstErrorPosition(root)
		return nil, errors.Newf(errors.ParseFailed, "syntax error at line %d, column %d", line, col).
			WithDetails(map[string]int{"line": line, "column": col})
	}

	w := &walker{src: source, lang: language}
	w.walkBody(root, nil, 0)
	return w.entities, nil
}

// walker carries state for one extraction pass.
type walker struct {
	src      []byte
	lang     lang.Language
	entities []*Entity
}

// walkBody visits the statements of a module, class body, or block.
// class is the immediately enclosing class body, nil elsewhere.
func (w *walker) walkBody(node *sitter.Node, class *Entity, depth int) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}

		w.handle(child, int(child.StartPoint().Row)+1, class, depth)
	}
}

// handle emits an entity for a definition node, or recurses looking for
// definitions nested in non-definition statements.
func (w *walker) handle(node *sitter.Node, startLine int, class *Entity, depth int) {
	t := node.Type()

	if t == "decorated_definition" {
		// The decorator chain counts toward the definition's span, so
		// the inner definition keeps this node's start line. This holds
		// wherever the decorated def sits, including inside if/try/with
		// blocks reached through the default recursion below.
		if inner := node.ChildByFieldName("definition"); inner != nil {
			w.handle(inner, startLine, class, depth)
		}
		return
	}

	switch {
	case w.isClass(t):
		name := w.className(node)
		if name == "" {
			return
		}
		ent := &Entity{
			Name:      name,
			Kind:      KindClass,
			StartLine: startLine,
			EndLine:   maxEndRow(node) + 1,
			Depth:     depth,
			Parent:    class,
		}
		w.entities = append(w.entities, ent)
		if body := classBody(node); body != nil {
			w.walkBody(body, ent, depth+1)
		}

	case w.isFunction(t):
		name := w.nodeText(node.ChildByFieldName("name"))
		if name == "" {
			return
		}
		ent := &Entity{
			Name:      name,
			Kind:      KindFunction,
			StartLine: startLine,
			EndLine:   maxEndRow(node) + 1,
			Depth:     depth,
		}
		if class != nil {
			ent.Kind = KindMethod
			ent.ClassName = class.Name
			ent.Parent = class
		} else if t == "method_declaration" {
			// Go methods live at top level; the receiver type stands in
			// for the class qualifier.
			ent.Kind = KindMethod
			ent.ClassName = w.receiverTypeName(node)
		}
		w.entities = append(w.entities, ent)

		// Functions nested inside this one are standalone functions
		// scoped by depth, never methods.
		if body := node.ChildByFieldName("body"); body != nil {
			w.walkBody(body, nil, depth+1)
		}

	default:
		// Definitions can hide inside conditionals, try blocks, impl
		// blocks and similar composite statements.
		if t == "impl_item" {
			w.walkRustImpl(node, depth)
			return
		}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			if child := node.NamedChild(i); child != nil {
				w.handle(child, int(child.StartPoint().Row)+1, class, depth)
			}
		}
	}
}

// walkRustImpl qualifies functions inside an impl block with the
// implemented type's name without emitting an entity for the block.
func (w *walker) walkRustImpl(node *sitter.Node, depth int) {
	typeName := ""
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Type() == "type_identifier" {
			typeName = w.nodeText(child)
			break
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child == nil || child.Type() != "function_item" {
			continue
		}
		name := w.nodeText(child.ChildByFieldName("name"))
		if name == "" {
			continue
		}
		w.entities = append(w.entities, &Entity{
			Name:      name,
			Kind:      KindMethod,
			StartLine: int(child.StartPoint().Row) + 1,
			EndLine:   maxEndRow(child) + 1,
			ClassName: typeName,
			Depth:     depth + 1,
		})
	}
}

func (w *walker) isClass(nodeType string) bool {
	switch w.lang {
	case lang.LangPython:
		return nodeType == "class_definition"
	case lang.LangGo:
		return nodeType == "type_declaration"
	case lang.LangJavaScript, lang.LangTypeScript:
		return nodeType == "class_declaration"
	case lang.LangRust:
		return nodeType == "struct_item" || nodeType == "enum_item" || nodeType == "trait_item"
	}
	return false
}

func (w *walker) isFunction(nodeType string) bool {
	switch w.lang {
	case lang.LangPython:
		return nodeType == "function_definition"
	case lang.LangGo:
		return nodeType == "function_declaration" || nodeType == "method_declaration"
	case lang.LangJavaScript, lang.LangTypeScript:
		return nodeType == "function_declaration" ||
			nodeType == "generator_function_declaration" ||
			nodeType == "method_definition"
	case lang.LangRust:
		return nodeType == "function_item"
	}
	return false
}

// className extracts the declared name of a class-like node.
func (w *walker) className(node *sitter.Node) string {
	if w.lang == lang.LangGo {
		// type_declaration wraps a type_spec which carries the name
		if spec := firstDescendantOfType(node, "type_spec"); spec != nil {
			return w.nodeText(spec.ChildByFieldName("name"))
		}
		return ""
	}
	return w.nodeText(node.ChildByFieldName("name"))
}

// classBody returns the member body of a class-like node.
func classBody(node *sitter.Node) *sitter.Node {
	if body := node.ChildByFieldName("body"); body != nil {
		return body
	}
	return nil
}

// receiverTypeName extracts the bare receiver type of a Go method.
func (w *walker) receiverTypeName(node *sitter.Node) string {
	recv := node.ChildByFieldName("receiver")
	if recv == nil {
		return ""
	}
	name := firstDescendantOfType(recv, "type_identifier")
	if name == nil {
		return ""
	}
	return strings.TrimPrefix(w.nodeText(name), "*")
}

func firstDescendantOfType(node *sitter.Node, nodeType string) *sitter.Node {
	if node.Type() == nodeType {
		return node
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child != nil {
			if found := firstDescendantOfType(child, nodeType); found != nil {
				return found
			}
		}
	}
	return nil
}

func (w *walker) nodeText(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return string(w.src[node.StartByte():node.EndByte()])
}

// maxEndRow computes a definition's last line as a post-order reduction
// over its subtree. Composite bodies do not expose their span directly,
// and trailing blanks or comments belong to no node.
func maxEndRow(node *sitter.Node) int {
	row := int(node.EndPoint().Row)
	if node.EndPoint().Column == 0 && row > 0 {
		// An end point at column 0 means the node's text stopped at the
		// end of the previous line.
		row--
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child != nil {
			if r := maxEndRow(child); r > row {
				row = r
			}
		}
	}
	return row
}

// firstErrorPosition locates the first ERROR or missing node for
// parse-failure reporting. Positions are 1-indexed.
func firstErrorPosition(node *sitter.Node) (line, col int) {
	if node.Type() == "ERROR" || node.IsMissing() {
		return int(node.StartPoint().Row) + 1, int(node.StartPoint().Column) + 1
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() {
			continue
		}
		return firstErrorPosition(child)
	}
	return int(node.StartPoint().Row) + 1, int(node.StartPoint().Column) + 1
}
