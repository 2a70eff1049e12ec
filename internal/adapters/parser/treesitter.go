// Package parser maps tree-sitter syntax trees onto the domain statement model.
package parser

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"go.trai.ch/zerr"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
)

var _ ports.Parser = (*TreeSitter)(nil)

// TreeSitter implements ports.Parser with the tree-sitter JavaScript and TypeScript grammars.
// It is safe for concurrent use; each Parse call owns its own sitter.Parser.
type TreeSitter struct{}

// New creates a new TreeSitter parser.
func New() *TreeSitter {
	return &TreeSitter{}
}

func languageFor(dialect domain.Dialect) *sitter.Language {
	switch {
	case dialect.TypeScript && dialect.JSX:
		return tsx.GetLanguage()
	case dialect.TypeScript:
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parse parses content and returns its top-level statements.
func (p *TreeSitter) Parse(ctx context.Context, content []byte, dialect domain.Dialect) ([]domain.Statement, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(languageFor(dialect))

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrParseFailed.Error())
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, domain.ErrParseFailed
	}

	m := mapper{src: content}
	count := int(root.NamedChildCount())
	stmts := make([]domain.Statement, 0, count)
	for i := range count {
		child := root.NamedChild(i)
		if child.Type() == "comment" || child.Type() == "hash_bang_line" {
			continue
		}
		stmts = append(stmts, m.statement(child))
	}
	return stmts, nil
}

type mapper struct {
	src []byte
}

func (m mapper) statement(n *sitter.Node) domain.Statement {
	switch n.Type() {
	case "import_statement":
		return m.importDecl(n)
	case "expression_statement":
		if x := n.NamedChild(0); x != nil {
			return domain.ExprStmt{X: m.expr(x)}
		}
	case "lexical_declaration", "variable_declaration":
		var decl domain.VarDecl
		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c.Type() != "variable_declarator" {
				continue
			}
			if v := c.ChildByFieldName("value"); v != nil {
				decl.Inits = append(decl.Inits, m.expr(v))
			}
		}
		return decl
	}
	return domain.OtherStmt{}
}

func (m mapper) importDecl(n *sitter.Node) domain.Statement {
	var decl domain.ImportDecl
	source := n.ChildByFieldName("source")

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		switch c.Type() {
		case "type", "typeof":
			decl.TypeOnly = true
		case "import_clause":
			decl.HasClause = true
			decl.Bindings = m.bindings(c)
		case "import_require_clause":
			// `import x = require('y')` is not an import declaration.
			return domain.OtherStmt{}
		case "string":
			if source == nil {
				source = c
			}
		}
	}

	if source == nil {
		return domain.OtherStmt{}
	}
	decl.Source = m.stringValue(source)
	return decl
}

func (m mapper) bindings(clause *sitter.Node) []domain.ImportBinding {
	var out []domain.ImportBinding
	for i := range int(clause.NamedChildCount()) {
		c := clause.NamedChild(i)
		switch c.Type() {
		case "identifier":
			out = append(out, domain.ImportBinding{Kind: domain.ImportDefault})
		case "namespace_import":
			out = append(out, domain.ImportBinding{Kind: domain.ImportNamespace})
		case "named_imports":
			for j := range int(c.NamedChildCount()) {
				spec := c.NamedChild(j)
				if spec.Type() != "import_specifier" {
					continue
				}
				out = append(out, domain.ImportBinding{
					Kind:     domain.ImportNamed,
					TypeOnly: typeOnlySpecifier(spec),
				})
			}
		}
	}
	return out
}

// typeOnlySpecifier reports whether a specifier carries a leading `type` modifier.
// `{ type }` and `{ type as t }` import a binding named "type" and are not type-only.
func typeOnlySpecifier(spec *sitter.Node) bool {
	if spec.ChildCount() == 0 {
		return false
	}
	first := spec.Child(0)
	if first.Type() != "type" && first.Type() != "typeof" {
		return false
	}
	name := spec.ChildByFieldName("name")
	return name != nil && name.StartByte() != first.StartByte()
}

func (m mapper) expr(n *sitter.Node) domain.Expr {
	switch n.Type() {
	case "call_expression":
		return m.call(n)
	case "array":
		var arr domain.ArrayExpr
		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c.Type() == "spread_element" || c.Type() == "comment" {
				continue
			}
			arr.Elems = append(arr.Elems, m.expr(c))
		}
		return arr
	case "object":
		var obj domain.ObjectExpr
		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c.Type() != "pair" {
				continue
			}
			if v := c.ChildByFieldName("value"); v != nil {
				obj.Values = append(obj.Values, m.expr(v))
			}
		}
		return obj
	case "ternary_expression":
		return domain.CondExpr{
			Test: m.optional(n.ChildByFieldName("condition")),
			Then: m.optional(n.ChildByFieldName("consequence")),
			Else: m.optional(n.ChildByFieldName("alternative")),
		}
	case "assignment_expression", "augmented_assignment_expression":
		return domain.AssignExpr{Right: m.optional(n.ChildByFieldName("right"))}
	case "parenthesized_expression":
		return domain.ParenExpr{X: m.optional(n.NamedChild(0))}
	case "string":
		return domain.StringLit{Value: m.stringValue(n)}
	case "identifier":
		return domain.Ident{Name: n.Content(m.src)}
	}
	return domain.OpaqueExpr{Kind: n.Type()}
}

func (m mapper) optional(n *sitter.Node) domain.Expr {
	if n == nil {
		return domain.OpaqueExpr{}
	}
	return m.expr(n)
}

func (m mapper) call(n *sitter.Node) domain.Expr {
	fn := n.ChildByFieldName("function")
	args := m.arguments(n.ChildByFieldName("arguments"))

	if fn != nil && fn.Type() == "import" {
		imp := domain.ImportExpr{}
		if len(args) > 0 {
			imp.Source = args[0]
		}
		return imp
	}
	return domain.CallExpr{Callee: m.optional(fn), Args: args}
}

func (m mapper) arguments(n *sitter.Node) []domain.Expr {
	// Tagged templates carry a template_string here instead of an argument list.
	if n == nil || n.Type() != "arguments" {
		return nil
	}
	var args []domain.Expr
	for i := range int(n.NamedChildCount()) {
		c := n.NamedChild(i)
		if c.Type() == "spread_element" || c.Type() == "comment" {
			continue
		}
		args = append(args, m.expr(c))
	}
	return args
}

func (m mapper) stringValue(n *sitter.Node) string {
	var value []byte
	for i := range int(n.NamedChildCount()) {
		c := n.NamedChild(i)
		switch c.Type() {
		case "string_fragment":
			value = append(value, m.src[c.StartByte():c.EndByte()]...)
		case "escape_sequence":
			value = append(value, decodeEscape(m.src[c.StartByte():c.EndByte()])...)
		}
	}
	return string(value)
}
