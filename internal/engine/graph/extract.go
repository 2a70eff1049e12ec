// Package graph extracts import specifiers and walks the resulting module graph.
package graph

import "github.com/abvthecity/oxiclean/internal/core/domain"

const requireIdent = "require"

// Extract collects the runtime import specifiers of a file in encounter order.
// Type-only import declarations are skipped; require() and import() calls are mined
// from top-level expression statements and variable initializers.
func Extract(stmts []domain.Statement) []domain.Specifier {
	var specs []domain.Specifier
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case domain.ImportDecl:
			if hasRuntimeBinding(s) {
				specs = append(specs, domain.Specifier{Request: s.Source, Kind: domain.SpecStatic})
			}
		case domain.ExprStmt:
			specs = extractExpr(s.X, specs)
		case domain.VarDecl:
			for _, init := range s.Inits {
				specs = extractExpr(init, specs)
			}
		}
	}
	return specs
}

func hasRuntimeBinding(decl domain.ImportDecl) bool {
	if decl.TypeOnly {
		return false
	}
	if !decl.HasClause {
		return true
	}
	for _, b := range decl.Bindings {
		if b.Kind != domain.ImportNamed || !b.TypeOnly {
			return true
		}
	}
	return false
}

func extractExpr(e domain.Expr, specs []domain.Specifier) []domain.Specifier {
	switch x := e.(type) {
	case domain.CallExpr:
		if id, ok := x.Callee.(domain.Ident); ok && id.Name == requireIdent && len(x.Args) > 0 {
			if lit, ok := x.Args[0].(domain.StringLit); ok {
				specs = append(specs, domain.Specifier{Request: lit.Value, Kind: domain.SpecStatic})
			}
		}
		for _, arg := range x.Args {
			specs = extractExpr(arg, specs)
		}
		return extractExpr(x.Callee, specs)
	case domain.ImportExpr:
		if lit, ok := x.Source.(domain.StringLit); ok {
			specs = append(specs, domain.Specifier{Request: lit.Value, Kind: domain.SpecDynamic})
		}
	case domain.ArrayExpr:
		for _, el := range x.Elems {
			specs = extractExpr(el, specs)
		}
	case domain.ObjectExpr:
		for _, v := range x.Values {
			specs = extractExpr(v, specs)
		}
	case domain.CondExpr:
		specs = extractExpr(x.Test, specs)
		specs = extractExpr(x.Then, specs)
		return extractExpr(x.Else, specs)
	case domain.AssignExpr:
		return extractExpr(x.Right, specs)
	case domain.ParenExpr:
		return extractExpr(x.X, specs)
	}
	return specs
}
