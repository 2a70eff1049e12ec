package domain

// Statement is a top-level statement of a parsed source file.
// The set of implementations is closed: ImportDecl, ExprStmt, VarDecl and OtherStmt.
type Statement interface {
	statement()
}

// Expr is an expression node. The set of implementations is closed; anything the
// parser does not model is an OpaqueExpr.
type Expr interface {
	expr()
}

// ImportSpecKind is the form of a single binding in an import clause.
type ImportSpecKind uint8

const (
	// ImportNamed is `{ a }` or `{ a as b }`.
	ImportNamed ImportSpecKind = iota
	// ImportDefault is `a` in `import a from 'x'`.
	ImportDefault
	// ImportNamespace is `* as a`.
	ImportNamespace
)

// ImportBinding is one binding of an import clause.
type ImportBinding struct {
	Kind     ImportSpecKind
	TypeOnly bool
}

// ImportDecl is a static import declaration.
type ImportDecl struct {
	Source   string
	TypeOnly bool
	// HasClause is false for side-effect imports such as `import './polyfill'`.
	HasClause bool
	Bindings  []ImportBinding
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	X Expr
}

// VarDecl is a var, let or const declaration. Inits holds the initializers that are present.
type VarDecl struct {
	Inits []Expr
}

// OtherStmt is any statement that cannot carry an import.
type OtherStmt struct{}

func (ImportDecl) statement() {}
func (ExprStmt) statement()   {}
func (VarDecl) statement()    {}
func (OtherStmt) statement()  {}

// CallExpr is a call. Spread arguments are dropped by the parser.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

// ImportExpr is a dynamic import(). Source is nil when the parser found no argument.
type ImportExpr struct {
	Source Expr
}

// ArrayExpr is an array literal. Holes and spread elements are dropped.
type ArrayExpr struct {
	Elems []Expr
}

// ObjectExpr is an object literal. Values holds the value of each property.
type ObjectExpr struct {
	Values []Expr
}

// CondExpr is `test ? then : els`.
type CondExpr struct {
	Test Expr
	Then Expr
	Else Expr
}

// AssignExpr is an assignment, including compound assignments.
type AssignExpr struct {
	Right Expr
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	X Expr
}

// StringLit is a string literal with its quotes removed.
type StringLit struct {
	Value string
}

// Ident is an identifier reference.
type Ident struct {
	Name string
}

// OpaqueExpr is an expression form the extractor never looks into.
type OpaqueExpr struct {
	Kind string
}

func (CallExpr) expr()   {}
func (ImportExpr) expr() {}
func (ArrayExpr) expr()  {}
func (ObjectExpr) expr() {}
func (CondExpr) expr()   {}
func (AssignExpr) expr() {}
func (ParenExpr) expr()  {}
func (StringLit) expr()  {}
func (Ident) expr()      {}
func (OpaqueExpr) expr() {}
