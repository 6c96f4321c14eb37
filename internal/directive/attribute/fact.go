package attribute

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// ObjectFact carries the directives declared on a type or method so that
// packages importing it can read them.
type ObjectFact struct {
	Attributes []Attribute
}

// AFact implements analysis.Fact.
func (*ObjectFact) AFact() {}

func (f *ObjectFact) String() string {
	return formatAttributes(f.Attributes)
}

// PackageFact carries the directives declared on package clauses.
type PackageFact struct {
	Attributes []Attribute
}

// AFact implements analysis.Fact.
func (*PackageFact) AFact() {}

func (f *PackageFact) String() string {
	return formatAttributes(f.Attributes)
}

func formatAttributes(attrs []Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.String()
	}

	return strings.Join(parts, "; ")
}

// Export scans the files of the pass and exports a fact for every type,
// method and package clause that carries directives.
func Export(pass *analysis.Pass) {
	var pkgAttrs []Attribute

	for _, file := range pass.Files {
		pkgAttrs = append(pkgAttrs, FromDoc(file.Doc)...)

		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				exportTypeSpecs(pass, d)
			case *ast.FuncDecl:
				exportObject(pass, pass.TypesInfo.Defs[d.Name], FromDoc(d.Doc))
			}
		}
	}

	if len(pkgAttrs) > 0 {
		pass.ExportPackageFact(&PackageFact{Attributes: pkgAttrs})
	}
}

// exportTypeSpecs exports directives of type declarations.
// A lone spec in an unparenthesized declaration uses the declaration's doc.
func exportTypeSpecs(pass *analysis.Pass, decl *ast.GenDecl) {
	if decl.Tok != token.TYPE {
		return
	}

	for _, spec := range decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		doc := ts.Doc
		if doc == nil && !decl.Lparen.IsValid() {
			doc = decl.Doc
		}

		exportObject(pass, pass.TypesInfo.Defs[ts.Name], FromDoc(doc))
	}
}

func exportObject(pass *analysis.Pass, obj types.Object, attrs []Attribute) {
	if obj == nil || len(attrs) == 0 {
		return
	}

	pass.ExportObjectFact(obj, &ObjectFact{Attributes: attrs})
}

// Of returns the attributes named name declared directly on obj.
func Of(pass *analysis.Pass, obj types.Object, name Name) []Attribute {
	obj = origin(obj)
	if obj == nil || obj.Pkg() == nil {
		return nil
	}

	var fact ObjectFact
	if !pass.ImportObjectFact(obj, &fact) {
		return nil
	}

	return Filter(fact.Attributes, name)
}

// OfPackage returns the attributes named name declared on pkg's package clauses.
func OfPackage(pass *analysis.Pass, pkg *types.Package, name Name) []Attribute {
	if pkg == nil {
		return nil
	}

	var fact PackageFact
	if !pass.ImportPackageFact(pkg, &fact) {
		return nil
	}

	return Filter(fact.Attributes, name)
}

// origin maps instantiated methods back to their generic declaration,
// which is where facts are attached.
func origin(obj types.Object) types.Object {
	if fn, ok := obj.(*types.Func); ok && fn != nil {
		return fn.Origin()
	}

	return obj
}
