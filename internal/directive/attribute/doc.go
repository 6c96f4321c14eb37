// Package attribute parses declaration directives and shares them across
// packages as analysis facts.
//
// # Directives
//
//	┌──────────────────┬────────────────────────┬──────────────────────────────────────┐
//	│ Directive        │ Placed on              │ Meaning                              │
//	├──────────────────┼────────────────────────┼──────────────────────────────────────┤
//	│ controller       │ type, package clause   │ API controller                       │
//	│ noncontroller    │ type                   │ never a controller                   │
//	│ nonaction        │ method                 │ not an action                        │
//	│ conventions      │ type, package clause   │ convention container reference       │
//	│ conventionmethod │ method                 │ explicit convention template         │
//	│ produces         │ method, template       │ declared status code [payload type]  │
//	│ status           │ result type            │ default status code                  │
//	│ match            │ template               │ method name match behavior           │
//	│ param            │ template               │ parameter name/type match behavior   │
//	└──────────────────┴────────────────────────┴──────────────────────────────────────┘
//
// # Facts
//
// [Export] runs once per pass and attaches an [ObjectFact] to every
// type or method with directives, and a [PackageFact] to the package when
// any package clause carries directives. [Of] and [OfPackage] read them
// back for objects of the current package and of any imported package:
//
//	attribute.Export(pass)
//	codes := attribute.Of(pass, fn, attribute.Produces)
package attribute
