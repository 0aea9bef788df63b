// File: lixenwraith/apacheconf/doc.go

// Package apacheconf parses Apache httpd style configuration files into a tree,
// supports lookup and in-place edits of sections, directives and their arguments,
// and renders the tree back to canonical text.
//
// Features:
//   - Line-oriented parser with nested <Section> ... </Section> blocks
//   - Shell-style argument splitting and canonical re-quoting
//   - Case-insensitive name matching with case-sensitive argument prefixes
//   - Dotted path queries ("VirtualHost.ServerName")
//   - Prefix-preserving or full argument replacement
//   - Round-trip rendering with configurable indentation
//   - Decoding into structs and export to TOML, YAML and JSON
//   - Polling file watcher delivering a fresh tree after each change
//
// Quick Start:
//
//	tree, err := apacheconf.ParseFile("/etc/apache2/sites-available/default.conf", apacheconf.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	names := tree.Select("VirtualHost.ServerName")
//	names.Update([]string{"www.example.com"}, true)
//
//	fmt.Println(string(names.Parents().Render(apacheconf.Renderer{Indent: tree.Indent()})))
//	err = tree.Save("/etc/apache2/sites-available/default.conf")
//
// Matching:
// A Section or Statement matches a query name when the names are equal ignoring
// case and its leading arguments equal the query arguments exactly. A Comment
// matches when its text equals the name ignoring case.
//
// Paths:
// The first path segment is matched against top-level nodes, each following
// segment against the direct children of the nodes matched so far. Sections that
// do not match an intermediate segment are not searched.
//
// Errors:
// Parse failures are *ParseError values carrying the source name and 1-based line,
// and wrap sentinel errors such as ErrMalformedLine and ErrMismatchedClose.
//
// Thread Safety:
// Trees are not synchronized. Concurrent queries are safe; updates must be
// serialized by the caller.
package apacheconf
