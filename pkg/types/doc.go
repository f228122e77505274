// Package types defines the Author, Magazine and Article entities, the
// magazine Registry, and the standard error types for Masthead.
//
// Articles join authors to magazines. Constructing an Article is the only
// operation that links entities: it appends the article to both its author
// and its magazine. Derived queries (an author's magazines and topic areas,
// a magazine's contributors and titles, the registry's top publisher) are
// computed on demand by scanning those lists.
//
// Values in this package are not safe for concurrent use.
package types
