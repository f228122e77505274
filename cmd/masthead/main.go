// Command masthead answers questions about authors, magazines and the
// articles that link them.
package main

import "github.com/mesh-intelligence/masthead/internal/cli"

func main() {
	cli.Execute()
}
