/*
Package quickstart is a configuration wizard for project scaffolding.

It walks an ordered catalog of questions against a path-addressed
configuration document. Each question is skipped, asked, or answered from
what the document already holds, and the answer is written back to the
document so later questions can depend on it.

# Concept

The wizard is split into small pieces that can be replaced independently:

  - pkg/document holds the configuration tree and its dotted paths.
  - pkg/condition evaluates the "if" conditions of questions and options.
  - pkg/catalog loads question catalogs from YAML (pkg/dsl builds them in Go).
  - pkg/ports defines the Prompter and DocumentStore boundaries.
  - pkg/runner provides prompters and the load, ask, save session.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/quickstart"
		"github.com/aretw0/quickstart/pkg/document"
		"github.com/aretw0/quickstart/pkg/runner"
	)

	func main() {
		prompter := runner.NewTextPrompter(os.Stdin, os.Stdout)
		wizard := quickstart.New(prompter)

		doc := document.New(nil)
		if err := wizard.Run(context.Background(), doc); err != nil {
			log.Fatal(err)
		}
		log.Println(doc.All())
	}
*/
package quickstart
