// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// blockLanguage is the info string of fenced blocks holding diagrams.
const blockLanguage = "shaape"

// extractBlocks returns the content of every fenced code block tagged as a diagram, in
// document order.
func extractBlocks(source []byte) []string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	var out []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		b, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(b.Language(source)) != blockLanguage {
			return ast.WalkContinue, nil
		}
		var s strings.Builder
		lines := b.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			s.Write(line.Value(source))
		}
		out = append(out, s.String())
		return ast.WalkSkipChildren, nil
	})
	return out
}
