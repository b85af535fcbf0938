package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/gilles/ll/parsetree"
	"github.com/pterm/pterm"
)

// leveler collects a parse tree into a pterm.LeveledList, which pterm can
// render as a tree on a terminal.
type leveler struct {
	list pterm.LeveledList
}

func (l *leveler) Enter(n *parsetree.Node, rule *ll.Production, level int) {
	text := n.Label.Name()
	if rule != nil {
		text = fmt.Sprintf("%s [%d]", text, rule.Number)
	}
	l.list = append(l.list, pterm.LeveledListItem{Level: level, Text: text})
}

func (l *leveler) Terminal(tok gilles.Token, span gilles.Span, level int) {
	l.list = append(l.list, pterm.LeveledListItem{Level: level, Text: leafText(tok)})
}

func leafText(tok gilles.Token) string {
	switch {
	case tok.Kind == gilles.EPSILON:
		return "ε"
	case tok.Kind.HasValue():
		return fmt.Sprintf("%s %q  %s", tok.Kind, tok.Lexeme, tok.Position())
	}
	return fmt.Sprintf("%s  %s", tok.Kind, tok.Position())
}

// leveledList converts a parse tree.
func leveledList(tree *parsetree.Node) pterm.LeveledList {
	l := &leveler{}
	parsetree.Walk(tree, l)
	tracer().Debugf("|ll| = %d", len(l.list))
	return l.list
}

// printTree renders a parse tree to w.
func printTree(w io.Writer, tree *parsetree.Node) error {
	root := pterm.NewTreeFromLeveledList(leveledList(tree))
	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
