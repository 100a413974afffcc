package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown remove toda a formatação markdown de um texto e retorna
// texto puro. Metadados de itens passam por aqui antes de entrar no prompt:
// cercas de código, headings e HTML embutidos não podem sobreviver, senão
// seriam interpretados como instruções de formatação pelo modelo.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	return strings.TrimSpace(buf.String())
}

// extractText percorre a AST e extrai apenas o conteúdo textual
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak, *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.HTMLBlock, *ast.HTMLSpan:
		// HTML embutido é descartado por inteiro
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.List, *ast.BlockQuote, *ast.ListItem:
		buf.WriteString(" ")
	}
}
