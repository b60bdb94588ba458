// Package parser turns markdown into plain text plus span requests.
package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/richtext-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
	),
}

// Parse 解析 Markdown 并遍历 AST 生成 Document
func Parse(markdown string, config *types.RenderConfig) *Document {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	source := []byte(markdown)
	node := ParseAST(source)

	walker := NewWalker(source, config)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})

	return walker.Result()
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}
