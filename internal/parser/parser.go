package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置：GFM（表格、删除线、任务列表、自动链接）
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
	),
}

var md = goldmark.New(StandardOptions...)

// ParseAST 解析 Markdown，返回 AST 根节点和对应的源字节
//
// 节点中的 Segment 引用源字节，遍历时必须使用同一份 source。
func ParseAST(markdown string) (ast.Node, []byte) {
	source := []byte(markdown)
	return md.Parser().Parse(text.NewReader(source)), source
}
