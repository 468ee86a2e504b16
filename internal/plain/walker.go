// Package plain renders Markdown to unformatted text.
//
// It is the fallback for when the transport rejects the HTML rendering: all
// markers are dropped, lists keep their bullets and tables are flattened the
// same way the HTML path flattens them.
package plain

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/telegramify-html/internal/buffer"
	"github.com/riverfjs/telegramify-html/internal/parser"
	"github.com/riverfjs/telegramify-html/internal/table"
)

const (
	listBullet = "⦁"
	ruleText   = "————————"
)

// Render 将 Markdown 转为纯文本；bullet 为表格行前缀，空字符串使用默认值
func Render(markdown string, bullet string) string {
	root, source := parser.ParseAST(markdown)
	w := newWalker(source, bullet)
	_ = ast.Walk(root, w.walk)
	return strings.Trim(w.buf.String(), "\n")
}

type walker struct {
	buf    *buffer.TextBuffer
	source []byte
	bullet string

	blockCount int
	listStack  []*int // nil = unordered, otherwise next number
	itemIndent string

	tableRows   [][]string
	currentRow  []string
	cellParts   []string
	inTableCell bool
}

func newWalker(source []byte, bullet string) *walker {
	return &walker{
		buf:    buffer.New(),
		source: source,
		bullet: bullet,
	}
}

func (w *walker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			w.write(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.write(codeSpanText(n, w.source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			w.write(string(n.URL(w.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Paragraph:
		if entering {
			if len(w.listStack) == 0 {
				w.blockSpacing()
			}
		} else {
			w.onEndParagraph()
		}

	case *ast.Heading, *ast.Blockquote:
		if entering {
			w.blockSpacing()
		} else {
			w.blockCount++
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList()
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else if w.buf.TrailingNewlineCount() == 0 {
			w.buf.Write("\n")
		}

	case *east.TaskCheckBox:
		if entering {
			w.buf.PopLast()
			mark := "[ ]"
			if n.IsChecked {
				mark = "[x]"
			}
			w.buf.Write(w.itemIndent + mark + " ")
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.blockSpacing()
			w.buf.Write(ruleText)
			w.blockCount++
		}

	case *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil

	case *east.Table:
		if entering {
			w.blockSpacing()
			w.tableRows = nil
		} else {
			w.onEndTable()
		}

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.currentRow = nil
		} else {
			w.tableRows = append(w.tableRows, w.currentRow)
			w.currentRow = nil
		}

	case *east.TableCell:
		if entering {
			w.cellParts = nil
			w.inTableCell = true
		} else {
			w.currentRow = append(w.currentRow, strings.TrimSpace(strings.Join(w.cellParts, "")))
			w.inTableCell = false
		}
	}

	return ast.WalkContinue, nil
}

// write routes inline text to the current table cell or the buffer.
func (w *walker) write(s string) {
	if w.inTableCell {
		w.cellParts = append(w.cellParts, s)
		return
	}
	w.buf.Write(s)
}

func (w *walker) onText(n *ast.Text) {
	content := string(n.Segment.Value(w.source))
	if n.SoftLineBreak() || n.HardLineBreak() {
		if w.inTableCell {
			content += " "
		} else {
			content += "\n"
		}
	}
	w.write(content)
}

func (w *walker) onEndParagraph() {
	if len(w.listStack) == 0 {
		w.blockCount++
	} else if w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
}

func (w *walker) onStartList(n *ast.List) {
	if len(w.listStack) == 0 {
		w.blockSpacing()
	}
	if n.IsOrdered() {
		start := n.Start
		w.listStack = append(w.listStack, &start)
	} else {
		w.listStack = append(w.listStack, nil)
	}
}

func (w *walker) onEndList() {
	if len(w.listStack) > 0 {
		w.listStack = w.listStack[:len(w.listStack)-1]
	}
	if len(w.listStack) == 0 {
		w.blockCount++
	}
}

func (w *walker) onStartItem() {
	if w.buf.Len() > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
	depth := len(w.listStack)
	if depth == 0 {
		return
	}
	w.itemIndent = strings.Repeat("  ", depth-1)

	// 先写入列表符号；遇到 TaskCheckBox 时会被替换
	if next := w.listStack[depth-1]; next != nil {
		w.buf.Write(fmt.Sprintf("%s%d. ", w.itemIndent, *next))
		*next++
	} else {
		w.buf.Write(w.itemIndent + listBullet + " ")
	}
}

func (w *walker) onCodeBlock(n ast.Node) {
	w.blockSpacing()
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(w.source))
	}
	w.buf.Write(strings.TrimSuffix(sb.String(), "\n"))
	w.blockCount++
}

func (w *walker) onEndTable() {
	if len(w.tableRows) > 0 {
		w.buf.Write(table.FromRows(w.tableRows[0], w.tableRows[1:], w.bullet))
	}
	w.tableRows = nil
	w.blockCount++
}

// blockSpacing keeps one blank line between top-level blocks.
func (w *walker) blockSpacing() {
	if w.blockCount > 0 {
		w.buf.EnsureNewlines(2)
	}
}

func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		}
	}
	return sb.String()
}
