package docs

import (
	"fmt"
	"strings"
)

// Render converts blocks to markdown. Consecutive numbered blocks share a
// counter; the counter resets whenever another block type interrupts.
func Render(blocks []Block) string {
	var out strings.Builder
	number := 0
	for i, block := range blocks {
		if block.Type != Numbered {
			number = 0
		}
		switch block.Type {
		case Heading1:
			out.WriteString("# " + block.Text + "\n\n")
		case Heading2:
			out.WriteString("## " + block.Text + "\n\n")
		case Heading3:
			out.WriteString("### " + block.Text + "\n\n")
		case Bullet:
			out.WriteString("- " + block.Text + "\n")
			if !nextIs(blocks, i, Bullet) {
				out.WriteString("\n")
			}
		case Numbered:
			number++
			fmt.Fprintf(&out, "%d. %s\n", number, block.Text)
			if !nextIs(blocks, i, Numbered) {
				out.WriteString("\n")
			}
		default:
			out.WriteString(block.Text + "\n\n")
		}
	}
	return strings.TrimRight(out.String(), "\n") + "\n"
}

func nextIs(blocks []Block, i int, kind BlockType) bool {
	return i+1 < len(blocks) && blocks[i+1].Type == kind
}
