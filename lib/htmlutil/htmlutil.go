package htmlutil

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/citizenlabsgr/elections-api/lib/textutil"

	"golang.org/x/net/html"
)

// GetText concatenates all the text nodes under node.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		getTextRecursive(child, buffer)
	}
}

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText makes text pulled out of a page fit on one line.
func CleanText(s string) string {
	return textutil.CollapseWhitespace(removeNonPrintable(s))
}
