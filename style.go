// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// htmlEscaper escapes the five HTML-significant characters. It is the
// single escaping primitive shared by the renderer and the style sheet
// provider; the two must not diverge.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML returns s with & < > " ' replaced by their entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// baseCSS styles every block kind the renderer emits. Inline code
// (code outside <pre>) is always light-background regardless of the
// selected theme, a deliberate readability invariant.
const baseCSS = `body {
  font: 16px/1.6 -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: #24292e;
  margin: 0 auto;
  max-width: 46em;
  padding: 0 1em;
}
h1, h2, h3, h4, h5, h6 { line-height: 1.25; margin: 1.2em 0 0.5em; }
h1 { font-size: 2em; }
h2 { font-size: 1.5em; }
p { margin: 0.6em 0; }
a { color: #0969da; text-decoration: none; }
a:hover { text-decoration: underline; }
code {
  background-color: #f6f8fa;
  color: #24292e;
  border-radius: 4px;
  padding: 0.15em 0.35em;
  font: 0.9em ui-monospace, SFMono-Regular, Menlo, Consolas, monospace;
}
pre {
  border-radius: 6px;
  padding: 1em;
  overflow-x: auto;
}
pre code { background-color: transparent; color: inherit; padding: 0; }
blockquote {
  border-left: 4px solid #d0d7de;
  color: #57606a;
  margin: 0.8em 0;
  padding: 0 1em;
}
table { border-collapse: collapse; margin: 0.8em 0; }
th, td { border: 1px solid #d0d7de; padding: 0.4em 0.8em; }
th { background-color: #f6f8fa; }
hr { border: 0; border-top: 1px solid #d0d7de; margin: 1.5em 0; }
figure { margin: 1em 0; }
figure img { max-width: 100%; }
figcaption { color: #57606a; font-size: 0.9em; text-align: center; }
ul, ol { padding-left: 1.8em; }
li.task { list-style: none; margin-left: -1.4em; }
.task-checkbox { margin-right: 0.3em; }
.hint { border-left: 4px solid; border-radius: 4px; margin: 0.8em 0; padding: 0.6em 1em; }
.hint-header { font-weight: 600; margin-bottom: 0.3em; }
.hint-info { border-color: #0969da; background-color: #ddf4ff; }
.hint-success { border-color: #1a7f37; background-color: #dafbe1; }
.hint-warning { border-color: #9a6700; background-color: #fff8c5; }
.hint-danger { border-color: #cf222e; background-color: #ffebe9; }
.tabs { border: 1px solid #d0d7de; border-radius: 6px; margin: 0.8em 0; }
.tab-title { background-color: #f6f8fa; border-bottom: 1px solid #d0d7de; font-weight: 600; padding: 0.4em 1em; }
.tab-content { padding: 0.4em 1em; }
details { border: 1px solid #d0d7de; border-radius: 6px; margin: 0.8em 0; padding: 0.4em 1em; }
summary { cursor: pointer; font-weight: 600; }
.embed a { word-break: break-all; }
`

const lightCodeCSS = `pre {
  background-color: ` + codeLightBG + `;
  color: ` + codeLightFG + `;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
`

const darkCodeCSS = `pre {
  background-color: ` + codeDarkBG + `;
  color: ` + codeDarkFG + `;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
`

// GenerateCSS returns the base style sheet plus the code theme block
// selected by darkCodeTheme.
func GenerateCSS(darkCodeTheme bool) string {
	if darkCodeTheme {
		return baseCSS + darkCodeCSS
	}
	return baseCSS + lightCodeCSS
}

// Client-side syntax highlighter: code blocks are only tagged with
// language-* classes; tokenization happens in whatever displays the
// HTML.
const highlightJS = `<script src="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/highlight.min.js"></script>
<script>hljs.highlightAll();</script>
`

// WrapInHTML wraps an already-rendered fragment into a complete HTML
// document for export, embedding the generated CSS and the highlighter
// reference. The title is escaped; body is trusted rendered output and
// embedded verbatim.
func WrapInHTML(body, title string, darkCodeTheme bool) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(`<meta charset="utf-8" />` + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1" />` + "\n")
	sb.WriteString("<title>")
	sb.WriteString(EscapeHTML(title))
	sb.WriteString("</title>\n<style>\n")
	sb.WriteString(GenerateCSS(darkCodeTheme))
	sb.WriteString("</style>\n</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString(highlightJS)
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
