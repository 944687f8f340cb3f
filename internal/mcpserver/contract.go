package mcpserver

// FormatContract describes the on-disk fortune file format for MCP clients.
const FormatContract = `# Fortune File Format

A fortune corpus is a directory of plain text files. Each file holds any
number of quotes separated by a line containing a single percent sign.

## Structure

` + "```" + `text
The first quote.
It may span several lines.
%
The second quote.
%
` + "```" + `

## Rules

1. **Delimiter.** Quotes are separated by the exact sequence newline, "%",
   newline. A "%" anywhere else is ordinary text.
2. **Formatting is kept.** Leading spaces, tabs and blank lines inside a
   quote are returned unchanged.
3. **Trailing delimiter.** A file may end with a "%" line; the empty quote
   after it is never returned by random picks when the file has real content.
4. **Encoding.** Files are read as UTF-8. Invalid byte sequences are
   replaced with U+FFFD instead of failing.
5. **Layout.** ` + "`" + `random_fortune` + "`" + ` and ` + "`" + `search_fortunes` + "`" + ` only look at files directly in the
   corpus directory; ` + "`" + `fortune_of_the_day` + "`" + ` also reads subdirectories.

## Search output

Every search hit is printed followed by a "%" line, so search output is itself
a valid fortune file.
`
