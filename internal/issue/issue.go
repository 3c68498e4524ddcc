// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	EmptyCommandLineId Id = iota + 1
	UnknownFormatId
	ConfigLoadFailedId
	InvalidOptionsId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	emptyCommandLineIssue = &Issue{
		id: EmptyCommandLineId,
		mdMsg: `
# No command line to inspect!

cmdlens needs at least the executable token of the command line you want to
classify.

## Things you can try:
- Pass the simulated command line after the terminator:
~~~
$ cmdlens inspect -- mytool --level=debug build
~~~

- Inspect a minimal invocation (executable only):
~~~
$ cmdlens inspect -- mytool
~~~`,
	}

	unknownFormatIssue = &Issue{
		id: UnknownFormatId,
		mdMsg: `
# Unknown output format!

The requested output format is not supported.

## Supported formats:
- **table**: styled field-by-field breakdown (default)
- **json**: machine-readable classification

## Things you can try:
~~~
$ cmdlens inspect --format table -- mytool -ab
$ cmdlens inspect --format json -- mytool -ab
~~~

- Set a default in your config file:
~~~toml
[ui]
format = "json"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your cmdlens config file exists but could not be read or parsed.

## Common issues:
- Invalid TOML syntax (missing quotes, mismatched brackets)
- Unknown values for known settings (e.g. an unsupported color scheme)

## Things you can try:
- Check the error message above for the failing key
- Show the effective configuration:
~~~
$ cmdlens config show
~~~

- Remove the file to fall back to defaults`,
	}

	invalidOptionsIssue = &Issue{
		id: InvalidOptionsId,
		mdMsg: `
# Command line carries unknown options!

At least one classified option or definition is missing from the supplied
allow-list.

## Things you can try:
- Inspect the command line to see what was classified:
~~~
$ cmdlens inspect -- mytool --bogus
~~~

- Extend the allow-list:
~~~
$ cmdlens check --valid-options -v,--verbose,--level -- mytool --level=2
~~~`,
	}

	issues = map[Id]*Issue{
		emptyCommandLineIssue.Id(): emptyCommandLineIssue,
		unknownFormatIssue.Id():    unknownFormatIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		invalidOptionsIssue.Id():   invalidOptionsIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
