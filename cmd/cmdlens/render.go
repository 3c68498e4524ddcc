// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"cmdlens/pkg/cmdline"
)

// absentMarker is shown for fields that are absent rather than empty.
const absentMarker = "(absent)"

// classifiedView is the JSON shape of a classified command line. Nullable
// fields keep the absent-vs-empty distinction: a missing mops expansion or
// trailing argument list marshals as null, never as [].
type classifiedView struct {
	Argv             []string          `json:"argv"`
	Argc             int               `json:"argc"`
	Executable       string            `json:"executable"`
	Options          []string          `json:"options"`
	Definitions      map[string]string `json:"definitions"`
	FirstArg         *string           `json:"first_arg"`
	LastArg          *string           `json:"last_arg"`
	DoubleHyphenArgv []string          `json:"double_hyphen_argv"`
	Mops             []string          `json:"mops"`
	LastOptionIndex  int               `json:"last_option_index"`
	HelpRequest      bool              `json:"help_request"`
	VersionRequest   bool              `json:"version_request"`
	UsageRequest     bool              `json:"usage_request"`
}

// renderJSON marshals the classified view as indented JSON.
func renderJSON(c *cmdline.Command) (string, error) {
	view := classifiedView{
		Argv:             c.Argv,
		Argc:             c.Argc,
		Executable:       c.Executable,
		Options:          c.Options,
		Definitions:      c.Definitions,
		DoubleHyphenArgv: c.DoubleHyphenArgv,
		Mops:             c.Mops,
		LastOptionIndex:  c.LastOptionIndex(),
		HelpRequest:      c.IsHelpRequest(),
		VersionRequest:   c.IsVersionRequest(),
		UsageRequest:     c.IsUsageRequest(),
	}
	if first, ok := c.FirstArg(); ok {
		view.FirstArg = &first
	}
	if last, ok := c.LastArg(); ok {
		view.LastArg = &last
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling classified view: %w", err)
	}
	return string(data), nil
}

// renderTable renders the classified view as a styled field-by-field table.
func renderTable(c *cmdline.Command) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(c.String()))
	b.WriteString("\n")

	writeRow(&b, "executable", ValueStyle.Render(c.Executable))
	writeRow(&b, "argc", ValueStyle.Render(fmt.Sprintf("%d", c.Argc)))
	writeRow(&b, "options", renderList(c.Options))

	if c.HasDefinitions() {
		pairs := make([]string, 0, len(c.Definitions))
		for _, opt := range c.Options {
			if value, ok := c.Definition(opt); ok {
				pairs = append(pairs, opt+"="+value)
			}
		}
		writeRow(&b, "definitions", ValueStyle.Render(strings.Join(pairs, ", ")))
	} else {
		writeRow(&b, "definitions", AbsentStyle.Render(absentMarker))
	}

	writeOptionalRow(&b, "first arg", c.FirstArg)
	writeOptionalRow(&b, "last arg", c.LastArg)

	if mops := c.Mops; mops != nil {
		writeRow(&b, "mops", ValueStyle.Render(strings.Join(mops, " ")))
	} else {
		writeRow(&b, "mops", AbsentStyle.Render(absentMarker))
	}

	if trailing, ok := c.ArgsAfterDoubleHyphen(); ok {
		writeRow(&b, "after --", ValueStyle.Render(strings.Join(trailing, " ")))
	} else {
		writeRow(&b, "after --", AbsentStyle.Render(absentMarker))
	}

	writeRow(&b, "last opt index", ValueStyle.Render(fmt.Sprintf("%d", c.LastOptionIndex())))

	if c.IsHelpRequest() {
		writeRow(&b, "request", SuccessStyle.Render("help"))
	}
	if c.IsVersionRequest() {
		writeRow(&b, "request", SuccessStyle.Render("version"))
	}
	if c.IsUsageRequest() {
		writeRow(&b, "request", SuccessStyle.Render("usage"))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeRow(b *strings.Builder, field, value string) {
	fmt.Fprintf(b, "  %s %s\n", FieldStyle.Render(fmt.Sprintf("%-14s", field)), value)
}

func writeOptionalRow(b *strings.Builder, field string, get func() (string, bool)) {
	if value, ok := get(); ok {
		writeRow(b, field, ValueStyle.Render(value))
		return
	}
	writeRow(b, field, AbsentStyle.Render(absentMarker))
}

func renderList(items []string) string {
	if len(items) == 0 {
		return AbsentStyle.Render("(none)")
	}
	return ValueStyle.Render(strings.Join(items, ", "))
}
