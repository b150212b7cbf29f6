// Command diaman documents the dia command
//
// The command executes each subcommand and writes the manual with
// design diagrams to man.html.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gregoryv/dia/docs"
	"github.com/gregoryv/web"
	. "github.com/gregoryv/web"
	"github.com/gregoryv/web/theme"
	"github.com/gregoryv/web/toc"
)

func main() {
	log.SetFlags(log.Flags() | log.Lshortfile)

	// compose manual page
	NewFile("man.html",
		Html(
			Head(
				Title("dia - manual"),
				Style(
					theme.GoldenSpace(),
					theme.GoishColors(),
					manTheme(),
				),
			),
			Body(Manual()),
		),
	).SaveTo(".")
}

func Manual() *Element {
	nav := Nav(A(Name("toc")), A(Href("#toc"), B("Table of contents")))
	doc := Wrap(
		Header(
			time.Now().Format("2006-01-02 15:04:05"),
		),

		Article(
			H1(A(Href("man.html"), "dia - manual")),

			P(`The dia command builds toy diagrams from the command
			line. It exists to demonstrate how factories, builders,
			proxies and flyweight pools compose. Project source is
			found at gregoryv/dia.`),

			nav,

			H2("Design"),

			P(`Requests are routed by diagram kind; graphs go through
			a director driving one builder per variant, figures are
			shared flyweights cached per type key.`),

			Div(Class("figure"),
				docs.NewDesignDiagram().Inline(),
			),
			Div(Class("figure"),
				docs.NewGraphSequence().Inline(),
			),
			Div(Class("figure"),
				docs.NewFigureSequence().Inline(),
			),

			H2("Options"),

			P(`The options section describes shared options.`),

			Pre(Class("cmd"),
				must(exec.Command("dia", "--help")),
			),

			H2("Commands"),

			H3("demo"),

			P(`Plays the built in scenario covering both graph
			variants and both figure variants.`),

			Pre(Class("cmd"), must(exec.Command("dia", "demo"))),

			H3("graph"),

			P(`Builds a single graph variant at a coordinate.`),

			Pre(Class("cmd"), must(exec.Command("dia", "graph", "-t", "Line", "-c", "(10,20)"))),

			H3("figure"),

			P(`Draws a shared figure. Keys containing Color yield the
			colored variant.`),

			Pre(Class("cmd"), must(exec.Command("dia", "figure", "-t", "SquareBW", "-c", "(2,3)"))),

			H3("run"),

			P(`Plays a YAML scenario file, see package
			gregoryv/dia/script for the format.`),
		),
	)
	LinkAll(doc, map[string]string{
		"gregoryv/dia":        "https://github.com/gregoryv/dia",
		"gregoryv/dia/script": "https://pkg.go.dev/github.com/gregoryv/dia/script",
	})

	toc.MakeTOC(nav, doc, "h2", "h3")
	return doc
}

func manTheme() *web.CSS {
	css := web.NewCSS()
	css.Style("body",
		"max-width: 19cm",
		"margin: auto auto",
		"font-family: sans-serif",
	)
	css.Style("h1,h2,h3,h4,h5",
		"font-family: serif",
	)
	css.Style("header",
		"text-align: right",
	)
	css.Style("nav ul",
		"list-style-type: none",
	)
	css.Style("div.figure",
		"width: 100%",
		"text-align: center",
	)
	css.Style("li.h3", "margin-left: 2em")
	css.Style("pre.cmd",
		"border-left: 7px #727272 solid",
		"padding: .6em 1.6em .6em 1.6em",
		"background-color: #eaeaea",
	)
	css.Style(".fail", "color: red")
	return css
}

func must(cmd *exec.Cmd) interface{} {
	var buf bytes.Buffer
	c := strings.Replace(cmd.String(), os.Getenv("GOBIN")+"/", "", 1)
	buf.WriteString(fmt.Sprintf("$ %s\n", c))

	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Start(); err != nil {
		log.Output(2, fmt.Sprint(cmd, err))
	}
	go time.AfterFunc(time.Second, func() { cmd.Process.Signal(os.Interrupt) })
	state, err := cmd.Process.Wait()
	if !state.Success() || err != nil {
		return Span(Class("fail"), buf.String(), state.String())
	}

	return buf.String()
}
