package el

import "github.com/eltkit/elt/dom"

// Document

func Html(args ...any) dom.Element     { return Element("html", args...) }
func Head(args ...any) dom.Element     { return Element("head", args...) }
func Body(args ...any) dom.Element     { return Element("body", args...) }
func Title(args ...any) dom.Element    { return Element("title", args...) }
func Meta(args ...any) dom.Element     { return Element("meta", args...) }
func Link(args ...any) dom.Element     { return Element("link", args...) }
func Base(args ...any) dom.Element     { return Element("base", args...) }
func Script(args ...any) dom.Element   { return Element("script", args...) }
func Noscript(args ...any) dom.Element { return Element("noscript", args...) }
func Style(args ...any) dom.Element    { return Element("style", args...) }
func Template(args ...any) dom.Element { return Element("template", args...) }
func Slot(args ...any) dom.Element     { return Element("slot", args...) }

// Sectioning

func Header(args ...any) dom.Element  { return Element("header", args...) }
func Footer(args ...any) dom.Element  { return Element("footer", args...) }
func Main(args ...any) dom.Element    { return Element("main", args...) }
func Nav(args ...any) dom.Element     { return Element("nav", args...) }
func Section(args ...any) dom.Element { return Element("section", args...) }
func Article(args ...any) dom.Element { return Element("article", args...) }
func Aside(args ...any) dom.Element   { return Element("aside", args...) }
func Address(args ...any) dom.Element { return Element("address", args...) }
func H1(args ...any) dom.Element      { return Element("h1", args...) }
func H2(args ...any) dom.Element      { return Element("h2", args...) }
func H3(args ...any) dom.Element      { return Element("h3", args...) }
func H4(args ...any) dom.Element      { return Element("h4", args...) }
func H5(args ...any) dom.Element      { return Element("h5", args...) }
func H6(args ...any) dom.Element      { return Element("h6", args...) }

// Grouping

func Div(args ...any) dom.Element        { return Element("div", args...) }
func P(args ...any) dom.Element          { return Element("p", args...) }
func Span(args ...any) dom.Element       { return Element("span", args...) }
func Pre(args ...any) dom.Element        { return Element("pre", args...) }
func Blockquote(args ...any) dom.Element { return Element("blockquote", args...) }
func Ul(args ...any) dom.Element         { return Element("ul", args...) }
func Ol(args ...any) dom.Element         { return Element("ol", args...) }
func Li(args ...any) dom.Element         { return Element("li", args...) }
func Dl(args ...any) dom.Element         { return Element("dl", args...) }
func Dt(args ...any) dom.Element         { return Element("dt", args...) }
func Dd(args ...any) dom.Element         { return Element("dd", args...) }
func Hr(args ...any) dom.Element         { return Element("hr", args...) }
func Figure(args ...any) dom.Element     { return Element("figure", args...) }
func Figcaption(args ...any) dom.Element { return Element("figcaption", args...) }

// Inline text

func A(args ...any) dom.Element      { return Element("a", args...) }
func Strong(args ...any) dom.Element { return Element("strong", args...) }
func Em(args ...any) dom.Element     { return Element("em", args...) }
func B(args ...any) dom.Element      { return Element("b", args...) }
func I(args ...any) dom.Element      { return Element("i", args...) }
func U(args ...any) dom.Element      { return Element("u", args...) }
func S(args ...any) dom.Element      { return Element("s", args...) }
func Small(args ...any) dom.Element  { return Element("small", args...) }
func Mark(args ...any) dom.Element   { return Element("mark", args...) }
func Sub(args ...any) dom.Element    { return Element("sub", args...) }
func Sup(args ...any) dom.Element    { return Element("sup", args...) }
func Code(args ...any) dom.Element   { return Element("code", args...) }
func Kbd(args ...any) dom.Element    { return Element("kbd", args...) }
func Abbr(args ...any) dom.Element   { return Element("abbr", args...) }

// Time_ builds <time>; Time is left free for the time package.
func Time_(args ...any) dom.Element { return Element("time", args...) }
func Cite(args ...any) dom.Element  { return Element("cite", args...) }
func Q(args ...any) dom.Element     { return Element("q", args...) }
func Br(args ...any) dom.Element    { return Element("br", args...) }
func Wbr(args ...any) dom.Element   { return Element("wbr", args...) }

// Forms

func Form(args ...any) dom.Element     { return Element("form", args...) }
func Input(args ...any) dom.Element    { return Element("input", args...) }
func Textarea(args ...any) dom.Element { return Element("textarea", args...) }
func Select(args ...any) dom.Element   { return Element("select", args...) }
func Option(args ...any) dom.Element   { return Element("option", args...) }
func Optgroup(args ...any) dom.Element { return Element("optgroup", args...) }
func Button(args ...any) dom.Element   { return Element("button", args...) }
func Label(args ...any) dom.Element    { return Element("label", args...) }
func Fieldset(args ...any) dom.Element { return Element("fieldset", args...) }
func Legend(args ...any) dom.Element   { return Element("legend", args...) }
func Datalist(args ...any) dom.Element { return Element("datalist", args...) }
func Output(args ...any) dom.Element   { return Element("output", args...) }
func Progress(args ...any) dom.Element { return Element("progress", args...) }
func Meter(args ...any) dom.Element    { return Element("meter", args...) }

// Tables

func Table(args ...any) dom.Element    { return Element("table", args...) }
func Thead(args ...any) dom.Element    { return Element("thead", args...) }
func Tbody(args ...any) dom.Element    { return Element("tbody", args...) }
func Tfoot(args ...any) dom.Element    { return Element("tfoot", args...) }
func Tr(args ...any) dom.Element       { return Element("tr", args...) }
func Th(args ...any) dom.Element       { return Element("th", args...) }
func Td(args ...any) dom.Element       { return Element("td", args...) }
func Caption(args ...any) dom.Element  { return Element("caption", args...) }
func Colgroup(args ...any) dom.Element { return Element("colgroup", args...) }
func Col(args ...any) dom.Element      { return Element("col", args...) }

// Media

func Img(args ...any) dom.Element     { return Element("img", args...) }
func Picture(args ...any) dom.Element { return Element("picture", args...) }
func Source(args ...any) dom.Element  { return Element("source", args...) }
func Video(args ...any) dom.Element   { return Element("video", args...) }
func Audio(args ...any) dom.Element   { return Element("audio", args...) }
func Track(args ...any) dom.Element   { return Element("track", args...) }
func Iframe(args ...any) dom.Element  { return Element("iframe", args...) }
func Canvas(args ...any) dom.Element  { return Element("canvas", args...) }
func Svg(args ...any) dom.Element     { return Element("svg", args...) }

// Interactive

func Details(args ...any) dom.Element { return Element("details", args...) }
func Summary(args ...any) dom.Element { return Element("summary", args...) }
func Dialog(args ...any) dom.Element  { return Element("dialog", args...) }
func Menu(args ...any) dom.Element    { return Element("menu", args...) }
