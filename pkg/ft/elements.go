package ft

import "log/slog"

// HTMLTags is the set of known HTML5 tag names, lowercased.
var HTMLTags = map[string]bool{
	"a": true, "abbr": true, "address": true, "area": true, "article": true,
	"aside": true, "audio": true, "b": true, "base": true, "bdi": true,
	"bdo": true, "blockquote": true, "body": true, "br": true, "button": true,
	"canvas": true, "caption": true, "cite": true, "code": true, "col": true,
	"colgroup": true, "data": true, "datalist": true, "dd": true, "del": true,
	"details": true, "dfn": true, "dialog": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"header": true, "hr": true, "html": true, "i": true, "iframe": true,
	"img": true, "input": true, "ins": true, "kbd": true, "label": true,
	"legend": true, "li": true, "link": true, "main": true, "map": true,
	"mark": true, "meta": true, "meter": true, "nav": true, "noscript": true,
	"object": true, "ol": true, "optgroup": true, "option": true,
	"output": true, "p": true, "param": true, "picture": true, "pre": true,
	"progress": true, "q": true, "rp": true, "rt": true, "ruby": true,
	"s": true, "samp": true, "script": true, "section": true, "select": true,
	"small": true, "source": true, "span": true, "strong": true, "style": true,
	"sub": true, "summary": true, "sup": true, "table": true, "tbody": true,
	"td": true, "template": true, "textarea": true, "tfoot": true, "th": true,
	"thead": true, "time": true, "title": true, "tr": true, "track": true,
	"u": true, "ul": true, "var": true, "video": true, "wbr": true,
}

// VoidElements are the tags that self-close and take no children.
var VoidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// warnVoidOverride logs when a caller forces a void flag that contradicts
// the HTML5 void element set. The override is honored regardless.
func warnVoidOverride(tag string, requested, expected bool) {
	if requested != expected {
		slog.Warn("void flag contradicts HTML5 void element set",
			"tag", tag, "requested", requested, "expected", expected)
	}
}

func A(items ...any) *FT          { return New("a", items...) }
func Abbr(items ...any) *FT       { return New("abbr", items...) }
func Address(items ...any) *FT    { return New("address", items...) }
func Area(items ...any) *FT       { return New("area", items...) }
func Article(items ...any) *FT    { return New("article", items...) }
func Aside(items ...any) *FT      { return New("aside", items...) }
func Audio(items ...any) *FT      { return New("audio", items...) }
func B(items ...any) *FT          { return New("b", items...) }
func Base(items ...any) *FT       { return New("base", items...) }
func Bdi(items ...any) *FT        { return New("bdi", items...) }
func Bdo(items ...any) *FT        { return New("bdo", items...) }
func Blockquote(items ...any) *FT { return New("blockquote", items...) }
func Body(items ...any) *FT       { return New("body", items...) }
func Br(items ...any) *FT         { return New("br", items...) }
func Button(items ...any) *FT     { return New("button", items...) }
func Canvas(items ...any) *FT     { return New("canvas", items...) }
func Caption(items ...any) *FT    { return New("caption", items...) }
func Cite(items ...any) *FT       { return New("cite", items...) }
func Code(items ...any) *FT       { return New("code", items...) }
func Col(items ...any) *FT        { return New("col", items...) }
func Colgroup(items ...any) *FT   { return New("colgroup", items...) }
func Data(items ...any) *FT       { return New("data", items...) }
func Datalist(items ...any) *FT   { return New("datalist", items...) }
func Dd(items ...any) *FT         { return New("dd", items...) }
func Del(items ...any) *FT        { return New("del", items...) }
func Details(items ...any) *FT    { return New("details", items...) }
func Dfn(items ...any) *FT        { return New("dfn", items...) }
func Dialog(items ...any) *FT     { return New("dialog", items...) }
func Div(items ...any) *FT        { return New("div", items...) }
func Dl(items ...any) *FT         { return New("dl", items...) }
func Dt(items ...any) *FT         { return New("dt", items...) }
func Em(items ...any) *FT         { return New("em", items...) }
func Embed(items ...any) *FT      { return New("embed", items...) }
func Fieldset(items ...any) *FT   { return New("fieldset", items...) }
func Figcaption(items ...any) *FT { return New("figcaption", items...) }
func Figure(items ...any) *FT     { return New("figure", items...) }
func Footer(items ...any) *FT     { return New("footer", items...) }
func Form(items ...any) *FT       { return New("form", items...) }
func H1(items ...any) *FT         { return New("h1", items...) }
func H2(items ...any) *FT         { return New("h2", items...) }
func H3(items ...any) *FT         { return New("h3", items...) }
func H4(items ...any) *FT         { return New("h4", items...) }
func H5(items ...any) *FT         { return New("h5", items...) }
func H6(items ...any) *FT         { return New("h6", items...) }
func Head(items ...any) *FT       { return New("head", items...) }
func Header(items ...any) *FT     { return New("header", items...) }
func Hr(items ...any) *FT         { return New("hr", items...) }
func Html(items ...any) *FT       { return New("html", items...) }
func I(items ...any) *FT          { return New("i", items...) }
func Iframe(items ...any) *FT     { return New("iframe", items...) }
func Img(items ...any) *FT        { return New("img", items...) }
func Input(items ...any) *FT      { return New("input", items...) }
func Ins(items ...any) *FT        { return New("ins", items...) }
func Kbd(items ...any) *FT        { return New("kbd", items...) }
func Label(items ...any) *FT      { return New("label", items...) }
func Legend(items ...any) *FT     { return New("legend", items...) }
func Li(items ...any) *FT         { return New("li", items...) }
func Link(items ...any) *FT       { return New("link", items...) }
func Main(items ...any) *FT       { return New("main", items...) }
func Map(items ...any) *FT        { return New("map", items...) }
func Mark(items ...any) *FT       { return New("mark", items...) }
func Meta(items ...any) *FT       { return New("meta", items...) }
func Meter(items ...any) *FT      { return New("meter", items...) }
func Nav(items ...any) *FT        { return New("nav", items...) }
func Noscript(items ...any) *FT   { return New("noscript", items...) }
func Object(items ...any) *FT     { return New("object", items...) }
func Ol(items ...any) *FT         { return New("ol", items...) }
func Optgroup(items ...any) *FT   { return New("optgroup", items...) }
func Option(items ...any) *FT     { return New("option", items...) }
func Output(items ...any) *FT     { return New("output", items...) }
func P(items ...any) *FT          { return New("p", items...) }
func Param(items ...any) *FT      { return New("param", items...) }
func Picture(items ...any) *FT    { return New("picture", items...) }
func Pre(items ...any) *FT        { return New("pre", items...) }
func Progress(items ...any) *FT   { return New("progress", items...) }
func Q(items ...any) *FT          { return New("q", items...) }
func Rp(items ...any) *FT         { return New("rp", items...) }
func Rt(items ...any) *FT         { return New("rt", items...) }
func Ruby(items ...any) *FT       { return New("ruby", items...) }
func S(items ...any) *FT          { return New("s", items...) }
func Samp(items ...any) *FT       { return New("samp", items...) }
func Script(items ...any) *FT     { return New("script", items...) }
func Section(items ...any) *FT    { return New("section", items...) }
func Select(items ...any) *FT     { return New("select", items...) }
func Small(items ...any) *FT      { return New("small", items...) }
func Source(items ...any) *FT     { return New("source", items...) }
func Span(items ...any) *FT       { return New("span", items...) }
func Strong(items ...any) *FT     { return New("strong", items...) }
func Style(items ...any) *FT      { return New("style", items...) }
func Sub(items ...any) *FT        { return New("sub", items...) }
func Summary(items ...any) *FT    { return New("summary", items...) }
func Sup(items ...any) *FT        { return New("sup", items...) }
func Table(items ...any) *FT      { return New("table", items...) }
func Tbody(items ...any) *FT      { return New("tbody", items...) }
func Td(items ...any) *FT         { return New("td", items...) }
func Template(items ...any) *FT   { return New("template", items...) }
func Textarea(items ...any) *FT   { return New("textarea", items...) }
func Tfoot(items ...any) *FT      { return New("tfoot", items...) }
func Th(items ...any) *FT         { return New("th", items...) }
func Thead(items ...any) *FT      { return New("thead", items...) }
func Time(items ...any) *FT       { return New("time", items...) }
func Title(items ...any) *FT      { return New("title", items...) }
func Tr(items ...any) *FT         { return New("tr", items...) }
func Track(items ...any) *FT      { return New("track", items...) }
func U(items ...any) *FT          { return New("u", items...) }
func Ul(items ...any) *FT         { return New("ul", items...) }
func Var(items ...any) *FT        { return New("var", items...) }
func Video(items ...any) *FT      { return New("video", items...) }
func Wbr(items ...any) *FT        { return New("wbr", items...) }
