package dom

// Per-tag constructors mirroring the package-level catalog. Each builds the
// element through the builder's key table and attaches it to the innermost
// open scope, if any.

// Document structure

func (b *Builder) Html(args ...any) *Node  { return b.El("html", args...) }
func (b *Builder) Head(args ...any) *Node  { return b.El("head", args...) }
func (b *Builder) Body(args ...any) *Node  { return b.El("body", args...) }
func (b *Builder) Title(args ...any) *Node { return b.El("title", args...) }
func (b *Builder) Meta(args ...any) *Node  { return b.El("meta", args...) }
func (b *Builder) Link(args ...any) *Node  { return b.El("link", args...) }
func (b *Builder) Base(args ...any) *Node  { return b.El("base", args...) }

// Sections

func (b *Builder) Header(args ...any) *Node  { return b.El("header", args...) }
func (b *Builder) Footer(args ...any) *Node  { return b.El("footer", args...) }
func (b *Builder) Main(args ...any) *Node    { return b.El("main", args...) }
func (b *Builder) Nav(args ...any) *Node     { return b.El("nav", args...) }
func (b *Builder) Section(args ...any) *Node { return b.El("section", args...) }
func (b *Builder) Article(args ...any) *Node { return b.El("article", args...) }
func (b *Builder) Aside(args ...any) *Node   { return b.El("aside", args...) }
func (b *Builder) Address(args ...any) *Node { return b.El("address", args...) }
func (b *Builder) H1(args ...any) *Node      { return b.El("h1", args...) }
func (b *Builder) H2(args ...any) *Node      { return b.El("h2", args...) }
func (b *Builder) H3(args ...any) *Node      { return b.El("h3", args...) }
func (b *Builder) H4(args ...any) *Node      { return b.El("h4", args...) }
func (b *Builder) H5(args ...any) *Node      { return b.El("h5", args...) }
func (b *Builder) H6(args ...any) *Node      { return b.El("h6", args...) }
func (b *Builder) Hgroup(args ...any) *Node  { return b.El("hgroup", args...) }

// Grouping content

func (b *Builder) Div(args ...any) *Node        { return b.El("div", args...) }
func (b *Builder) P(args ...any) *Node          { return b.El("p", args...) }
func (b *Builder) Span(args ...any) *Node       { return b.El("span", args...) }
func (b *Builder) Pre(args ...any) *Node        { return b.El("pre", args...) }
func (b *Builder) Blockquote(args ...any) *Node { return b.El("blockquote", args...) }
func (b *Builder) Ul(args ...any) *Node         { return b.El("ul", args...) }
func (b *Builder) Ol(args ...any) *Node         { return b.El("ol", args...) }
func (b *Builder) Li(args ...any) *Node         { return b.El("li", args...) }
func (b *Builder) Dl(args ...any) *Node         { return b.El("dl", args...) }
func (b *Builder) Dt(args ...any) *Node         { return b.El("dt", args...) }
func (b *Builder) Dd(args ...any) *Node         { return b.El("dd", args...) }
func (b *Builder) Hr(args ...any) *Node         { return b.El("hr", args...) }
func (b *Builder) Figure(args ...any) *Node     { return b.El("figure", args...) }
func (b *Builder) Figcaption(args ...any) *Node { return b.El("figcaption", args...) }

// Text-level semantics

func (b *Builder) A(args ...any) *Node      { return b.El("a", args...) }
func (b *Builder) Strong(args ...any) *Node { return b.El("strong", args...) }
func (b *Builder) Em(args ...any) *Node     { return b.El("em", args...) }
func (b *Builder) B(args ...any) *Node      { return b.El("b", args...) }
func (b *Builder) I(args ...any) *Node      { return b.El("i", args...) }
func (b *Builder) U(args ...any) *Node      { return b.El("u", args...) }
func (b *Builder) S(args ...any) *Node      { return b.El("s", args...) }
func (b *Builder) Small(args ...any) *Node  { return b.El("small", args...) }
func (b *Builder) Mark(args ...any) *Node   { return b.El("mark", args...) }
func (b *Builder) Sub(args ...any) *Node    { return b.El("sub", args...) }
func (b *Builder) Sup(args ...any) *Node    { return b.El("sup", args...) }
func (b *Builder) Code(args ...any) *Node   { return b.El("code", args...) }
func (b *Builder) Kbd(args ...any) *Node    { return b.El("kbd", args...) }
func (b *Builder) Samp(args ...any) *Node   { return b.El("samp", args...) }
func (b *Builder) Var(args ...any) *Node    { return b.El("var", args...) }
func (b *Builder) Abbr(args ...any) *Node   { return b.El("abbr", args...) }
func (b *Builder) Time_(args ...any) *Node  { return b.El("time", args...) }
func (b *Builder) Cite(args ...any) *Node   { return b.El("cite", args...) }
func (b *Builder) Q(args ...any) *Node      { return b.El("q", args...) }
func (b *Builder) Dfn(args ...any) *Node    { return b.El("dfn", args...) }
func (b *Builder) Bdi(args ...any) *Node    { return b.El("bdi", args...) }
func (b *Builder) Bdo(args ...any) *Node    { return b.El("bdo", args...) }
func (b *Builder) Br(args ...any) *Node     { return b.El("br", args...) }
func (b *Builder) Wbr(args ...any) *Node    { return b.El("wbr", args...) }

// Forms

func (b *Builder) Form(args ...any) *Node     { return b.El("form", args...) }
func (b *Builder) Input(args ...any) *Node    { return b.El("input", args...) }
func (b *Builder) Textarea(args ...any) *Node { return b.El("textarea", args...) }
func (b *Builder) Select(args ...any) *Node   { return b.El("select", args...) }
func (b *Builder) Option(args ...any) *Node   { return b.El("option", args...) }
func (b *Builder) Optgroup(args ...any) *Node { return b.El("optgroup", args...) }
func (b *Builder) Button(args ...any) *Node   { return b.El("button", args...) }
func (b *Builder) Label(args ...any) *Node    { return b.El("label", args...) }
func (b *Builder) Fieldset(args ...any) *Node { return b.El("fieldset", args...) }
func (b *Builder) Legend(args ...any) *Node   { return b.El("legend", args...) }
func (b *Builder) Datalist(args ...any) *Node { return b.El("datalist", args...) }
func (b *Builder) Output(args ...any) *Node   { return b.El("output", args...) }
func (b *Builder) Progress(args ...any) *Node { return b.El("progress", args...) }
func (b *Builder) Meter(args ...any) *Node    { return b.El("meter", args...) }

// Tables

func (b *Builder) Table(args ...any) *Node    { return b.El("table", args...) }
func (b *Builder) Thead(args ...any) *Node    { return b.El("thead", args...) }
func (b *Builder) Tbody(args ...any) *Node    { return b.El("tbody", args...) }
func (b *Builder) Tfoot(args ...any) *Node    { return b.El("tfoot", args...) }
func (b *Builder) Tr(args ...any) *Node       { return b.El("tr", args...) }
func (b *Builder) Th(args ...any) *Node       { return b.El("th", args...) }
func (b *Builder) Td(args ...any) *Node       { return b.El("td", args...) }
func (b *Builder) Caption(args ...any) *Node  { return b.El("caption", args...) }
func (b *Builder) Colgroup(args ...any) *Node { return b.El("colgroup", args...) }
func (b *Builder) Col(args ...any) *Node      { return b.El("col", args...) }

// Embedded content

func (b *Builder) Img(args ...any) *Node     { return b.El("img", args...) }
func (b *Builder) Picture(args ...any) *Node { return b.El("picture", args...) }
func (b *Builder) Source(args ...any) *Node  { return b.El("source", args...) }
func (b *Builder) Video(args ...any) *Node   { return b.El("video", args...) }
func (b *Builder) Audio(args ...any) *Node   { return b.El("audio", args...) }
func (b *Builder) Track(args ...any) *Node   { return b.El("track", args...) }
func (b *Builder) Iframe(args ...any) *Node  { return b.El("iframe", args...) }
func (b *Builder) Embed(args ...any) *Node   { return b.El("embed", args...) }
func (b *Builder) Object(args ...any) *Node  { return b.El("object", args...) }
func (b *Builder) Canvas(args ...any) *Node  { return b.El("canvas", args...) }
func (b *Builder) Svg(args ...any) *Node     { return b.El("svg", args...) }
func (b *Builder) Area(args ...any) *Node    { return b.El("area", args...) }

// Interactive elements

func (b *Builder) Details(args ...any) *Node { return b.El("details", args...) }
func (b *Builder) Summary(args ...any) *Node { return b.El("summary", args...) }
func (b *Builder) Dialog(args ...any) *Node  { return b.El("dialog", args...) }
func (b *Builder) Menu(args ...any) *Node    { return b.El("menu", args...) }

// Scripting

func (b *Builder) Script(args ...any) *Node   { return b.El("script", args...) }
func (b *Builder) Noscript(args ...any) *Node { return b.El("noscript", args...) }
func (b *Builder) Template(args ...any) *Node { return b.El("template", args...) }
func (b *Builder) Style(args ...any) *Node    { return b.El("style", args...) }
