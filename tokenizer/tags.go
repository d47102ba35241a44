package tokenizer

// TagID is an interned identifier for a known HTML, SVG or MathML tag
// name. Unknown names map to TagUnknown; embedders that care about the
// string form read TagName off the token instead.
type TagID uint

//go:generate stringer -type=TagID
const (
	TagUnknown TagID = iota
	TagA
	TagAddress
	TagAnnotationXML
	TagApplet
	TagArea
	TagArticle
	TagAside
	TagB
	TagBase
	TagBasefont
	TagBgsound
	TagBig
	TagBlockquote
	TagBody
	TagBr
	TagButton
	TagCaption
	TagCenter
	TagCode
	TagCol
	TagColgroup
	TagDd
	TagDesc
	TagDetails
	TagDialog
	TagDir
	TagDiv
	TagDl
	TagDt
	TagEm
	TagEmbed
	TagFieldset
	TagFigcaption
	TagFigure
	TagFont
	TagFooter
	TagForeignObject
	TagForm
	TagFrame
	TagFrameset
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
	TagHead
	TagHeader
	TagHgroup
	TagHr
	TagHTML
	TagI
	TagIframe
	TagImg
	TagImage
	TagInput
	TagKeygen
	TagLabel
	TagLi
	TagLink
	TagListing
	TagMain
	TagMalignmark
	TagMarquee
	TagMath
	TagMenu
	TagMeta
	TagMglyph
	TagMi
	TagMn
	TagMo
	TagMs
	TagMtext
	TagNav
	TagNobr
	TagNoembed
	TagNoframes
	TagNoscript
	TagObject
	TagOl
	TagOptgroup
	TagOption
	TagP
	TagParam
	TagPlaintext
	TagPre
	TagRb
	TagRp
	TagRt
	TagRtc
	TagRuby
	TagS
	TagSamp
	TagScript
	TagSearch
	TagSection
	TagSelect
	TagSmall
	TagSource
	TagSpan
	TagStrike
	TagStrong
	TagStyle
	TagSub
	TagSummary
	TagSup
	TagSVG
	TagTable
	TagTbody
	TagTd
	TagTemplate
	TagTextarea
	TagTfoot
	TagTh
	TagThead
	TagTime
	TagTitle
	TagTr
	TagTrack
	TagTt
	TagU
	TagUl
	TagVar
	TagWbr
	TagXmp
)

var tagIDs = map[string]TagID{
	"a":              TagA,
	"address":        TagAddress,
	"annotation-xml": TagAnnotationXML,
	"applet":         TagApplet,
	"area":           TagArea,
	"article":        TagArticle,
	"aside":          TagAside,
	"b":              TagB,
	"base":           TagBase,
	"basefont":       TagBasefont,
	"bgsound":        TagBgsound,
	"big":            TagBig,
	"blockquote":     TagBlockquote,
	"body":           TagBody,
	"br":             TagBr,
	"button":         TagButton,
	"caption":        TagCaption,
	"center":         TagCenter,
	"code":           TagCode,
	"col":            TagCol,
	"colgroup":       TagColgroup,
	"dd":             TagDd,
	"desc":           TagDesc,
	"details":        TagDetails,
	"dialog":         TagDialog,
	"dir":            TagDir,
	"div":            TagDiv,
	"dl":             TagDl,
	"dt":             TagDt,
	"em":             TagEm,
	"embed":          TagEmbed,
	"fieldset":       TagFieldset,
	"figcaption":     TagFigcaption,
	"figure":         TagFigure,
	"font":           TagFont,
	"footer":         TagFooter,
	"foreignobject":  TagForeignObject,
	"form":           TagForm,
	"frame":          TagFrame,
	"frameset":       TagFrameset,
	"h1":             TagH1,
	"h2":             TagH2,
	"h3":             TagH3,
	"h4":             TagH4,
	"h5":             TagH5,
	"h6":             TagH6,
	"head":           TagHead,
	"header":         TagHeader,
	"hgroup":         TagHgroup,
	"hr":             TagHr,
	"html":           TagHTML,
	"i":              TagI,
	"iframe":         TagIframe,
	"img":            TagImg,
	"image":          TagImage,
	"input":          TagInput,
	"keygen":         TagKeygen,
	"label":          TagLabel,
	"li":             TagLi,
	"link":           TagLink,
	"listing":        TagListing,
	"main":           TagMain,
	"malignmark":     TagMalignmark,
	"marquee":        TagMarquee,
	"math":           TagMath,
	"menu":           TagMenu,
	"meta":           TagMeta,
	"mglyph":         TagMglyph,
	"mi":             TagMi,
	"mn":             TagMn,
	"mo":             TagMo,
	"ms":             TagMs,
	"mtext":          TagMtext,
	"nav":            TagNav,
	"nobr":           TagNobr,
	"noembed":        TagNoembed,
	"noframes":       TagNoframes,
	"noscript":       TagNoscript,
	"object":         TagObject,
	"ol":             TagOl,
	"optgroup":       TagOptgroup,
	"option":         TagOption,
	"p":              TagP,
	"param":          TagParam,
	"plaintext":      TagPlaintext,
	"pre":            TagPre,
	"rb":             TagRb,
	"rp":             TagRp,
	"rt":             TagRt,
	"rtc":            TagRtc,
	"ruby":           TagRuby,
	"s":              TagS,
	"samp":           TagSamp,
	"script":         TagScript,
	"search":         TagSearch,
	"section":        TagSection,
	"select":         TagSelect,
	"small":          TagSmall,
	"source":         TagSource,
	"span":           TagSpan,
	"strike":         TagStrike,
	"strong":         TagStrong,
	"style":          TagStyle,
	"sub":            TagSub,
	"summary":        TagSummary,
	"sup":            TagSup,
	"svg":            TagSVG,
	"table":          TagTable,
	"tbody":          TagTbody,
	"td":             TagTd,
	"template":       TagTemplate,
	"textarea":       TagTextarea,
	"tfoot":          TagTfoot,
	"th":             TagTh,
	"thead":          TagThead,
	"time":           TagTime,
	"title":          TagTitle,
	"tr":             TagTr,
	"track":          TagTrack,
	"tt":             TagTt,
	"u":              TagU,
	"ul":             TagUl,
	"var":            TagVar,
	"wbr":            TagWbr,
	"xmp":            TagXmp,
}

// GetTagID interns a lowercased tag name.
func GetTagID(name string) TagID {
	return tagIDs[name]
}
