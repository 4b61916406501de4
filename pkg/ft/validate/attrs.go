package validate

// GlobalAttrs are allowed on every element.
var GlobalAttrs = map[string]bool{
	"accesskey": true, "autocapitalize": true, "autofocus": true,
	"class": true, "contenteditable": true, "dir": true, "draggable": true,
	"enterkeyhint": true, "hidden": true, "id": true, "inert": true,
	"inputmode": true, "is": true, "lang": true, "nonce": true, "part": true,
	"popover": true, "role": true, "slot": true, "spellcheck": true,
	"style": true, "tabindex": true, "title": true, "translate": true,
}

// ValidAttrs is the static per-tag allowlist, sourced from the WHATWG
// element tables. Tags absent from the map accept only global attributes.
var ValidAttrs = map[string]map[string]bool{
	"a": {
		"download": true, "href": true, "hreflang": true, "ping": true,
		"referrerpolicy": true, "rel": true, "target": true, "type": true,
	},
	"area": {
		"alt": true, "coords": true, "download": true, "href": true,
		"ping": true, "referrerpolicy": true, "rel": true, "shape": true,
		"target": true,
	},
	"audio": {
		"autoplay": true, "controls": true, "crossorigin": true,
		"loop": true, "muted": true, "preload": true, "src": true,
	},
	"base": {"href": true, "target": true},
	"blockquote": {"cite": true},
	"button": {
		"disabled": true, "form": true, "formaction": true,
		"formenctype": true, "formmethod": true, "formnovalidate": true,
		"formtarget": true, "name": true, "type": true, "value": true,
	},
	"canvas": {"height": true, "width": true},
	"col":    {"span": true},
	"colgroup": {"span": true},
	"data":   {"value": true},
	"del":    {"cite": true, "datetime": true},
	"details": {"open": true},
	"dialog": {"open": true},
	"embed":  {"height": true, "src": true, "type": true, "width": true},
	"fieldset": {"disabled": true, "form": true, "name": true},
	"form": {
		"accept-charset": true, "action": true, "autocomplete": true,
		"enctype": true, "method": true, "name": true, "novalidate": true,
		"rel": true, "target": true,
	},
	"iframe": {
		"allow": true, "allowfullscreen": true, "height": true,
		"loading": true, "name": true, "referrerpolicy": true,
		"sandbox": true, "src": true, "srcdoc": true, "width": true,
	},
	"img": {
		"alt": true, "crossorigin": true, "decoding": true,
		"fetchpriority": true, "height": true, "ismap": true,
		"loading": true, "referrerpolicy": true, "sizes": true, "src": true,
		"srcset": true, "usemap": true, "width": true,
	},
	"input": {
		"accept": true, "alt": true, "autocomplete": true, "capture": true,
		"checked": true, "dirname": true, "disabled": true, "form": true,
		"formaction": true, "formenctype": true, "formmethod": true,
		"formnovalidate": true, "formtarget": true, "height": true,
		"list": true, "max": true, "maxlength": true, "min": true,
		"minlength": true, "multiple": true, "name": true, "pattern": true,
		"placeholder": true, "readonly": true, "required": true,
		"size": true, "src": true, "step": true, "type": true,
		"value": true, "width": true,
	},
	"ins":   {"cite": true, "datetime": true},
	"label": {"for": true},
	"li":    {"value": true},
	"link": {
		"as": true, "crossorigin": true, "disabled": true,
		"fetchpriority": true, "href": true, "hreflang": true,
		"imagesizes": true, "imagesrcset": true, "integrity": true,
		"media": true, "referrerpolicy": true, "rel": true, "sizes": true,
		"type": true,
	},
	"meta": {
		"charset": true, "content": true, "http-equiv": true,
		"media": true, "name": true,
	},
	"meter": {
		"high": true, "low": true, "max": true, "min": true,
		"optimum": true, "value": true,
	},
	"object": {
		"data": true, "form": true, "height": true, "name": true,
		"type": true, "width": true,
	},
	"ol":       {"reversed": true, "start": true, "type": true},
	"optgroup": {"disabled": true, "label": true},
	"option":   {"disabled": true, "label": true, "selected": true, "value": true},
	"output":   {"for": true, "form": true, "name": true},
	"progress": {"max": true, "value": true},
	"q":        {"cite": true},
	"script": {
		"async": true, "crossorigin": true, "defer": true,
		"fetchpriority": true, "integrity": true, "nomodule": true,
		"referrerpolicy": true, "src": true, "type": true,
	},
	"select": {
		"autocomplete": true, "disabled": true, "form": true,
		"multiple": true, "name": true, "required": true, "size": true,
	},
	"source": {
		"height": true, "media": true, "sizes": true, "src": true,
		"srcset": true, "type": true, "width": true,
	},
	"td": {"colspan": true, "headers": true, "rowspan": true},
	"textarea": {
		"autocomplete": true, "cols": true, "dirname": true,
		"disabled": true, "form": true, "maxlength": true,
		"minlength": true, "name": true, "placeholder": true,
		"readonly": true, "required": true, "rows": true, "wrap": true,
	},
	"th": {
		"abbr": true, "colspan": true, "headers": true, "rowspan": true,
		"scope": true,
	},
	"time":  {"datetime": true},
	"track": {"default": true, "kind": true, "label": true, "src": true, "srclang": true},
	"video": {
		"autoplay": true, "controls": true, "crossorigin": true,
		"height": true, "loop": true, "muted": true, "playsinline": true,
		"poster": true, "preload": true, "src": true, "width": true,
	},
}
