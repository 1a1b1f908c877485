package dom

import (
	"strconv"
	"strings"
)

// Attr creates an attribute from a caller-spelled key. The key is translated
// through the default key table (underscores to hyphens, one trailing
// underscore stripped); an illegal key panics with *KeyError.
//
// Builders with their own KeyTable translate map-style Attrs through that
// table instead; Attr always uses the default table.
func Attr(key string, value any) Attribute {
	return Attribute{Key: DefaultKeys.mustClean(key), Value: value}
}

// attr builds an Attribute from an already-legal key.
func attr(key string, value any) Attribute {
	return Attribute{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attribute { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attribute { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to keep Style free for the
// <style> element).
func StyleAttr(style string) Attribute { return attr("style", style) }

// TitleAttr sets the title attribute (named to keep Title free for the
// <title> element).
func TitleAttr(title string) Attribute { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attribute { return attr("lang", lang) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attribute { return attr(DefaultKeys.mustClean("data_"+key), value) }

// Links and media

// Href sets the href attribute.
func Href(url string) Attribute { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attribute { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attribute { return attr("alt", text) }

// Rel sets the rel attribute.
func Rel(rel string) Attribute { return attr("rel", rel) }

// Target sets the target attribute.
func Target(target string) Attribute { return attr("target", target) }

// Width sets the width attribute.
func Width(w int) Attribute { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attribute { return attr("height", h) }

// Forms

// Name sets the name attribute.
func Name(name string) Attribute { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attribute { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attribute { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attribute { return attr("placeholder", text) }

// For sets the for attribute.
func For(id string) Attribute { return attr("for", id) }

// Action sets the action attribute.
func Action(url string) Attribute { return attr("action", url) }

// Method sets the method attribute.
func Method(m string) Attribute { return attr("method", m) }

// Boolean attributes; true renders the bare key, false renders nothing.

// Checked sets the checked attribute.
func Checked() Attribute { return attr("checked", true) }

// Selected sets the selected attribute.
func Selected() Attribute { return attr("selected", true) }

// Disabled sets the disabled attribute.
func Disabled() Attribute { return attr("disabled", true) }

// Required sets the required attribute.
func Required() Attribute { return attr("required", true) }

// Readonly sets the readonly attribute.
func Readonly() Attribute { return attr("readonly", true) }

// Multiple sets the multiple attribute.
func Multiple() Attribute { return attr("multiple", true) }

// Autofocus sets the autofocus attribute.
func Autofocus() Attribute { return attr("autofocus", true) }

// Defer sets the defer attribute on a script element.
func Defer() Attribute { return attr("defer", true) }

// Async sets the async attribute on a script element.
func Async() Attribute { return attr("async", true) }

// Accessibility

// Role sets the role attribute.
func Role(role string) Attribute { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attribute { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute. ARIA states want literal
// "true"/"false" values, not the bare-key boolean form.
func AriaHidden(hidden bool) Attribute { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attribute { return attr("aria-expanded", strconv.FormatBool(expanded)) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attribute { return attr("aria-describedby", id) }

// Document metadata

// Charset sets the charset attribute on a meta element.
func Charset(cs string) Attribute { return attr("charset", cs) }

// Content sets the content attribute on a meta element.
func Content(content string) Attribute { return attr("content", content) }

// HTTPEquiv sets the http-equiv attribute on a meta element.
func HTTPEquiv(value string) Attribute { return attr("http-equiv", value) }
