// Package dom is a small in-memory element tree that axis renderers draw
// into. Elements carry a client box so layout code can measure them the
// way it would measure a browser element.
package dom

import (
	"fmt"
	"strconv"
	"strings"
)

type attr struct {
	name  string
	value string
}

// Element is a node in the tree. The zero value is not usable; create
// elements with New or Append.
type Element struct {
	Tag string
	// Width and Height are the element's client box in pixels.
	Width, Height float64

	attrs    []attr
	text     string
	parent   *Element
	children []*Element
}

// New returns a detached element.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// Append creates a child element at the end of e's children.
func (e *Element) Append(tag string) *Element {
	child := New(tag)
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// Parent returns the element e was appended to, or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns e's direct children.
func (e *Element) Children() []*Element { return e.children }

// Attr sets an attribute and returns e so calls can be chained.
// Numbers are written in their shortest form.
func (e *Element) Attr(name string, value any) *Element {
	v := stringify(value)
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = v
			return e
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: v})
	return e
}

// AttrValue returns the value of the named attribute.
func (e *Element) AttrValue(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// AddClass appends class to the element's class list if missing.
func (e *Element) AddClass(class string) *Element {
	if e.HasClass(class) {
		return e
	}
	current, _ := e.AttrValue("class")
	return e.Attr("class", strings.TrimSpace(current+" "+class))
}

// HasClass reports whether class is in the element's class list.
func (e *Element) HasClass(class string) bool {
	current, _ := e.AttrValue("class")
	for _, c := range strings.Fields(current) {
		if c == class {
			return true
		}
	}
	return false
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

// Text returns the element's own text content.
func (e *Element) Text() string { return e.text }

// SelectAll returns every descendant of e carrying class, in document order.
func (e *Element) SelectAll(class string) []*Element {
	var found []*Element
	for _, c := range e.children {
		if c.HasClass(class) {
			found = append(found, c)
		}
		found = append(found, c.SelectAll(class)...)
	}
	return found
}

// Find returns the descendants of e with the given tag, in document order.
func (e *Element) Find(tag string) []*Element {
	var found []*Element
	for _, c := range e.children {
		if c.Tag == tag {
			found = append(found, c)
		}
		found = append(found, c.Find(tag)...)
	}
	return found
}

// Describe returns a short selector-like name for error messages,
// e.g. div#chart.y-axis-div.
func (e *Element) Describe() string {
	var b strings.Builder
	b.WriteString(e.Tag)
	if id, ok := e.AttrValue("id"); ok {
		b.WriteString("#" + id)
	}
	class, _ := e.AttrValue("class")
	for _, c := range strings.Fields(class) {
		b.WriteString("." + c)
	}
	return b.String()
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
