package dom

import (
	"bytes"
	"encoding/xml"
	"io"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// WriteTo writes e and its subtree as markup. Outermost svg elements get
// the SVG namespace so they can be served as standalone images.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	e.write(&buf)
	return buf.WriteTo(w)
}

// String returns the markup of e.
func (e *Element) String() string {
	var buf bytes.Buffer
	e.write(&buf)
	return buf.String()
}

func (e *Element) write(buf *bytes.Buffer) {
	buf.WriteString("<" + e.Tag)
	if e.Tag == "svg" && (e.parent == nil || e.parent.Tag != "svg") {
		if _, ok := e.AttrValue("xmlns"); !ok {
			buf.WriteString(` xmlns="` + svgNamespace + `"`)
		}
	}
	for _, a := range e.attrs {
		buf.WriteString(" " + a.name + `="`)
		xml.EscapeText(buf, []byte(a.value))
		buf.WriteString(`"`)
	}
	if len(e.children) == 0 && e.text == "" {
		buf.WriteString("/>")
		return
	}
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(e.text))
	for _, c := range e.children {
		c.write(buf)
	}
	buf.WriteString("</" + e.Tag + ">")
}
