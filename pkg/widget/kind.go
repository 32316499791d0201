package widget

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindFrame Kind = iota
	KindButton
	KindLabel
	KindCheckbox
	KindSlider
	KindTextbox
	KindListbox
	KindPopup
	KindScrollbar
)

var kindNames = [...]string{
	KindFrame:     "frame",
	KindButton:    "button",
	KindLabel:     "label",
	KindCheckbox:  "checkbox",
	KindSlider:    "slider",
	KindTextbox:   "textbox",
	KindListbox:   "listbox",
	KindPopup:     "popup",
	KindScrollbar: "scrollbar",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind by name, ignoring case.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

type capabilities struct {
	flow        bool
	docknizable bool
}

var kindCaps = [...]capabilities{
	KindFrame:     {flow: true, docknizable: true},
	KindButton:    {flow: true},
	KindLabel:     {flow: true},
	KindCheckbox:  {flow: true},
	KindSlider:    {flow: true},
	KindTextbox:   {flow: true},
	KindListbox:   {flow: true},
	KindPopup:     {flow: true, docknizable: true},
	KindScrollbar: {},
}

func (k Kind) caps() capabilities {
	if k < 0 || int(k) >= len(kindCaps) {
		return capabilities{}
	}
	return kindCaps[k]
}
