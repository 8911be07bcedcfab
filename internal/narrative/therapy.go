package narrative

import "strings"

// OrderList records body parts in the order the clinician checked them.
// The first entry is the main concern; it only changes hands when the
// current main concern is unchecked, or after the list has emptied.
type OrderList struct {
	items []string
}

// NewOrderList restores a previously saved order.
func NewOrderList(items []string) *OrderList {
	return &OrderList{items: DedupePreserveOrder(items)}
}

// Toggle records a checkbox change.
func (o *OrderList) Toggle(name string, checked bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	i := o.index(name)
	switch {
	case checked && i < 0:
		o.items = append(o.items, name)
	case !checked && i >= 0:
		o.items = append(o.items[:i], o.items[i+1:]...)
	}
}

// Main returns the main concern, if any item is checked.
func (o *OrderList) Main() (string, bool) {
	if len(o.items) == 0 {
		return "", false
	}
	return o.items[0], true
}

// Rest returns the checked items after the main concern.
func (o *OrderList) Rest() []string {
	if len(o.items) < 2 {
		return nil
	}
	return append([]string(nil), o.items[1:]...)
}

// Items returns the full order.
func (o *OrderList) Items() []string {
	return append([]string(nil), o.items...)
}

// Checked reports whether name is in the list.
func (o *OrderList) Checked(name string) bool {
	return o.index(strings.TrimSpace(name)) >= 0
}

func (o *OrderList) index(name string) int {
	for i, it := range o.items {
		if strings.EqualFold(it, name) {
			return i
		}
	}
	return -1
}

// BuildTherapyNarrative names the main concern and then any other checked
// areas. An empty list produces "".
func BuildTherapyNarrative(o *OrderList) string {
	main, ok := o.Main()
	if !ok {
		return ""
	}
	parts := []string{"The patient's main concern is the " + strings.ToLower(main) + "."}
	if rest := lowerAll(o.Rest()); len(rest) > 0 {
		parts = append(parts, "The patient also reports involvement of the "+JoinHuman(rest, false)+".")
	}
	return strings.Join(parts, " ")
}
