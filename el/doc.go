// Package el is a small DSL over the elt builder.
//
// Each tag has a constructor taking props and children mixed in one list:
//
//	count := 0
//	label := el.Text(count)
//	page := el.Div(el.ID("counter"),
//		el.Button(el.OnClick(func(dom.Event) {
//			count++
//			label.SetData(strconv.Itoa(count))
//		}), "+1"),
//		el.Span(label),
//	)
//
// Constructors panic on builder errors. Use elt.Builder.Elt directly to get
// them as values.
//
// The DSL builds through elt.Default unless Use installs another builder.
package el
