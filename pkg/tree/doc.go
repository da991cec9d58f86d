// Package tree reads element trees from YAML files and builds them.
//
// A node is a mapping with a tag, an ordered props mapping and a children
// sequence, or a scalar that becomes a text node:
//
//	tag: div
//	props:
//	  id: counter
//	children:
//	  - tag: button
//	    props:
//	      onclick: increment
//	    children: ["+1"]
//	  - " "
//	  - {tag: span, props: {id: value}, children: [0]}
//
// Prop order in the file is the order attributes are set. Values of event
// props ("on" prefix) name an entry in an Actions table. JSON is a subset
// of YAML, so JSON tree files work too.
package tree
