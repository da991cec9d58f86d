package dom

// NodeType is the DOM nodeType discriminator.
type NodeType uint8

const (
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	CommentNode  NodeType = 8
	DocumentNode NodeType = 9
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case DocumentNode:
		return "Document"
	default:
		return "Unknown"
	}
}

// Node is any node of a document tree.
type Node interface {
	NodeType() NodeType
	// NodeName is the uppercased tag for HTML elements and "#text" for text.
	NodeName() string
	// TextContent is the concatenated data of all descendant text nodes.
	TextContent() string
	// ParentNode returns nil for a detached node.
	ParentNode() Node
	ChildNodes() []Node
	// AppendChild moves child to the end of this node's children.
	AppendChild(child Node) error
	RemoveChild(child Node) error
}

// Attribute is a single name/value pair on an element.
type Attribute struct {
	Name  string
	Value string
}

// Element is a node representing a tag.
type Element interface {
	Node
	EventTarget

	// TagName is the qualified name, uppercased for HTML elements.
	TagName() string
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string) error
	HasAttribute(name string) bool
	RemoveAttribute(name string)
	// Attributes returns the attributes in the order they were first set.
	Attributes() []Attribute
	// Children returns only element children.
	Children() []Element
	FirstElementChild() Element
	LastElementChild() Element
}

// Text is a node holding only character data.
type Text interface {
	Node
	Data() string
	SetData(data string)
}

// EventInit mirrors the dictionary passed to the Event constructor.
type EventInit struct {
	Bubbles    bool
	Cancelable bool
}

// Document creates nodes and gives access to the tree roots.
type Document interface {
	CreateElement(tag string) (Element, error)
	CreateTextNode(data string) Text
	NewEvent(typ string, init EventInit) Event
	Body() Element
	GetElementByID(id string) Element
}

// Event is a dispatched DOM event.
type Event interface {
	Type() string
	// Target is the element the event was dispatched to.
	Target() EventTarget
	Bubbles() bool
	PreventDefault()
	DefaultPrevented() bool
	StopPropagation()
}

// EventTarget can register listeners and receive events.
type EventTarget interface {
	// AddEventListener registers fn for events of type typ. The returned
	// Subscription keeps fn alive until Remove is called.
	AddEventListener(typ string, fn func(Event)) (Subscription, error)
	// DispatchEvent invokes listeners synchronously and reports whether
	// the default action was left in place.
	DispatchEvent(e Event) (bool, error)
}

// Subscription is a registered event listener.
type Subscription interface {
	Type() string
	// Remove unregisters the listener and frees its resources. It is safe
	// to call more than once.
	Remove()
}
