package todom

import (
	"github.com/sirupsen/logrus"

	"github.com/syntax-tree/hast-util-to-dom/todom/dom"
	"github.com/syntax-tree/hast-util-to-dom/todom/hast"
)

// AfterTransform is called once per input node after its output node is
// built and, for parents, after the children are attached.
type AfterTransform func(node hast.Node, transformed *dom.Node)

// Options configures Transform.
type Options struct {
	// Fragment makes a root without an html element a DocumentFragment
	// instead of an html element wrapping the children.
	Fragment bool

	// Document creates the output nodes. Default: a new HTML document per
	// call.
	Document dom.Factory

	// Namespace is the namespace elements are created in. When empty, a
	// root takes it from its html child.
	Namespace string

	// AfterTransform, when set, is called for every node in post-order.
	AfterTransform AfterTransform

	// Logger receives debug entries. Default: logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// Option configures Transform.
type Option func(*Options)

// WithFragment sets Options.Fragment.
func WithFragment(fragment bool) Option {
	return func(o *Options) {
		o.Fragment = fragment
	}
}

// WithDocument sets the factory output nodes are created with.
func WithDocument(doc dom.Factory) Option {
	return func(o *Options) {
		o.Document = doc
	}
}

// WithNamespace sets the namespace elements are created in.
func WithNamespace(namespace string) Option {
	return func(o *Options) {
		o.Namespace = namespace
	}
}

// WithAfterTransform sets the post-order hook.
func WithAfterTransform(fn AfterTransform) Option {
	return func(o *Options) {
		o.AfterTransform = fn
	}
}

// WithLogger sets the logger debug entries are written to.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Document == nil {
		o.Document = dom.NewHTMLDocument()
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}
