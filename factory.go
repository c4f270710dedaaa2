package taxa

import (
	"fmt"
	"strconv"
)

type generateOptions struct {
	labelFunc func(int) string
	prefix    string
	registry  []Option
}

// GenerateOption configures Generate.
type GenerateOption func(*generateOptions)

// WithLabelFunc sets the function that labels the taxon with 1-based index i.
func WithLabelFunc(fn func(i int) string) GenerateOption {
	return func(o *generateOptions) {
		o.labelFunc = fn
	}
}

// WithPrefix changes the prefix of the default labels (default "T").
func WithPrefix(prefix string) GenerateOption {
	return func(o *generateOptions) {
		o.prefix = prefix
	}
}

// WithRegistryOptions forwards options to the registry constructor.
// Collection options are not allowed here.
func WithRegistryOptions(opts ...Option) GenerateOption {
	return func(o *generateOptions) {
		o.registry = append(o.registry, opts...)
	}
}

// DefaultLabelFunc returns the label function used by Generate: prefix
// followed by the 1-based index, zero padded to the number of decimal
// digits of count. For count 100 the labels are T001 ... T100.
func DefaultLabelFunc(prefix string, count int) func(int) string {
	width := len(strconv.Itoa(count))
	return func(i int) string {
		return fmt.Sprintf("%s%0*d", prefix, width, i)
	}
}

// Generate creates an unlocked-by-default registry of count fresh taxa.
func Generate(count int, optFns ...GenerateOption) (*Registry, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	o := generateOptions{prefix: "T"}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.labelFunc == nil {
		o.labelFunc = DefaultLabelFunc(o.prefix, count)
	}

	labels := make([]string, count)
	for i := range labels {
		labels[i] = o.labelFunc(i + 1)
	}
	return New(append(o.registry, WithLabels(labels...))...)
}
