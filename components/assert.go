package components

import "github.com/xDarkicex/gatesim/builder"

var _ Appender = (*builder.Graph)(nil)
