// SPDX-License-Identifier: MIT
package tokenizer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Tokenizer functional option type.
type Option func(*Tokenizer)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(t *Tokenizer) { t.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(t *Tokenizer) { t.logger = logger } }
