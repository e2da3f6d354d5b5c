// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets

import "errors"

// ErrTemplatesDeprecated is wrapped by the error IncludeTemplates returns.
var ErrTemplatesDeprecated = errors.New("separate template packages are no longer supported")

// templatesAdvice is shown to callers of IncludeTemplates.
const templatesAdvice = "include your JST alongside your JS, and use IncludeJavascripts"

// DeprecatedFeatureError is returned when a caller uses a removed feature.
type DeprecatedFeatureError struct {
	Feature string
	Advice  string
	Err     error
}

func (e *DeprecatedFeatureError) Error() string {
	return e.Feature + " is deprecated: " + e.Err.Error() + "; " + e.Advice
}

func (e *DeprecatedFeatureError) Unwrap() error {
	return e.Err
}

// IsDeprecated reports whether err is a DeprecatedFeatureError.
func IsDeprecated(err error) bool {
	var dep *DeprecatedFeatureError
	return errors.As(err, &dep)
}
