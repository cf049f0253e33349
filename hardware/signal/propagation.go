// This file is part of famibus.
//
// famibus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// famibus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with famibus.  If not, see <https://www.gnu.org/licenses/>.

package signal

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// PropagationError is returned when a listener fails during the dispatch of
// a Flag change or a Clock tick. It names the source of the dispatch and the
// position of the failing listener. The original error is available through
// Cause() (compatible with errors.Cause() from github.com/pkg/errors) and
// through Unwrap().
type PropagationError struct {
	Source   string
	Listener int
	err      error
}

// NewPropagationError wraps the error returned by a listener.
func NewPropagationError(source string, listener int, cause error) *PropagationError {
	return &PropagationError{
		Source:   source,
		Listener: listener,
		err:      errors.Wrapf(cause, "%s: listener %d", source, listener),
	}
}

func (e *PropagationError) Error() string {
	return e.err.Error()
}

// Cause returns the root cause of the propagation failure. For nested
// propagation failures this is the error that began the failure.
func (e *PropagationError) Cause() error {
	return errors.Cause(e.err)
}

// Unwrap allows the standard library's errors.Is() and errors.As() to look
// through the wrapping.
func (e *PropagationError) Unwrap() error {
	return stderrors.Unwrap(e.err)
}

// IsPropagation returns true if err is or wraps a PropagationError.
func IsPropagation(err error) bool {
	var p *PropagationError
	return stderrors.As(err, &p)
}
