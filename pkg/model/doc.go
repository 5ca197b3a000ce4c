// Package model provides the observable entity base every plotkit entity
// embeds.
//
// A [Model] owns the attribute values of one entity instance. Values start
// from the class schema defaults (factories invoked fresh per instance), are
// adjusted by the active [Theme], and finally by the attributes passed to the
// constructor.
//
// # Two Write Paths
//
// Entities expose two distinct mutation paths:
//
//   - [Model.Set] is the reactive setter. It validates the value against the
//     property kind and notifies every callback registered with [Model.On].
//   - [Model.Link] and [Model.Unlink] are internal bookkeeping writes on list
//     properties. They never notify callbacks. Shared resources use them for
//     back-references (a range listing the plots that use it) so that
//     registering a user is never mistaken for a change of the resource.
//
// # Embedding
//
// Concrete entities embed Model and call [Model.Init] from their constructor:
//
//	type Span struct{ model.Model }
//
//	func NewSpan(attrs model.Attrs) (*Span, error) {
//	    s := &Span{}
//	    if err := s.Init(s, spanSchema, attrs); err != nil {
//	        return nil, err
//	    }
//	    return s, nil
//	}
//
// Entities are not safe for concurrent mutation.
package model
