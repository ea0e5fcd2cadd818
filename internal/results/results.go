package results

// OperationResult carries a business-level outcome for a service operation.
// Exactly one of Success or Failure is set for a handled operation; transport
// or infrastructure errors travel separately as the error return.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// IsSuccess reports whether the operation produced a success payload.
func (r OperationResult[S, F]) IsSuccess() bool {
	return r.Success != nil
}

// IsFailure reports whether the operation produced a failure payload.
func (r OperationResult[S, F]) IsFailure() bool {
	return r.Failure != nil
}

// SuccessResult wraps a success payload.
func SuccessResult[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &payload}
}

// FailureResult wraps a failure payload.
func FailureResult[S any, F any](payload F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &payload}
}
