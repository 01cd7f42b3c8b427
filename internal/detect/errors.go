package detect

// InvariantError reports a runtime invariant violation inside the
// inference loop — a sampled n-gram missing from the profile store it
// was extracted against, or a probability vector whose length doesn't
// match the store's language count. Both indicate the Detector was
// constructed with a ProfileStore it did not itself build the n-grams
// against, and are not expected to occur in normal operation.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return "langdetect: detection invariant violated: " + e.Message
}
