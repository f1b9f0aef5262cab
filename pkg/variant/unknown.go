package variant

// UnknownPayload is returned for a class_type this package does not
// recognize. The item's raw bytes are preserved by the caller (§4.6);
// this payload only carries the classification outcome.
type UnknownPayload struct{}

func (UnknownPayload) Kind() Kind { return Unknown }
