package domain

// RequestStatus enumerates the lifecycle of a slice request.
type RequestStatus string

const (
	RequestIdle      RequestStatus = "idle"
	RequestPending   RequestStatus = "pending"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestRejected  RequestStatus = "rejected"
)

// RequestState is the status of the latest request of a slice plus the error
// message of a rejection.
type RequestState struct {
	Status RequestStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
}

// Idle is the initial request state.
func Idle() RequestState {
	return RequestState{Status: RequestIdle}
}

// Begin moves the request to pending. Error is non-empty only while rejected.
func (r RequestState) Begin() RequestState {
	return RequestState{Status: RequestPending}
}

// Fulfill settles the request successfully and clears any error.
func (r RequestState) Fulfill() RequestState {
	return RequestState{Status: RequestFulfilled}
}

// Reject settles the request with msg. An empty msg is replaced by fallback so
// that a rejected state always carries a message.
func (r RequestState) Reject(msg, fallback string) RequestState {
	if msg == "" {
		msg = fallback
	}
	return RequestState{Status: RequestRejected, Error: msg}
}

// Settled reports whether the request reached fulfilled or rejected.
func (r RequestState) Settled() bool {
	return r.Status == RequestFulfilled || r.Status == RequestRejected
}
