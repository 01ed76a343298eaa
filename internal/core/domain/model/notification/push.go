package notification

import "encoding/json"

// PushPayload is the JSON document delivered to the service worker.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
	Tag   string `json:"tag"`
}

// PayloadFor builds the push payload of a persisted notification.
func PayloadFor(n *Notification) PushPayload {
	return PushPayload{
		Title: n.Title(),
		Body:  n.Body(),
		URL:   n.TargetURL(),
		Tag:   n.Tag(),
	}
}

func (p PushPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// DeliveryOutcome classifies one push attempt against one subscription.
type DeliveryOutcome int

const (
	// Delivered means the push service accepted the message.
	Delivered DeliveryOutcome = iota
	// Gone means the endpoint no longer exists; the subscription must be deleted.
	Gone
	// TransientFailure covers every other failure; the subscription is kept.
	TransientFailure
)

func (o DeliveryOutcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Gone:
		return "gone"
	default:
		return "transient"
	}
}
