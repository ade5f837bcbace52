package medalforge

import (
	"encoding/json"

	"github.com/mailru/easyjson/jwriter"
)

// ISO 8601 in UTC with millisecond precision, used for event timestamps.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type trackRequest struct {
	Event    string
	UserID   string
	Metadata map[string]interface{}
	Options  *TrackOptions
}

func (r trackRequest) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"event":`)
	w.String(r.Event)
	w.RawString(`,"user_id":`)
	w.String(r.UserID)
	if r.Metadata != nil {
		w.RawString(`,"metadata":`)
		w.Raw(json.Marshal(r.Metadata))
	}
	if r.Options != nil {
		w.RawString(`,"options":`)
		r.Options.MarshalEasyJSON(w)
	}
	w.RawByte('}')
}

func (o *TrackOptions) MarshalEasyJSON(w *jwriter.Writer) {
	first := true
	field := func(name string) {
		if !first {
			w.RawByte(',')
		}
		first = false
		w.RawByte('"')
		w.RawString(name)
		w.RawString(`":`)
	}

	w.RawByte('{')
	if o.Silent {
		field("silent")
		w.Bool(o.Silent)
	}
	if o.Timestamp != nil {
		field("timestamp")
		w.String(o.Timestamp.UTC().Format(timestampLayout))
	}
	if o.Priority != 0 {
		field("priority")
		w.Int(o.Priority)
	}
	w.RawByte('}')
}

type batchTrackRequest struct {
	Events []BatchEvent
}

func (r batchTrackRequest) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"events":[`)
	for i, e := range r.Events {
		if i > 0 {
			w.RawByte(',')
		}
		w.RawString(`{"event":`)
		w.String(e.Event)
		w.RawString(`,"userId":`)
		w.String(e.UserID)
		if e.Metadata != nil {
			w.RawString(`,"metadata":`)
			w.Raw(json.Marshal(e.Metadata))
		}
		w.RawByte('}')
	}
	w.RawString(`]}`)
}

type medalGrantRequest struct {
	BadgeID string
}

func (r medalGrantRequest) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"badgeId":`)
	w.String(r.BadgeID)
	w.RawByte('}')
}
