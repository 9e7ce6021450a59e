package v1

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event is the persisted sporting-event document.
//
// EventID is the public identifier: the decimal string form of a sequential
// counter, assigned once at creation and immutable afterwards. The storage
// ObjectID exists only so the allocator can find the most recently inserted
// document; it never leaves the service.
type Event struct {
	OID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	EventID   string `bson:"eventId" json:"eventId"`
	Name      string `bson:"name" json:"name"`
	Host      string `bson:"host" json:"host"`
	Sport     string `bson:"sport" json:"sport"`
	Timestamp string `bson:"timestamp" json:"timestamp"`
	Location  string `bson:"location" json:"location"`

	// Image may be an empty string; clients without artwork send "".
	Image string `bson:"image" json:"image"`

	Price             float64  `bson:"price" json:"price"`
	Players           []string `bson:"players" json:"players"`
	TotalNumOfPlayers int      `bson:"totalNumOfPlayers" json:"totalNumOfPlayers"`
}

// CreateEventRequest is the body of POST /api/events. Image, Price and
// TotalNumOfPlayers are pointers so a missing field can be told apart from
// its zero value ("" and 0 are legal values for image and price).
type CreateEventRequest struct {
	Name              string   `json:"name"`
	Host              string   `json:"host"`
	Sport             string   `json:"sport"`
	Timestamp         string   `json:"timestamp"`
	Location          string   `json:"location"`
	Image             *string  `json:"image"`
	Price             *float64 `json:"price"`
	Players           []string `json:"players"`
	TotalNumOfPlayers *int     `json:"totalNumOfPlayers"`
}

// EventResponse is the client-facing shape of an event. The stored timestamp
// is replaced by a display date and the raw time range.
type EventResponse struct {
	EventID           string   `json:"eventId"`
	Name              string   `json:"name"`
	Host              string   `json:"host"`
	Sport             string   `json:"sport"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
	Location          string   `json:"location"`
	Image             string   `json:"image"`
	Price             float64  `json:"price"`
	Players           []string `json:"players"`
	TotalNumOfPlayers int      `json:"totalNumOfPlayers"`
}

// UpdateEventResponse is the body of a successful PUT: the identifier plus
// exactly the fields that were written.
type UpdateEventResponse struct {
	EventID string                 `json:"eventId"`
	Changes map[string]interface{} `json:"changes"`
}
