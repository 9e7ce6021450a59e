package events

import (
	v1 "github.com/unclelab/sportevents/internal/api/v1"
	"github.com/unclelab/sportevents/internal/timestamp"
)

// Shape maps a stored event into its client-facing form: every field copied
// verbatim except timestamp, which becomes a display date plus the raw time
// range. The storage ObjectID is never exposed.
func Shape(e *v1.Event) (*v1.EventResponse, error) {
	date, timeRange, err := timestamp.Decode(e.Timestamp)
	if err != nil {
		return nil, err
	}

	return &v1.EventResponse{
		EventID:           e.EventID,
		Name:              e.Name,
		Host:              e.Host,
		Sport:             e.Sport,
		Date:              date,
		Time:              timeRange,
		Location:          e.Location,
		Image:             e.Image,
		Price:             e.Price,
		Players:           e.Players,
		TotalNumOfPlayers: e.TotalNumOfPlayers,
	}, nil
}
