package events

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	v1 "github.com/unclelab/sportevents/internal/api/v1"
	"github.com/unclelab/sportevents/internal/catalog"
	"github.com/unclelab/sportevents/internal/timestamp"
)

// updatableFields lists the patchable document fields in a fixed order.
// host and players are immutable after creation.
var updatableFields = []string{
	"name", "sport", "timestamp", "location", "image", "price", "totalNumOfPlayers",
}

// Validator checks create and update requests field by field.
type Validator struct {
	catalog *catalog.Catalog
}

func NewValidator(c *catalog.Catalog) *Validator {
	if c == nil {
		panic("events: catalog must not be nil")
	}
	return &Validator{catalog: c}
}

// ValidateCreate checks a create request and, on success, returns the event
// document to persist (without an eventId; the allocator assigns that).
// Failures are returned as a *ValidationError listing every bad field.
func (v *Validator) ValidateCreate(req *v1.CreateEventRequest) (*v1.Event, error) {
	var fields []v1.FieldError
	fail := func(field, message string) {
		fields = append(fields, v1.FieldError{Field: field, Message: message})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fail("name", "name is required")
	}

	if req.Host == "" {
		fail("host", "host is required")
	}

	sport, ok := v.catalog.Normalize(req.Sport)
	if !ok {
		fail("sport", fmt.Sprintf("sport must be one of %s", strings.Join(v.catalog.Names(), ", ")))
	}

	if err := v.checkTimestamp(req.Timestamp); err != "" {
		fail("timestamp", err)
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		fail("location", "location is required")
	}

	// Image must be present but may be the empty string.
	if req.Image == nil {
		fail("image", "image is required")
	}

	if req.Price == nil {
		fail("price", "price is required")
	} else if decimal.NewFromFloat(*req.Price).IsNegative() {
		fail("price", "price must not be negative")
	}

	if len(req.Players) == 0 {
		fail("players", "players must not be empty")
	}

	if req.TotalNumOfPlayers == nil {
		fail("totalNumOfPlayers", "totalNumOfPlayers is required")
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &v1.Event{
		Name:              name,
		Host:              req.Host,
		Sport:             sport,
		Timestamp:         req.Timestamp,
		Location:          location,
		Image:             *req.Image,
		Price:             *req.Price,
		Players:           req.Players,
		TotalNumOfPlayers: *req.TotalNumOfPlayers,
	}, nil
}

// ValidateUpdate checks a partial-update body and returns the patch to
// apply. Unrecognized keys are ignored; a body with no recognized fields at
// all fails with ErrEmptyUpdate.
func (v *Validator) ValidateUpdate(body map[string]interface{}) (map[string]interface{}, error) {
	patch := make(map[string]interface{})
	var fields []v1.FieldError
	fail := func(field, message string) {
		fields = append(fields, v1.FieldError{Field: field, Message: message})
	}

	recognized := 0
	for _, field := range updatableFields {
		value, present := body[field]
		if !present {
			continue
		}
		recognized++

		switch field {
		case "name":
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				fail("name", "name must be a non-empty string")
				continue
			}
			patch["name"] = strings.TrimSpace(s)

		case "sport":
			s, ok := value.(string)
			if !ok {
				fail("sport", "sport must be a string")
				continue
			}
			canonical, ok := v.catalog.Normalize(s)
			if !ok {
				fail("sport", fmt.Sprintf("sport must be one of %s", strings.Join(v.catalog.Names(), ", ")))
				continue
			}
			patch["sport"] = canonical

		case "timestamp":
			s, ok := value.(string)
			if !ok {
				fail("timestamp", "timestamp must be a string")
				continue
			}
			if msg := v.checkTimestamp(s); msg != "" {
				fail("timestamp", msg)
				continue
			}
			patch["timestamp"] = s

		case "location":
			s, ok := value.(string)
			if !ok {
				fail("location", "location must be a string")
				continue
			}
			patch["location"] = strings.TrimSpace(s)

		case "image":
			s, ok := value.(string)
			if !ok {
				fail("image", "image must be a string")
				continue
			}
			patch["image"] = s

		case "price":
			d, ok := numericValue(value)
			if !ok {
				fail("price", "price must be numeric")
				continue
			}
			if d.IsNegative() {
				fail("price", "price must not be negative")
				continue
			}
			patch["price"] = d.InexactFloat64()

		case "totalNumOfPlayers":
			d, ok := numericValue(value)
			if !ok {
				fail("totalNumOfPlayers", "totalNumOfPlayers must be numeric")
				continue
			}
			if !d.IsInteger() {
				fail("totalNumOfPlayers", "totalNumOfPlayers must be a whole number")
				continue
			}
			patch["totalNumOfPlayers"] = int(d.IntPart())
		}
	}

	if recognized == 0 {
		return nil, ErrEmptyUpdate
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return patch, nil
}

func (v *Validator) checkTimestamp(raw string) string {
	err := timestamp.Validate(raw)
	switch {
	case errors.Is(err, timestamp.ErrInvalidFormat):
		return "timestamp must match YYYY-MM-DD|HH:MM-HH:MM"
	case errors.Is(err, timestamp.ErrInvalidDate):
		return "timestamp date is not a valid calendar date"
	case err != nil:
		return "timestamp is invalid"
	}
	return ""
}

// numericValue pulls a decimal out of a decoded JSON value. JSON numbers
// arrive as float64; the other branches cover callers that hand in typed
// values directly.
func numericValue(v interface{}) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), true
	case float32:
		return decimal.NewFromFloat(float64(val)), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case int32:
		return decimal.NewFromInt(int64(val)), true
	}
	return decimal.Decimal{}, false
}
