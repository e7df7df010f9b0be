package resources

import (
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/guitarkeep/hub/internal/errors"
	"github.com/guitarkeep/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, func(value string) reflect.Value {
		// An unescaped "+" in a UTC offset arrives as a space.
		t, err := time.Parse(time.RFC3339, strings.ReplaceAll(value, " ", "+"))
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})
	return d
}

// timeQuery is the query-string form of models.TimeRange
type timeQuery struct {
	Start time.Time `schema:"start_time"`
	End   time.Time `schema:"end_time"`
}

// decodeTimeRange reads start_time and end_time from the query string.
// Missing or empty parameters leave the bound open.
func decodeTimeRange(r *http.Request) (models.TimeRange, *errors.APIError) {
	values := url.Values{}
	for key, vals := range r.URL.Query() {
		for _, v := range vals {
			if v != "" {
				values.Add(key, v)
			}
		}
	}

	var q timeQuery
	if err := queryDecoder.Decode(&q, values); err != nil {
		return models.TimeRange{}, errors.NewValidationError("start_time and end_time must be RFC3339 timestamps", err)
	}

	var tr models.TimeRange
	if values.Has("start_time") {
		tr.Start = &q.Start
	}
	if values.Has("end_time") {
		tr.End = &q.End
	}
	return tr, nil
}

// asAPIError keeps typed errors and wraps anything else as internal
func asAPIError(err error, fallback string) *errors.APIError {
	if apiErr, ok := errors.As(err); ok {
		return apiErr
	}
	return errors.NewInternalError(fallback, err)
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	if err.Code >= http.StatusInternalServerError {
		nuts.L.Errorf("[API] %s", err.Error())
		return
	}
	nuts.L.Warnf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func newRequestID() string {
	return nuts.NID("req", 12)
}
