package shared

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/form"
	"github.com/gorilla/mux"
)

var Decoder = form.NewDecoder()

// ParseID normalizes the {id} route variable to a numeric identifier.
// Both plain numbers and string-encoded numbers ("1234") are accepted.
func ParseID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(mux.Vars(r)["id"])
	return strconv.ParseInt(raw, 10, 64)
}
