package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody is the union of the error payloads the API produces: a plain
// {"detail": "..."} from HTTPException, a list of {"msg": "..."} objects from
// request validation, or a {"message": "..."} body.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return NewAPIError(resp.StatusCode(), "", "")
	}

	return NewAPIError(resp.StatusCode(), parseDetail(body.Detail), strings.TrimSpace(body.Message))
}

func mapTransportError(err error) error {
	return NewTransportError(err)
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// parseDetail flattens the detail field into one line. Validation lists are
// joined with "; ".
func parseDetail(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var issues []validationIssue
	if err := json.Unmarshal(raw, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if m := strings.TrimSpace(issue.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
