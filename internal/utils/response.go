package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"mingle-backend/internal/apperr"
	"mingle-backend/internal/dto"
)

const maxRequestBytes = 4 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteRawJSON writes an already-encoded JSON body as is
func WriteRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// WriteErrorResponse writes {"error": message, "code": code}
func WriteErrorResponse(w http.ResponseWriter, status int, code, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: message, Code: code})
}

// WriteError renders any error; untyped errors become 500 storage errors
func WriteError(w http.ResponseWriter, err error) {
	ae := apperr.From(err)
	WriteErrorResponse(w, ae.Status, string(ae.Kind), ae.PublicMessage())
}

// DecodeJSONRequest decodes the body into dst and writes a 400 on failure
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(dst); err != nil {
		msg := "Invalid request body: " + err.Error()
		if errors.Is(err, io.EOF) {
			msg = "Invalid request body: empty body"
		}
		WriteErrorResponse(w, http.StatusBadRequest, string(apperr.KindValidation), msg)
		return err
	}
	return nil
}

// ReadRawJSON reads the whole body for verbatim forwarding and writes a 400 on failure
func ReadRawJSON(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, string(apperr.KindValidation), "Invalid request body: "+err.Error())
		return nil, err
	}
	return body, nil
}
